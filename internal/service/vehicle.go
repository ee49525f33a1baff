package service

import (
	"context"
	"fmt"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// VehicleRepository определяет контракт для работы с транспортом
type VehicleRepository interface {
	List(ctx context.Context) ([]*models.Vehicle, error)
	Create(ctx context.Context, v *models.Vehicle) error
	Update(ctx context.Context, id int64, patch *models.VehiclePatch) (*models.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// VehicleService определяет контракт бизнес-логики транспорта
type VehicleService interface {
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	UpdateVehicle(ctx context.Context, id int64, patch *models.VehiclePatch) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
}

type vehicleService struct {
	repo   VehicleRepository
	logger *logrus.Logger
}

func NewVehicleService(repo VehicleRepository, logger *logrus.Logger) VehicleService {
	return &vehicleService{
		repo:   repo,
		logger: logger,
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "vehicle",
		"method":  "ListVehicles",
	})

	vehicles, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list vehicles from repository")
		return nil, fmt.Errorf("service: could not list vehicles: %w", err)
	}
	return vehicles, nil
}

// CreateVehicle создает транспортное средство, статус по умолчанию available
func (s *vehicleService) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "vehicle",
		"method":        "CreateVehicle",
		"license_plate": v.LicensePlate,
	})
	log.Info("Attempting to create vehicle")

	if v.Status == "" {
		v.Status = "available"
	}
	if err := s.repo.Create(ctx, v); err != nil {
		log.WithError(err).Error("Failed to create vehicle in repository")
		return fmt.Errorf("service: could not create vehicle: %w", err)
	}

	log.WithField("vehicle_id", v.ID).Info("Vehicle created successfully")
	return nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id int64, patch *models.VehiclePatch) (*models.Vehicle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "vehicle",
		"method":     "UpdateVehicle",
		"vehicle_id": id,
	})
	log.Info("Attempting to update vehicle")

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update vehicle in repository")
		return nil, fmt.Errorf("service: could not update vehicle: %w", err)
	}

	log.Info("Vehicle updated successfully")
	return updated, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "vehicle",
		"method":     "DeleteVehicle",
		"vehicle_id": id,
	})
	log.Info("Attempting to delete vehicle")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete vehicle in repository")
		return fmt.Errorf("service: could not delete vehicle: %w", err)
	}

	log.Info("Vehicle deleted successfully")
	return nil
}
