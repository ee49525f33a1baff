package service

import (
	"context"
	"fmt"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// FacilityRepository определяет контракт для работы с объектами экстренного реагирования
type FacilityRepository interface {
	List(ctx context.Context, facilityType string) ([]*models.EmergencyFacility, error)
	GetByID(ctx context.Context, id int64) (*models.EmergencyFacility, error)
	ListPersonnelByFacility(ctx context.Context, facilityID int64) ([]*models.Personnel, error)
	ListVehiclesByFacility(ctx context.Context, facilityID int64) ([]*models.Vehicle, error)
	ListSuppliesByFacility(ctx context.Context, facilityID int64) ([]*models.SupplyItem, error)
}

// FacilityResources - детализация ресурсов одного объекта
type FacilityResources struct {
	FacilityID   int64                `json:"facility_id"`
	FacilityName string               `json:"facility_name"`
	FacilityType string               `json:"facility_type"`
	Personnel    []*models.Personnel  `json:"personnel"`
	Vehicles     []*models.Vehicle    `json:"vehicles"`
	Supplies     []*models.SupplyItem `json:"supplies"`
}

// FacilityService определяет контракт бизнес-логики объектов
type FacilityService interface {
	ListFacilities(ctx context.Context, facilityType string) ([]*models.EmergencyFacility, error)
	FacilityResources(ctx context.Context, facilityID int64) (*FacilityResources, error)
}

type facilityService struct {
	repo   FacilityRepository
	logger *logrus.Logger
}

func NewFacilityService(repo FacilityRepository, logger *logrus.Logger) FacilityService {
	return &facilityService{
		repo:   repo,
		logger: logger,
	}
}

// ListFacilities возвращает объекты с опциональным фильтром по типу
func (s *facilityService) ListFacilities(ctx context.Context, facilityType string) ([]*models.EmergencyFacility, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "facility",
		"method":  "ListFacilities",
		"type":    facilityType,
	})
	log.Info("Listing emergency facilities")

	facilities, err := s.repo.List(ctx, facilityType)
	if err != nil {
		log.WithError(err).Error("Failed to list facilities from repository")
		return nil, fmt.Errorf("service: could not list facilities: %w", err)
	}

	log.WithField("count", len(facilities)).Info("Facilities listed successfully")
	return facilities, nil
}

// FacilityResources возвращает персонал, транспорт и запасы объекта
func (s *facilityService) FacilityResources(ctx context.Context, facilityID int64) (*FacilityResources, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "facility",
		"method":      "FacilityResources",
		"facility_id": facilityID,
	})
	log.Info("Fetching facility resources")

	facility, err := s.repo.GetByID(ctx, facilityID)
	if err != nil {
		log.WithError(err).Warn("Failed to get facility")
		return nil, fmt.Errorf("service: could not get facility: %w", err)
	}

	personnel, err := s.repo.ListPersonnelByFacility(ctx, facilityID)
	if err != nil {
		log.WithError(err).Error("Failed to list facility personnel")
		return nil, fmt.Errorf("service: could not list facility personnel: %w", err)
	}

	vehicles, err := s.repo.ListVehiclesByFacility(ctx, facilityID)
	if err != nil {
		log.WithError(err).Error("Failed to list facility vehicles")
		return nil, fmt.Errorf("service: could not list facility vehicles: %w", err)
	}

	supplies, err := s.repo.ListSuppliesByFacility(ctx, facilityID)
	if err != nil {
		log.WithError(err).Error("Failed to list facility supplies")
		return nil, fmt.Errorf("service: could not list facility supplies: %w", err)
	}

	log.Info("Facility resources fetched successfully")
	return &FacilityResources{
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		FacilityType: facility.Type,
		Personnel:    personnel,
		Vehicles:     vehicles,
		Supplies:     supplies,
	}, nil
}
