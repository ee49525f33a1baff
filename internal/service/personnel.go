package service

import (
	"context"
	"fmt"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// PersonnelRepository определяет контракт для работы с персоналом
type PersonnelRepository interface {
	List(ctx context.Context) ([]*models.Personnel, error)
	Create(ctx context.Context, p *models.Personnel) error
	Update(ctx context.Context, id int64, patch *models.PersonnelPatch) (*models.Personnel, error)
	Delete(ctx context.Context, id int64) error
}

// PersonnelService определяет контракт бизнес-логики персонала
type PersonnelService interface {
	ListPersonnel(ctx context.Context) ([]*models.Personnel, error)
	CreatePersonnel(ctx context.Context, p *models.Personnel) error
	UpdatePersonnel(ctx context.Context, id int64, patch *models.PersonnelPatch) (*models.Personnel, error)
	DeletePersonnel(ctx context.Context, id int64) error
}

type personnelService struct {
	repo   PersonnelRepository
	logger *logrus.Logger
}

func NewPersonnelService(repo PersonnelRepository, logger *logrus.Logger) PersonnelService {
	return &personnelService{
		repo:   repo,
		logger: logger,
	}
}

func (s *personnelService) ListPersonnel(ctx context.Context) ([]*models.Personnel, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "personnel",
		"method":  "ListPersonnel",
	})

	personnel, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list personnel from repository")
		return nil, fmt.Errorf("service: could not list personnel: %w", err)
	}
	return personnel, nil
}

// CreatePersonnel создает сотрудника, статус по умолчанию available
func (s *personnelService) CreatePersonnel(ctx context.Context, p *models.Personnel) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "personnel",
		"method":  "CreatePersonnel",
		"name":    p.Name,
	})
	log.Info("Attempting to create personnel")

	if p.Status == "" {
		p.Status = "available"
	}
	if err := s.repo.Create(ctx, p); err != nil {
		log.WithError(err).Error("Failed to create personnel in repository")
		return fmt.Errorf("service: could not create personnel: %w", err)
	}

	log.WithField("personnel_id", p.ID).Info("Personnel created successfully")
	return nil
}

func (s *personnelService) UpdatePersonnel(ctx context.Context, id int64, patch *models.PersonnelPatch) (*models.Personnel, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "personnel",
		"method":       "UpdatePersonnel",
		"personnel_id": id,
	})
	log.Info("Attempting to update personnel")

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update personnel in repository")
		return nil, fmt.Errorf("service: could not update personnel: %w", err)
	}

	log.Info("Personnel updated successfully")
	return updated, nil
}

func (s *personnelService) DeletePersonnel(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "personnel",
		"method":       "DeletePersonnel",
		"personnel_id": id,
	})
	log.Info("Attempting to delete personnel")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete personnel in repository")
		return fmt.Errorf("service: could not delete personnel: %w", err)
	}

	log.Info("Personnel deleted successfully")
	return nil
}
