package service

import (
	"context"
	"fmt"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ResponseActionRepository определяет контракт для работы с мероприятиями реагирования
type ResponseActionRepository interface {
	List(ctx context.Context) ([]*models.ResponseAction, error)
	Create(ctx context.Context, a *models.ResponseAction) error
	Update(ctx context.Context, id int64, patch *models.ResponseActionPatch) (*models.ResponseAction, error)
	Delete(ctx context.Context, id int64) error
}

// ResponseActionService определяет контракт бизнес-логики мероприятий
type ResponseActionService interface {
	ListResponseActions(ctx context.Context) ([]*models.ResponseAction, error)
	CreateResponseAction(ctx context.Context, a *models.ResponseAction) error
	UpdateResponseAction(ctx context.Context, id int64, patch *models.ResponseActionPatch) (*models.ResponseAction, error)
	DeleteResponseAction(ctx context.Context, id int64) error
}

type responseActionService struct {
	repo   ResponseActionRepository
	logger *logrus.Logger
}

func NewResponseActionService(repo ResponseActionRepository, logger *logrus.Logger) ResponseActionService {
	return &responseActionService{
		repo:   repo,
		logger: logger,
	}
}

func (s *responseActionService) ListResponseActions(ctx context.Context) ([]*models.ResponseAction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "response_action",
		"method":  "ListResponseActions",
	})

	actions, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list response actions from repository")
		return nil, fmt.Errorf("service: could not list response actions: %w", err)
	}
	return actions, nil
}

// CreateResponseAction создает мероприятие, статус по умолчанию active
func (s *responseActionService) CreateResponseAction(ctx context.Context, a *models.ResponseAction) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "response_action",
		"method":  "CreateResponseAction",
		"title":   a.Title,
	})
	log.Info("Attempting to create response action")

	if a.Status == "" {
		a.Status = "active"
	}
	if err := s.repo.Create(ctx, a); err != nil {
		log.WithError(err).Error("Failed to create response action in repository")
		return fmt.Errorf("service: could not create response action: %w", err)
	}

	log.WithField("action_id", a.ID).Info("Response action created successfully")
	return nil
}

func (s *responseActionService) UpdateResponseAction(ctx context.Context, id int64, patch *models.ResponseActionPatch) (*models.ResponseAction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "response_action",
		"method":    "UpdateResponseAction",
		"action_id": id,
	})
	log.Info("Attempting to update response action")

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update response action in repository")
		return nil, fmt.Errorf("service: could not update response action: %w", err)
	}

	log.Info("Response action updated successfully")
	return updated, nil
}

func (s *responseActionService) DeleteResponseAction(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "response_action",
		"method":    "DeleteResponseAction",
		"action_id": id,
	})
	log.Info("Attempting to delete response action")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete response action in repository")
		return fmt.Errorf("service: could not delete response action: %w", err)
	}

	log.Info("Response action deleted successfully")
	return nil
}
