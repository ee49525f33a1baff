package service

import (
	"context"
	"fmt"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// SupplyRepository определяет контракт для работы с запасами
type SupplyRepository interface {
	List(ctx context.Context) ([]*models.SupplyItem, error)
	Create(ctx context.Context, s *models.SupplyItem) error
	Update(ctx context.Context, id int64, patch *models.SupplyItemPatch) (*models.SupplyItem, error)
	Delete(ctx context.Context, id int64) error
}

// SupplyService определяет контракт бизнес-логики запасов
type SupplyService interface {
	ListSupplyItems(ctx context.Context) ([]*models.SupplyItem, error)
	CreateSupplyItem(ctx context.Context, item *models.SupplyItem) error
	UpdateSupplyItem(ctx context.Context, id int64, patch *models.SupplyItemPatch) (*models.SupplyItem, error)
	DeleteSupplyItem(ctx context.Context, id int64) error
}

type supplyService struct {
	repo   SupplyRepository
	logger *logrus.Logger
}

func NewSupplyService(repo SupplyRepository, logger *logrus.Logger) SupplyService {
	return &supplyService{
		repo:   repo,
		logger: logger,
	}
}

func (s *supplyService) ListSupplyItems(ctx context.Context) ([]*models.SupplyItem, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "supply",
		"method":  "ListSupplyItems",
	})

	items, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list supply items from repository")
		return nil, fmt.Errorf("service: could not list supply items: %w", err)
	}
	return items, nil
}

// CreateSupplyItem создает запас, статус по умолчанию adequate
func (s *supplyService) CreateSupplyItem(ctx context.Context, item *models.SupplyItem) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "supply",
		"method":    "CreateSupplyItem",
		"item_name": item.ItemName,
	})
	log.Info("Attempting to create supply item")

	if item.Status == "" {
		item.Status = "adequate"
	}
	if err := s.repo.Create(ctx, item); err != nil {
		log.WithError(err).Error("Failed to create supply item in repository")
		return fmt.Errorf("service: could not create supply item: %w", err)
	}

	log.WithField("supply_id", item.ID).Info("Supply item created successfully")
	return nil
}

func (s *supplyService) UpdateSupplyItem(ctx context.Context, id int64, patch *models.SupplyItemPatch) (*models.SupplyItem, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "supply",
		"method":    "UpdateSupplyItem",
		"supply_id": id,
	})
	log.Info("Attempting to update supply item")

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update supply item in repository")
		return nil, fmt.Errorf("service: could not update supply item: %w", err)
	}

	log.Info("Supply item updated successfully")
	return updated, nil
}

func (s *supplyService) DeleteSupplyItem(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "supply",
		"method":    "DeleteSupplyItem",
		"supply_id": id,
	})
	log.Info("Attempting to delete supply item")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete supply item in repository")
		return fmt.Errorf("service: could not delete supply item: %w", err)
	}

	log.Info("Supply item deleted successfully")
	return nil
}
