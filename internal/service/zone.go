package service

import (
	"context"
	"fmt"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ZoneRepository определяет контракт для работы с зонами риска наводнения
type ZoneRepository interface {
	ListZones(ctx context.Context) ([]*models.FloodRiskZone, error)
}

// ZoneService определяет контракт бизнес-логики зон риска
type ZoneService interface {
	ListZones(ctx context.Context) ([]*models.FloodRiskZone, error)
}

type zoneService struct {
	repo   ZoneRepository
	logger *logrus.Logger
}

func NewZoneService(repo ZoneRepository, logger *logrus.Logger) ZoneService {
	return &zoneService{
		repo:   repo,
		logger: logger,
	}
}

// ListZones возвращает все зоны риска наводнения
func (s *zoneService) ListZones(ctx context.Context) ([]*models.FloodRiskZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "ListZones",
	})
	log.Info("Listing flood risk zones")

	zones, err := s.repo.ListZones(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list flood risk zones from repository")
		return nil, fmt.Errorf("service: could not list flood risk zones: %w", err)
	}

	log.WithField("count", len(zones)).Info("Flood risk zones listed successfully")
	return zones, nil
}
