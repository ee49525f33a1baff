package service

import (
	"context"
	"fmt"
	"math"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DashboardRepository определяет контракт для агрегирующих запросов дашборда
type DashboardRepository interface {
	SupplyTotals(ctx context.Context) ([]models.SupplyTotals, error)
	VehicleAvailability(ctx context.Context) ([]models.GroupAvailability, error)
	PersonnelAvailability(ctx context.Context) ([]models.GroupAvailability, error)
	ShelterStats(ctx context.Context) (*models.ShelterStats, error)
}

// DashboardService определяет контракт для сводки готовности ресурсов
type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

type dashboardService struct {
	repo   DashboardRepository
	logger *logrus.Logger
}

func NewDashboardService(repo DashboardRepository, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
	}
}

// Summary собирает сводку готовности по запасам, транспорту, персоналу и убежищам
func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "Summary",
	})
	log.Info("Building dashboard summary")

	supplies, err := s.repo.SupplyTotals(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate supply totals")
		return nil, fmt.Errorf("service: could not aggregate supplies: %w", err)
	}

	vehicles, err := s.repo.VehicleAvailability(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate vehicle availability")
		return nil, fmt.Errorf("service: could not aggregate vehicles: %w", err)
	}

	personnel, err := s.repo.PersonnelAvailability(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate personnel availability")
		return nil, fmt.Errorf("service: could not aggregate personnel: %w", err)
	}

	shelters, err := s.repo.ShelterStats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get shelter stats")
		return nil, fmt.Errorf("service: could not get shelter stats: %w", err)
	}

	summary := &models.DashboardSummary{
		Supplies:  make([]models.SummaryRow, 0, len(supplies)),
		Vehicles:  make([]models.SummaryRow, 0, len(vehicles)),
		Personnel: make([]models.SummaryRow, 0, len(personnel)),
	}

	for _, t := range supplies {
		row := summaryRow(t.ItemName, t.Current, t.Capacity, "units")
		row.NeedsReplenishment = needsReplenishment(row.Status)
		summary.Supplies = append(summary.Supplies, row)
	}

	for _, g := range vehicles {
		summary.Vehicles = append(summary.Vehicles, summaryRow(g.Name, g.Available, g.Total, "vehicles"))
	}

	for _, g := range personnel {
		row := summaryRow(g.Name, g.Available, g.Total, "people")
		row.NeedsReplenishment = needsReplenishment(row.Status)
		summary.Personnel = append(summary.Personnel, row)
	}

	summary.Shelters = shelterRows(shelters)

	log.WithFields(logrus.Fields{
		"supplies":  len(summary.Supplies),
		"vehicles":  len(summary.Vehicles),
		"personnel": len(summary.Personnel),
	}).Info("Dashboard summary built successfully")
	return summary, nil
}

// summaryRow считает процент и статус категории
func summaryRow(name string, current, total int64, unit string) models.SummaryRow {
	p := percentage(current, total)
	return models.SummaryRow{
		Name:       name,
		Current:    current,
		Total:      total,
		Unit:       unit,
		Status:     statusFor(p),
		Percentage: p,
	}
}

// shelterRows формирует две фиксированные строки по убежищам.
// Строка вместимости по построению всегда current==total и 100%.
func shelterRows(stats *models.ShelterStats) []models.SummaryRow {
	p := percentage(stats.Operational, stats.Total)
	centersStatus := "adequate"
	if p < 60 {
		centersStatus = "low"
	}
	return []models.SummaryRow{
		{
			Name:       "Evacuation Centers",
			Current:    stats.Operational,
			Total:      stats.Total,
			Unit:       "centers",
			Status:     centersStatus,
			Percentage: p,
		},
		{
			Name:       "Capacity (People)",
			Current:    stats.OperationalCapacity,
			Total:      stats.OperationalCapacity,
			Unit:       "people",
			Status:     "adequate",
			Percentage: 100,
		},
	}
}

// percentage возвращает current/total*100, округленный до 2 знаков; 0 при пустой группе
func percentage(current, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(current)/float64(total)*100*100) / 100
}

func statusFor(p float64) string {
	switch {
	case p >= 60:
		return "adequate"
	case p >= 30:
		return "low"
	default:
		return "critical"
	}
}

func needsReplenishment(status string) *bool {
	v := status == "low" || status == "critical"
	return &v
}
