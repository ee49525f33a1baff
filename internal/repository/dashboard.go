package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/service"
)

type DashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) service.DashboardRepository {
	return &DashboardRepository{db: db}
}

// SupplyTotals суммирует запасы по наименованию по всем объектам
func (r *DashboardRepository) SupplyTotals(ctx context.Context) ([]models.SupplyTotals, error) {
	query := `
		SELECT
			item_name,
			COALESCE(SUM(quantity_current), 0),
			COALESCE(SUM(quantity_capacity), 0)
		FROM supply_items
		GROUP BY item_name
		ORDER BY item_name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate supply totals: %w", err)
	}
	defer rows.Close()

	totals := make([]models.SupplyTotals, 0)
	for rows.Next() {
		var t models.SupplyTotals
		if err := rows.Scan(&t.ItemName, &t.Current, &t.Capacity); err != nil {
			return nil, fmt.Errorf("failed to scan supply totals row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error supply totals iteration: %w", err)
	}
	return totals, nil
}

// VehicleAvailability считает доступный транспорт по типу
func (r *DashboardRepository) VehicleAvailability(ctx context.Context) ([]models.GroupAvailability, error) {
	query := `
		SELECT
			vehicle_type,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'available')
		FROM vehicles
		GROUP BY vehicle_type
		ORDER BY vehicle_type;
	`
	return r.groupAvailability(ctx, query, "vehicle")
}

// PersonnelAvailability считает доступный персонал по роли
func (r *DashboardRepository) PersonnelAvailability(ctx context.Context) ([]models.GroupAvailability, error) {
	query := `
		SELECT
			role,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'available')
		FROM personnel
		GROUP BY role
		ORDER BY role;
	`
	return r.groupAvailability(ctx, query, "personnel")
}

func (r *DashboardRepository) groupAvailability(ctx context.Context, query, kind string) ([]models.GroupAvailability, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s availability: %w", kind, err)
	}
	defer rows.Close()

	groups := make([]models.GroupAvailability, 0)
	for rows.Next() {
		var g models.GroupAvailability
		if err := rows.Scan(&g.Name, &g.Total, &g.Available); err != nil {
			return nil, fmt.Errorf("failed to scan %s availability row: %w", kind, err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error %s availability iteration: %w", kind, err)
	}
	return groups, nil
}

// ShelterStats возвращает количество убежищ, работающих убежищ и их суммарную вместимость
func (r *DashboardRepository) ShelterStats(ctx context.Context) (*models.ShelterStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'operational'),
			COALESCE(SUM(capacity_overall) FILTER (WHERE status = 'operational'), 0)
		FROM emergency_facilities
		WHERE type = 'shelter';
	`
	stats := &models.ShelterStats{}
	err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Operational, &stats.OperationalCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to get shelter stats: %w", err)
	}
	return stats, nil
}
