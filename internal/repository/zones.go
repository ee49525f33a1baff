package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/service"
)

type ZoneRepository struct {
	db *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) service.ZoneRepository {
	return &ZoneRepository{db: db}
}

// ListZones возвращает все зоны риска наводнения с геометрией в GeoJSON
func (r *ZoneRepository) ListZones(ctx context.Context) ([]*models.FloodRiskZone, error) {
	query := `
		SELECT
			id,
			zone_name,
			risk_level,
			water_level,
			COALESCE(description, ''),
			ST_AsGeoJSON(geometry),
			last_updated
		FROM flood_risk_zones
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list flood risk zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.FloodRiskZone, 0)
	for rows.Next() {
		zone := &models.FloodRiskZone{}
		var geojson []byte
		err := rows.Scan(
			&zone.ID,
			&zone.ZoneName,
			&zone.RiskLevel,
			&zone.WaterLevel,
			&zone.Description,
			&geojson,
			&zone.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flood risk zone row: %w", err)
		}
		zone.Geometry = geojson
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zone list iteration: %w", err)
	}
	return zones, nil
}
