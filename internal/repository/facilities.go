package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/service"
)

type FacilityRepository struct {
	db *pgxpool.Pool
}

func NewFacilityRepository(db *pgxpool.Pool) service.FacilityRepository {
	return &FacilityRepository{db: db}
}

const facilitySelect = `
	SELECT
		id,
		name,
		type,
		ST_Y(location::geometry),
		ST_X(location::geometry),
		status,
		COALESCE(contact_info, ''),
		COALESCE(capacity_overall, 0),
		COALESCE(description, ''),
		last_updated
	FROM emergency_facilities
`

func scanFacility(row pgx.Row) (*models.EmergencyFacility, error) {
	facility := &models.EmergencyFacility{}
	var lat, lng *float64
	err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facility.Type,
		&lat,
		&lng,
		&facility.Status,
		&facility.ContactInfo,
		&facility.CapacityOverall,
		&facility.Description,
		&facility.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		facility.Location = &models.Point{Lat: *lat, Lng: *lng}
	}
	return facility, nil
}

// List возвращает объекты, опционально отфильтрованные по типу (без учета регистра)
func (r *FacilityRepository) List(ctx context.Context, facilityType string) ([]*models.EmergencyFacility, error) {
	query := facilitySelect
	args := []any{}
	if facilityType != "" {
		query += ` WHERE lower(type) = lower($1)`
		args = append(args, facilityType)
	}
	query += ` ORDER BY id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	defer rows.Close()

	facilities := make([]*models.EmergencyFacility, 0)
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facility row: %w", err)
		}
		facilities = append(facilities, facility)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error facility list iteration: %w", err)
	}
	return facilities, nil
}

// GetByID возвращает объект по его id
func (r *FacilityRepository) GetByID(ctx context.Context, id int64) (*models.EmergencyFacility, error) {
	facility, err := scanFacility(r.db.QueryRow(ctx, facilitySelect+` WHERE id = $1;`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get facility by id: %w", wrapErr(err))
	}
	return facility, nil
}

// ListPersonnelByFacility возвращает персонал, приписанный к объекту
func (r *FacilityRepository) ListPersonnelByFacility(ctx context.Context, facilityID int64) ([]*models.Personnel, error) {
	rows, err := r.db.Query(ctx, personnelSelect+` WHERE base_facility_id = $1 ORDER BY id;`, facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facility personnel: %w", err)
	}
	defer rows.Close()
	return collectPersonnel(rows)
}

// ListVehiclesByFacility возвращает транспорт, приписанный к объекту
func (r *FacilityRepository) ListVehiclesByFacility(ctx context.Context, facilityID int64) ([]*models.Vehicle, error) {
	rows, err := r.db.Query(ctx, vehicleSelect+` WHERE home_facility_id = $1 ORDER BY id;`, facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facility vehicles: %w", err)
	}
	defer rows.Close()
	return collectVehicles(rows)
}

// ListSuppliesByFacility возвращает запасы объекта
func (r *FacilityRepository) ListSuppliesByFacility(ctx context.Context, facilityID int64) ([]*models.SupplyItem, error) {
	rows, err := r.db.Query(ctx, supplySelect+` WHERE facility_id = $1 ORDER BY id;`, facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facility supplies: %w", err)
	}
	defer rows.Close()
	return collectSupplies(rows)
}
