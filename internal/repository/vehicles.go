package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/service"
)

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) service.VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleSelect = `
	SELECT
		id,
		home_facility_id,
		vehicle_type,
		license_plate,
		ST_Y(current_location::geometry),
		ST_X(current_location::geometry),
		status,
		COALESCE(capacity_load, ''),
		COALESCE(assigned_to, ''),
		last_updated
	FROM vehicles
`

func scanVehicle(row pgx.Row) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	var lat, lng *float64
	err := row.Scan(
		&v.ID,
		&v.HomeFacilityID,
		&v.VehicleType,
		&v.LicensePlate,
		&lat,
		&lng,
		&v.Status,
		&v.CapacityLoad,
		&v.AssignedTo,
		&v.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		v.CurrentLocation = &models.Point{Lat: *lat, Lng: *lng}
	}
	return v, nil
}

func collectVehicles(rows pgx.Rows) ([]*models.Vehicle, error) {
	vehicles := make([]*models.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error vehicle list iteration: %w", err)
	}
	return vehicles, nil
}

// List возвращает все транспортные средства
func (r *VehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	rows, err := r.db.Query(ctx, vehicleSelect+` ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()
	return collectVehicles(rows)
}

// Create создает транспортное средство, lat/lng преобразуются в точку геометрии
func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var lat, lng *float64
		if v.CurrentLocation != nil {
			lat = &v.CurrentLocation.Lat
			lng = &v.CurrentLocation.Lng
		}
		query := `
			INSERT INTO vehicles (home_facility_id, vehicle_type, license_plate, current_location, status, capacity_load, assigned_to, last_updated)
			VALUES ($1, $2, $3,
				CASE WHEN $4::float8 IS NOT NULL AND $5::float8 IS NOT NULL
					THEN ST_SetSRID(ST_MakePoint($5, $4), 4326)
					ELSE NULL END,
				$6, NULLIF($7, ''), NULLIF($8, ''), NOW())
			RETURNING id, last_updated;
		`
		return tx.QueryRow(ctx, query,
			v.HomeFacilityID,
			v.VehicleType,
			v.LicensePlate,
			lat,
			lng,
			v.Status,
			v.CapacityLoad,
			v.AssignedTo,
		).Scan(&v.ID, &v.LastUpdated)
	})
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", wrapErr(err))
	}
	return nil
}

// vehicleUpdateQuery собирает UPDATE только из заполненных полей патча
func vehicleUpdateQuery(id int64, patch *models.VehiclePatch) squirrel.UpdateBuilder {
	update := builder().Update(tableVehicles).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.VehicleType != nil {
		update = update.Set("vehicle_type", *patch.VehicleType)
	}
	if patch.LicensePlate != nil {
		update = update.Set("license_plate", *patch.LicensePlate)
	}
	if patch.Status != nil {
		update = update.Set("status", *patch.Status)
	}
	if patch.CapacityLoad != nil {
		update = update.Set("capacity_load", *patch.CapacityLoad)
	}
	if patch.AssignedTo != nil {
		update = update.Set("assigned_to", *patch.AssignedTo)
	}
	if patch.HomeFacilityID != nil {
		update = update.Set("home_facility_id", *patch.HomeFacilityID)
	}
	if patch.Lat != nil && patch.Lng != nil {
		update = update.Set("current_location", squirrel.Expr("ST_SetSRID(ST_MakePoint(?, ?), 4326)", *patch.Lng, *patch.Lat))
	}
	return update
}

// Update применяет частичное обновление, всегда обновляя last_updated
func (r *VehicleRepository) Update(ctx context.Context, id int64, patch *models.VehiclePatch) (*models.Vehicle, error) {
	query, args, err := vehicleUpdateQuery(id, patch).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build vehicle update: %w", err)
	}

	var updated *models.Vehicle
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		updated, err = scanVehicle(tx.QueryRow(ctx, vehicleSelect+` WHERE id = $1;`, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", wrapErr(err))
	}
	return updated, nil
}

// Delete удаляет транспортное средство по id
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM vehicles WHERE id = $1;`, id)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", wrapErr(err))
	}
	return nil
}
