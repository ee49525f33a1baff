package repository

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/flood_response_system/internal/models"
)

const (
	tableFloodRiskZones      = "flood_risk_zones"
	tableEmergencyFacilities = "emergency_facilities"
	tablePersonnel           = "personnel"
	tableVehicles            = "vehicles"
	tableSupplyItems         = "supply_items"
	tableResponseActions     = "response_actions"
)

// builder возвращает squirrel SQL Builder с позиционными плейсхолдерами
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// wrapErr заменяет ошибки драйвера на доменные
func wrapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return models.ErrDuplicate
	}
	return err
}
