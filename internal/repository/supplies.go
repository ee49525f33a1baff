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

type SupplyRepository struct {
	db *pgxpool.Pool
}

func NewSupplyRepository(db *pgxpool.Pool) service.SupplyRepository {
	return &SupplyRepository{db: db}
}

const supplySelect = `
	SELECT
		id,
		facility_id,
		item_name,
		quantity_current,
		COALESCE(quantity_capacity, 0),
		COALESCE(unit, ''),
		status,
		last_updated
	FROM supply_items
`

func scanSupply(row pgx.Row) (*models.SupplyItem, error) {
	s := &models.SupplyItem{}
	err := row.Scan(
		&s.ID,
		&s.FacilityID,
		&s.ItemName,
		&s.QuantityCurrent,
		&s.QuantityCapacity,
		&s.Unit,
		&s.Status,
		&s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func collectSupplies(rows pgx.Rows) ([]*models.SupplyItem, error) {
	supplies := make([]*models.SupplyItem, 0)
	for rows.Next() {
		s, err := scanSupply(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supply item row: %w", err)
		}
		supplies = append(supplies, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error supply list iteration: %w", err)
	}
	return supplies, nil
}

// List возвращает все запасы
func (r *SupplyRepository) List(ctx context.Context) ([]*models.SupplyItem, error) {
	rows, err := r.db.Query(ctx, supplySelect+` ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list supply items: %w", err)
	}
	defer rows.Close()
	return collectSupplies(rows)
}

// Create создает запись о запасе в транзакции
func (r *SupplyRepository) Create(ctx context.Context, s *models.SupplyItem) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO supply_items (facility_id, item_name, quantity_current, quantity_capacity, unit, status, last_updated)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			RETURNING id, last_updated;
		`
		return tx.QueryRow(ctx, query,
			s.FacilityID,
			s.ItemName,
			s.QuantityCurrent,
			s.QuantityCapacity,
			s.Unit,
			s.Status,
		).Scan(&s.ID, &s.LastUpdated)
	})
	if err != nil {
		return fmt.Errorf("failed to create supply item: %w", err)
	}
	return nil
}

// supplyUpdateQuery собирает UPDATE только из заполненных полей патча
func supplyUpdateQuery(id int64, patch *models.SupplyItemPatch) squirrel.UpdateBuilder {
	update := builder().Update(tableSupplyItems).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.ItemName != nil {
		update = update.Set("item_name", *patch.ItemName)
	}
	if patch.QuantityCurrent != nil {
		update = update.Set("quantity_current", *patch.QuantityCurrent)
	}
	if patch.QuantityCapacity != nil {
		update = update.Set("quantity_capacity", *patch.QuantityCapacity)
	}
	if patch.Unit != nil {
		update = update.Set("unit", *patch.Unit)
	}
	if patch.Status != nil {
		update = update.Set("status", *patch.Status)
	}
	if patch.FacilityID != nil {
		update = update.Set("facility_id", *patch.FacilityID)
	}
	return update
}

// Update применяет частичное обновление, всегда обновляя last_updated
func (r *SupplyRepository) Update(ctx context.Context, id int64, patch *models.SupplyItemPatch) (*models.SupplyItem, error) {
	query, args, err := supplyUpdateQuery(id, patch).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build supply update: %w", err)
	}

	var updated *models.SupplyItem
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		updated, err = scanSupply(tx.QueryRow(ctx, supplySelect+` WHERE id = $1;`, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update supply item: %w", wrapErr(err))
	}
	return updated, nil
}

// Delete удаляет запись о запасе по id
func (r *SupplyRepository) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM supply_items WHERE id = $1;`, id)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete supply item: %w", wrapErr(err))
	}
	return nil
}
