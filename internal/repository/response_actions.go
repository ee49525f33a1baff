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

type ResponseActionRepository struct {
	db *pgxpool.Pool
}

func NewResponseActionRepository(db *pgxpool.Pool) service.ResponseActionRepository {
	return &ResponseActionRepository{db: db}
}

const responseActionSelect = `
	SELECT
		id,
		title,
		COALESCE(team, ''),
		COALESCE(location, ''),
		COALESCE(timeframe, ''),
		COALESCE(importance, ''),
		status,
		created_at,
		updated_at
	FROM response_actions
`

func scanResponseAction(row pgx.Row) (*models.ResponseAction, error) {
	a := &models.ResponseAction{}
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Team,
		&a.Location,
		&a.Timeframe,
		&a.Importance,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List возвращает мероприятия, новые первыми
func (r *ResponseActionRepository) List(ctx context.Context) ([]*models.ResponseAction, error) {
	rows, err := r.db.Query(ctx, responseActionSelect+` ORDER BY created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list response actions: %w", err)
	}
	defer rows.Close()

	actions := make([]*models.ResponseAction, 0)
	for rows.Next() {
		a, err := scanResponseAction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response action row: %w", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error response action list iteration: %w", err)
	}
	return actions, nil
}

// Create создает мероприятие в транзакции
func (r *ResponseActionRepository) Create(ctx context.Context, a *models.ResponseAction) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO response_actions (title, team, location, timeframe, importance, status)
			VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
			RETURNING id, created_at, updated_at;
		`
		return tx.QueryRow(ctx, query,
			a.Title,
			a.Team,
			a.Location,
			a.Timeframe,
			a.Importance,
			a.Status,
		).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	})
	if err != nil {
		return fmt.Errorf("failed to create response action: %w", err)
	}
	return nil
}

// responseActionUpdateQuery собирает UPDATE только из заполненных полей патча
func responseActionUpdateQuery(id int64, patch *models.ResponseActionPatch) squirrel.UpdateBuilder {
	update := builder().Update(tableResponseActions).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Team != nil {
		update = update.Set("team", *patch.Team)
	}
	if patch.Location != nil {
		update = update.Set("location", *patch.Location)
	}
	if patch.Timeframe != nil {
		update = update.Set("timeframe", *patch.Timeframe)
	}
	if patch.Importance != nil {
		update = update.Set("importance", *patch.Importance)
	}
	if patch.Status != nil {
		update = update.Set("status", *patch.Status)
	}
	return update
}

// Update применяет частичное обновление, всегда обновляя updated_at
func (r *ResponseActionRepository) Update(ctx context.Context, id int64, patch *models.ResponseActionPatch) (*models.ResponseAction, error) {
	query, args, err := responseActionUpdateQuery(id, patch).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build response action update: %w", err)
	}

	var updated *models.ResponseAction
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		updated, err = scanResponseAction(tx.QueryRow(ctx, responseActionSelect+` WHERE id = $1;`, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update response action: %w", wrapErr(err))
	}
	return updated, nil
}

// Delete удаляет мероприятие по id
func (r *ResponseActionRepository) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM response_actions WHERE id = $1;`, id)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete response action: %w", wrapErr(err))
	}
	return nil
}
