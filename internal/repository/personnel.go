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

type PersonnelRepository struct {
	db *pgxpool.Pool
}

func NewPersonnelRepository(db *pgxpool.Pool) service.PersonnelRepository {
	return &PersonnelRepository{db: db}
}

const personnelSelect = `
	SELECT
		id,
		base_facility_id,
		name,
		role,
		COALESCE(skills, ''),
		status,
		COALESCE(current_assignment, ''),
		COALESCE(contact_number, ''),
		last_updated
	FROM personnel
`

func scanPersonnel(row pgx.Row) (*models.Personnel, error) {
	p := &models.Personnel{}
	err := row.Scan(
		&p.ID,
		&p.BaseFacilityID,
		&p.Name,
		&p.Role,
		&p.Skills,
		&p.Status,
		&p.CurrentAssignment,
		&p.ContactNumber,
		&p.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectPersonnel(rows pgx.Rows) ([]*models.Personnel, error) {
	personnel := make([]*models.Personnel, 0)
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan personnel row: %w", err)
		}
		personnel = append(personnel, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error personnel list iteration: %w", err)
	}
	return personnel, nil
}

// List возвращает весь персонал
func (r *PersonnelRepository) List(ctx context.Context) ([]*models.Personnel, error) {
	rows, err := r.db.Query(ctx, personnelSelect+` ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()
	return collectPersonnel(rows)
}

// Create создает запись о сотруднике в транзакции
func (r *PersonnelRepository) Create(ctx context.Context, p *models.Personnel) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO personnel (base_facility_id, name, role, skills, status, current_assignment, contact_number, last_updated)
			VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''), NOW())
			RETURNING id, last_updated;
		`
		return tx.QueryRow(ctx, query,
			p.BaseFacilityID,
			p.Name,
			p.Role,
			p.Skills,
			p.Status,
			p.CurrentAssignment,
			p.ContactNumber,
		).Scan(&p.ID, &p.LastUpdated)
	})
	if err != nil {
		return fmt.Errorf("failed to create personnel: %w", err)
	}
	return nil
}

// personnelUpdateQuery собирает UPDATE только из заполненных полей патча
func personnelUpdateQuery(id int64, patch *models.PersonnelPatch) squirrel.UpdateBuilder {
	update := builder().Update(tablePersonnel).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Role != nil {
		update = update.Set("role", *patch.Role)
	}
	if patch.Skills != nil {
		update = update.Set("skills", *patch.Skills)
	}
	if patch.Status != nil {
		update = update.Set("status", *patch.Status)
	}
	if patch.CurrentAssignment != nil {
		update = update.Set("current_assignment", *patch.CurrentAssignment)
	}
	if patch.ContactNumber != nil {
		update = update.Set("contact_number", *patch.ContactNumber)
	}
	if patch.BaseFacilityID != nil {
		update = update.Set("base_facility_id", *patch.BaseFacilityID)
	}
	return update
}

// Update применяет частичное обновление, всегда обновляя last_updated
func (r *PersonnelRepository) Update(ctx context.Context, id int64, patch *models.PersonnelPatch) (*models.Personnel, error) {
	query, args, err := personnelUpdateQuery(id, patch).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build personnel update: %w", err)
	}

	var updated *models.Personnel
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		updated, err = scanPersonnel(tx.QueryRow(ctx, personnelSelect+` WHERE id = $1;`, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update personnel: %w", wrapErr(err))
	}
	return updated, nil
}

// Delete удаляет сотрудника по id
func (r *PersonnelRepository) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM personnel WHERE id = $1;`, id)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete personnel: %w", wrapErr(err))
	}
	return nil
}
