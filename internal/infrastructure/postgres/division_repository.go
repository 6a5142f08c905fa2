package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

var _ repository.DivisionRepository = (*DivisionRepo)(nil)

// DivisionRepo DivisionRepository implementation over PostgreSQL (usable with pool or tx).
// Deletes are masked: deleted rows stay but are filtered from every read.
type DivisionRepo struct {
	q Querier
}

// NewDivisionRepository builds the division adapter. Pass pool or tx (Querier).
func NewDivisionRepository(q Querier) *DivisionRepo {
	return &DivisionRepo{q: q}
}

// Create persists a new division. Name is unique among non-deleted rows.
func (r *DivisionRepo) Create(d *entity.Division) error {
	query := `
		INSERT INTO divisions (id, name, deleted, created_at, updated_at)
		VALUES ($1, $2, false, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.Name, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert division: %w", err)
	}
	return nil
}

// GetByID fetches a non-deleted division by id.
func (r *DivisionRepo) GetByID(id string) (*entity.Division, error) {
	query := `
		SELECT id, name, deleted, created_at, updated_at
		FROM divisions WHERE id = $1 AND deleted = false`
	var d entity.Division
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.Deleted, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get division: %w", err)
	}
	return &d, nil
}

// Update writes the division name.
func (r *DivisionRepo) Update(d *entity.Division) error {
	query := `
		UPDATE divisions SET name = $2, updated_at = $3
		WHERE id = $1 AND deleted = false`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.Name, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update division: %w", err)
	}
	return nil
}

// List fetches non-deleted divisions with pagination.
func (r *DivisionRepo) List(limit, offset int) ([]*entity.Division, error) {
	query := `
		SELECT id, name, deleted, created_at, updated_at
		FROM divisions WHERE deleted = false ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Division
	for rows.Next() {
		var d entity.Division
		if err := rows.Scan(&d.ID, &d.Name, &d.Deleted, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan division: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete masks the division; the row stays.
func (r *DivisionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE divisions SET deleted = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete division: %w", err)
	}
	return nil
}
