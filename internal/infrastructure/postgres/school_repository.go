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

var _ repository.SchoolRepository = (*SchoolRepo)(nil)

// SchoolRepo SchoolRepository implementation over PostgreSQL (usable with pool or tx).
// Deletes are masked: deleted rows stay but are filtered from every read.
type SchoolRepo struct {
	q Querier
}

// NewSchoolRepository builds the school adapter. Pass pool or tx (Querier).
func NewSchoolRepository(q Querier) *SchoolRepo {
	return &SchoolRepo{q: q}
}

// Create persists a new school. Name is unique among non-deleted rows.
func (r *SchoolRepo) Create(s *entity.School) error {
	query := `
		INSERT INTO schools (id, name, division_id, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, false, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.DivisionID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert school: %w", err)
	}
	return nil
}

// GetByID fetches a non-deleted school by id.
func (r *SchoolRepo) GetByID(id string) (*entity.School, error) {
	query := `
		SELECT id, name, division_id, deleted, created_at, updated_at
		FROM schools WHERE id = $1 AND deleted = false`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName fetches a non-deleted school by exact name.
func (r *SchoolRepo) GetByName(name string) (*entity.School, error) {
	query := `
		SELECT id, name, division_id, deleted, created_at, updated_at
		FROM schools WHERE name = $1 AND deleted = false`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// Update writes name and division binding.
func (r *SchoolRepo) Update(s *entity.School) error {
	query := `
		UPDATE schools SET name = $2, division_id = $3, updated_at = $4
		WHERE id = $1 AND deleted = false`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.DivisionID, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update school: %w", err)
	}
	return nil
}

// List fetches non-deleted schools with pagination.
func (r *SchoolRepo) List(limit, offset int) ([]*entity.School, error) {
	query := `
		SELECT id, name, division_id, deleted, created_at, updated_at
		FROM schools WHERE deleted = false ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	defer rows.Close()

	var list []*entity.School
	for rows.Next() {
		var s entity.School
		if err := rows.Scan(&s.ID, &s.Name, &s.DivisionID, &s.Deleted, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan school: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete masks the school; the row stays.
func (r *SchoolRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE schools SET deleted = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete school: %w", err)
	}
	return nil
}

func (r *SchoolRepo) scanOne(row pgx.Row) (*entity.School, error) {
	var s entity.School
	err := row.Scan(&s.ID, &s.Name, &s.DivisionID, &s.Deleted, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get school: %w", err)
	}
	return &s, nil
}
