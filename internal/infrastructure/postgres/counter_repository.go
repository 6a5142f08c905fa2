package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo per-type transfer counter over PostgreSQL (usable with pool or tx).
type CounterRepo struct {
	q Querier
}

// NewCounterRepository builds the counter adapter. Pass pool or tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Increment bumps the counter and returns the new value in a single UPDATE
// ... RETURNING, so the read-modify-write happens at the storage layer and two
// concurrent callers can never observe the same count. Counter rows are
// provisioned out-of-band; a missing type is not-found, never auto-created.
func (r *CounterRepo) Increment(transferType string) (int, error) {
	query := `
		UPDATE transfer_counters SET count = count + 1
		WHERE type = $1
		RETURNING count`
	var count int
	err := r.q.QueryRow(context.Background(), query, transferType).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment transfer counter: %w", err)
	}
	return count, nil
}
