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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo StockRepository implementation over PostgreSQL (usable with pool or tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the stock adapter. Pass pool or tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetByID fetches a stock unit by id.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `
		SELECT id, asset_id, condition, item_no, serial_no, reference, office, created_at, updated_at
		FROM stocks WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.AssetID, &s.Condition, &s.ItemNo, &s.SerialNo, &s.Reference,
		&s.Office, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// MarkTransferred stamps the unit transferred with its assigned item number
// and the destination office.
func (r *StockRepo) MarkTransferred(id, itemNo, office string) error {
	query := `
		UPDATE stocks SET condition = $2, item_no = $3, office = $4, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, entity.StockConditionTransferred, itemNo, office)
	if err != nil {
		return fmt.Errorf("mark stock transferred: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
