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

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo AssetRepository implementation over PostgreSQL (usable with pool or tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository builds the asset adapter. Pass pool or tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// GetByID fetches an asset by id.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `
		SELECT id, name, quantity, initial_qty, unit_cost, created_at, updated_at
		FROM assets WHERE id = $1`
	var a entity.Asset
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Quantity, &a.InitialQty, &a.UnitCost, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// DecrementQuantity subtracts amount from the asset's balance in one UPDATE,
// keeping the mutation atomic at the storage layer.
func (r *AssetRepo) DecrementQuantity(id string, amount int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE assets SET quantity = quantity - $2, updated_at = now() WHERE id = $1`,
		id, amount,
	)
	if err != nil {
		return fmt.Errorf("decrement asset quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
