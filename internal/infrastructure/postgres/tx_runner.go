package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oams-ph/transfer-api/internal/application/transfer"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

// Ensure TxRunner implements transfer.TxRunner.
var _ transfer.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner on the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, runs fn with repositories bound to that tx and
// commits, or rolls everything back on any error — counter increments and
// school inserts included.
func (r *TxRunner) Run(ctx context.Context, fn func(
	transferRepo repository.TransferRepository,
	stockRepo repository.StockRepository,
	assetRepo repository.AssetRepository,
	counterRepo repository.CounterRepository,
	schoolRepo repository.SchoolRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	transferRepo := NewTransferRepository(tx)
	stockRepo := NewStockRepository(tx)
	assetRepo := NewAssetRepository(tx)
	counterRepo := NewCounterRepository(tx)
	schoolRepo := NewSchoolRepository(tx)

	if err := fn(transferRepo, stockRepo, assetRepo, counterRepo, schoolRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
