package transfer

import (
	"context"

	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction, passing repositories bound
// to that transaction. The workflow engine relies on it for atomicity: counter
// increment, school creation, balance deduction and transfer writes commit or
// roll back as a unit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		transferRepo repository.TransferRepository,
		stockRepo repository.StockRepository,
		assetRepo repository.AssetRepository,
		counterRepo repository.CounterRepository,
		schoolRepo repository.SchoolRepository,
	) error) error
}

// OrgSnapshot issuing-office values copied onto every transfer at creation.
// Filled from configuration at startup; never re-derived afterwards.
type OrgSnapshot struct {
	EntityName     string
	FundClusterSEP string
	FundClusterPPE string
}
