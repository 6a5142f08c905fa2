package repository

import "github.com/oams-ph/transfer-api/internal/domain/entity"

// AssetRepository defines the port for asset balance bookkeeping.
type AssetRepository interface {
	GetByID(id string) (*entity.Asset, error)
	// DecrementQuantity atomically subtracts amount from the asset's balance.
	DecrementQuantity(id string, amount int) error
}
