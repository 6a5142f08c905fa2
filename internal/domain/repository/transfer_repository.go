package repository

import "github.com/oams-ph/transfer-api/internal/domain/entity"

// TransferRepository defines the persistence port for Transfer.
// Transfers are never physically deleted.
type TransferRepository interface {
	Create(t *entity.Transfer) error
	// GetByID returns the transfer with its items in stored order, or nil if absent.
	GetByID(id string) (*entity.Transfer, error)
	// Update writes the mutable header fields (status, approval/completion stamps).
	Update(t *entity.Transfer) error
	// ReplaceItems swaps the transfer's item rows. Callers must only pass stock
	// ids already belonging to the transfer; the port does not re-check.
	ReplaceItems(transferID string, items []entity.TransferItem) error
	List(limit, offset int) ([]*entity.Transfer, error)
}
