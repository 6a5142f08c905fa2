package repository

import "github.com/oams-ph/transfer-api/internal/domain/entity"

// StockRepository defines the port for trackable stock units.
// Used inside transactions during batch issuance.
type StockRepository interface {
	GetByID(id string) (*entity.Stock, error)
	// MarkTransferred stamps the unit with condition "transferred", its assigned
	// item number and the destination office.
	MarkTransferred(id, itemNo, office string) error
}
