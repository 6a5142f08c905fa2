package repository

import "github.com/oams-ph/transfer-api/internal/domain/entity"

// DivisionRepository defines the persistence port for Division (soft delete).
type DivisionRepository interface {
	Create(d *entity.Division) error
	GetByID(id string) (*entity.Division, error)
	Update(d *entity.Division) error
	List(limit, offset int) ([]*entity.Division, error)
	// Delete marks the division deleted; the row stays.
	Delete(id string) error
}
