package repository

import "github.com/oams-ph/transfer-api/internal/domain/entity"

// SchoolRepository defines the persistence port for School (soft delete).
type SchoolRepository interface {
	Create(s *entity.School) error
	GetByID(id string) (*entity.School, error)
	GetByName(name string) (*entity.School, error)
	Update(s *entity.School) error
	List(limit, offset int) ([]*entity.School, error)
	// Delete marks the school deleted; the row stays.
	Delete(id string) error
}
