package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/oams-ph/transfer-api/internal/application/dto"
	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

// SchoolUseCase CRUD for destination schools (masked delete, unique name).
type SchoolUseCase struct {
	repo         repository.SchoolRepository
	divisionRepo repository.DivisionRepository
}

// NewSchoolUseCase builds the use case.
func NewSchoolUseCase(repo repository.SchoolRepository, divisionRepo repository.DivisionRepository) *SchoolUseCase {
	return &SchoolUseCase{repo: repo, divisionRepo: divisionRepo}
}

// Create creates a school. The optional division binding must resolve.
func (uc *SchoolUseCase) Create(in dto.CreateSchoolRequest) (*dto.SchoolResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DivisionID != nil {
		division, err := uc.divisionRepo.GetByID(*in.DivisionID)
		if err != nil {
			return nil, err
		}
		if division == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	school := &entity.School{
		ID:         uuid.New().String(),
		Name:       in.Name,
		DivisionID: in.DivisionID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(school); err != nil {
		return nil, err
	}
	return toSchoolResponse(school), nil
}

// GetByID returns a school, or nil when absent/deleted.
func (uc *SchoolUseCase) GetByID(id string) (*dto.SchoolResponse, error) {
	school, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, nil
	}
	return toSchoolResponse(school), nil
}

// Update patches a school.
func (uc *SchoolUseCase) Update(id string, in dto.UpdateSchoolRequest) (*dto.SchoolResponse, error) {
	school, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, nil
	}
	if in.Name != nil {
		school.Name = *in.Name
	}
	if in.DivisionID != nil {
		division, err := uc.divisionRepo.GetByID(*in.DivisionID)
		if err != nil {
			return nil, err
		}
		if division == nil {
			return nil, domain.ErrNotFound
		}
		school.DivisionID = in.DivisionID
	}
	school.UpdatedAt = time.Now()
	if err := uc.repo.Update(school); err != nil {
		return nil, err
	}
	return toSchoolResponse(school), nil
}

// List lists schools with pagination.
func (uc *SchoolUseCase) List(limit, offset int) (*dto.SchoolListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SchoolResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSchoolResponse(s))
	}
	return &dto.SchoolListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete soft-deletes a school.
func (uc *SchoolUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSchoolResponse(s *entity.School) *dto.SchoolResponse {
	if s == nil {
		return nil
	}
	return &dto.SchoolResponse{
		ID:         s.ID,
		Name:       s.Name,
		DivisionID: s.DivisionID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
