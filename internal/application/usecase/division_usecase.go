package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/oams-ph/transfer-api/internal/application/dto"
	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

// DivisionUseCase CRUD for school divisions (masked delete, unique name).
type DivisionUseCase struct {
	repo repository.DivisionRepository
}

// NewDivisionUseCase builds the use case.
func NewDivisionUseCase(repo repository.DivisionRepository) *DivisionUseCase {
	return &DivisionUseCase{repo: repo}
}

// Create creates a division.
func (uc *DivisionUseCase) Create(in dto.CreateDivisionRequest) (*dto.DivisionResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	division := &entity.Division{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(division); err != nil {
		return nil, err
	}
	return toDivisionResponse(division), nil
}

// GetByID returns a division, or nil when absent/deleted.
func (uc *DivisionUseCase) GetByID(id string) (*dto.DivisionResponse, error) {
	division, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, nil
	}
	return toDivisionResponse(division), nil
}

// Update patches a division.
func (uc *DivisionUseCase) Update(id string, in dto.UpdateDivisionRequest) (*dto.DivisionResponse, error) {
	division, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, nil
	}
	if in.Name != nil {
		division.Name = *in.Name
	}
	division.UpdatedAt = time.Now()
	if err := uc.repo.Update(division); err != nil {
		return nil, err
	}
	return toDivisionResponse(division), nil
}

// List lists divisions with pagination.
func (uc *DivisionUseCase) List(limit, offset int) (*dto.DivisionListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DivisionResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDivisionResponse(d))
	}
	return &dto.DivisionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete soft-deletes a division.
func (uc *DivisionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDivisionResponse(d *entity.Division) *dto.DivisionResponse {
	if d == nil {
		return nil
	}
	return &dto.DivisionResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
