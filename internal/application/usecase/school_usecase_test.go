package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oams-ph/transfer-api/internal/application/dto"
	"github.com/oams-ph/transfer-api/internal/application/usecase"
	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
)

// In-memory fakes for the school CRUD tests.

type schoolStore struct {
	schools   map[string]*entity.School
	divisions map[string]*entity.Division
}

type stubSchoolRepo struct{ s *schoolStore }

func (r *stubSchoolRepo) Create(school *entity.School) error {
	for _, existing := range r.s.schools {
		if existing.Name == school.Name && !existing.Deleted {
			return domain.ErrDuplicate
		}
	}
	c := *school
	r.s.schools[school.ID] = &c
	return nil
}

func (r *stubSchoolRepo) GetByID(id string) (*entity.School, error) {
	school, ok := r.s.schools[id]
	if !ok || school.Deleted {
		return nil, nil
	}
	c := *school
	return &c, nil
}

func (r *stubSchoolRepo) GetByName(name string) (*entity.School, error) {
	for _, school := range r.s.schools {
		if school.Name == name && !school.Deleted {
			c := *school
			return &c, nil
		}
	}
	return nil, nil
}

func (r *stubSchoolRepo) Update(school *entity.School) error {
	if _, ok := r.s.schools[school.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *school
	r.s.schools[school.ID] = &c
	return nil
}

func (r *stubSchoolRepo) List(limit, offset int) ([]*entity.School, error) {
	out := make([]*entity.School, 0, len(r.s.schools))
	for _, school := range r.s.schools {
		if !school.Deleted {
			c := *school
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *stubSchoolRepo) Delete(id string) error {
	if school, ok := r.s.schools[id]; ok {
		school.Deleted = true
	}
	return nil
}

type stubDivisionRepo struct{ s *schoolStore }

func (r *stubDivisionRepo) Create(d *entity.Division) error { return nil }

func (r *stubDivisionRepo) GetByID(id string) (*entity.Division, error) {
	d, ok := r.s.divisions[id]
	if !ok || d.Deleted {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (r *stubDivisionRepo) Update(d *entity.Division) error { return nil }

func (r *stubDivisionRepo) List(limit, offset int) ([]*entity.Division, error) { return nil, nil }

func (r *stubDivisionRepo) Delete(id string) error { return nil }

func newSchoolUC() (*usecase.SchoolUseCase, *schoolStore) {
	store := &schoolStore{
		schools:   map[string]*entity.School{},
		divisions: map[string]*entity.Division{"div-1": {ID: "div-1", Name: "Laguna"}},
	}
	return usecase.NewSchoolUseCase(&stubSchoolRepo{store}, &stubDivisionRepo{store}), store
}

func TestSchoolCreate_WithDivisionBinding(t *testing.T) {
	uc, _ := newSchoolUC()
	divID := "div-1"

	school, err := uc.Create(dto.CreateSchoolRequest{Name: "San Isidro ES", DivisionID: &divID})
	require.NoError(t, err)
	require.NotNil(t, school)
	assert.NotEmpty(t, school.ID)
	assert.Equal(t, "San Isidro ES", school.Name)
	require.NotNil(t, school.DivisionID)
	assert.Equal(t, "div-1", *school.DivisionID)
}

func TestSchoolCreate_EmptyName(t *testing.T) {
	uc, _ := newSchoolUC()
	_, err := uc.Create(dto.CreateSchoolRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSchoolCreate_UnknownDivision(t *testing.T) {
	uc, _ := newSchoolUC()
	divID := "div-ghost"
	_, err := uc.Create(dto.CreateSchoolRequest{Name: "San Isidro ES", DivisionID: &divID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSchoolCreate_DuplicateName(t *testing.T) {
	uc, _ := newSchoolUC()
	_, err := uc.Create(dto.CreateSchoolRequest{Name: "San Isidro ES"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateSchoolRequest{Name: "San Isidro ES"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSchoolUpdate_PatchesName(t *testing.T) {
	uc, _ := newSchoolUC()
	created, err := uc.Create(dto.CreateSchoolRequest{Name: "San Isidro ES"})
	require.NoError(t, err)

	name := "San Isidro Elementary School"
	updated, err := uc.Update(created.ID, dto.UpdateSchoolRequest{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, name, updated.Name)
}

// Update passes nil through for an unknown id; the handler turns that into 404.
func TestSchoolUpdate_UnknownID(t *testing.T) {
	uc, _ := newSchoolUC()
	updated, err := uc.Update("school-ghost", dto.UpdateSchoolRequest{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

// Deleted schools are masked, not removed: GetByID returns nil but the row stays.
func TestSchoolDelete_MasksRow(t *testing.T) {
	uc, store := newSchoolUC()
	created, err := uc.Create(dto.CreateSchoolRequest{Name: "San Isidro ES"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, store.schools, created.ID)
	assert.True(t, store.schools[created.ID].Deleted)
}

// A deleted school's name is free for reuse.
func TestSchoolCreate_ReusesDeletedName(t *testing.T) {
	uc, _ := newSchoolUC()
	created, err := uc.Create(dto.CreateSchoolRequest{Name: "San Isidro ES"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(created.ID))

	again, err := uc.Create(dto.CreateSchoolRequest{Name: "San Isidro ES"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)
}

func TestSchoolList_ReturnsPageMetadata(t *testing.T) {
	uc, _ := newSchoolUC()
	_, err := uc.Create(dto.CreateSchoolRequest{Name: "School A"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateSchoolRequest{Name: "School B"})
	require.NoError(t, err)

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 20, list.Page.Limit)
}
