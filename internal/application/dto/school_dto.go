package dto

import "time"

// CreateSchoolRequest body for POST /api/schools.
type CreateSchoolRequest struct {
	Name       string  `json:"name"`
	DivisionID *string `json:"division_id,omitempty"`
}

// UpdateSchoolRequest partial patch for PUT /api/schools/:id.
type UpdateSchoolRequest struct {
	Name       *string `json:"name,omitempty"`
	DivisionID *string `json:"division_id,omitempty"`
}

// SchoolResponse school projection.
type SchoolResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DivisionID *string   `json:"division_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SchoolListResponse paginated school list.
type SchoolListResponse struct {
	Items []SchoolResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
