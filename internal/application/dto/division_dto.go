package dto

import "time"

// CreateDivisionRequest body for POST /api/divisions.
type CreateDivisionRequest struct {
	Name string `json:"name"`
}

// UpdateDivisionRequest partial patch for PUT /api/divisions/:id.
type UpdateDivisionRequest struct {
	Name *string `json:"name,omitempty"`
}

// DivisionResponse division projection.
type DivisionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DivisionListResponse paginated division list.
type DivisionListResponse struct {
	Items []DivisionResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
