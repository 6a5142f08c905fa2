package dto

import "time"

// CreateTransferRequest body for POST /api/transfers.
// School accepts either a school id or a school name (created if unknown).
type CreateTransferRequest struct {
	Type           string   `json:"type"`
	From           string   `json:"from"`
	DivisionID     string   `json:"division_id"`
	School         string   `json:"school,omitempty"`
	TransferReason string   `json:"transfer_reason"`
	TransferType   string   `json:"transfer_type"`
	ItemStocks     []string `json:"item_stocks"`
}

// UpdateTransferRequest partial patch for PUT /api/transfers/:id.
// ItemStocks may only reorder/enrich stock ids already on the transfer.
type UpdateTransferRequest struct {
	From                  *string  `json:"from,omitempty"`
	TransferReason        *string  `json:"transfer_reason,omitempty"`
	TransferType          *string  `json:"transfer_type,omitempty"`
	ApprovedBy            *string  `json:"approved_by,omitempty"`
	IssuedBy              *string  `json:"issued_by,omitempty"`
	ReceivedByName        *string  `json:"received_by_name,omitempty"`
	ReceivedByDesignation *string  `json:"received_by_designation,omitempty"`
	ItemStocks            []string `json:"item_stocks,omitempty"`
}

// ApproveTransferRequest body for POST /api/transfers/:id/approve.
type ApproveTransferRequest struct {
	ApprovedBy string `json:"approved_by"`
}

// CompleteTransferRequest body for POST /api/transfers/:id/complete.
type CompleteTransferRequest struct {
	IssuedBy              string `json:"issued_by"`
	ReceivedByName        string `json:"received_by_name"`
	ReceivedByDesignation string `json:"received_by_designation"`
}

// TransferItemResponse one stock reference with its issuance data (after completion).
type TransferItemResponse struct {
	StockID          string `json:"stock_id"`
	Qty              int    `json:"qty,omitempty"`
	Balance          *int   `json:"balance,omitempty"`
	ItemNo           string `json:"item_no,omitempty"`
	InitialCondition string `json:"initial_condition,omitempty"`
	Condition        string `json:"condition,omitempty"`
	Reference        string `json:"reference,omitempty"`
	SerialNo         string `json:"serial_no,omitempty"`
}

// TransferResponse full transfer projection.
type TransferResponse struct {
	ID                    string                 `json:"id"`
	Type                  string                 `json:"type"`
	EntityName            string                 `json:"entity_name"`
	FundCluster           string                 `json:"fund_cluster"`
	From                  string                 `json:"from"`
	To                    string                 `json:"to"`
	DivisionID            string                 `json:"division_id"`
	SchoolID              *string                `json:"school_id,omitempty"`
	TransferNo            string                 `json:"transfer_no"`
	TransferReason        string                 `json:"transfer_reason"`
	TransferType          string                 `json:"transfer_type"`
	ItemStocks            []TransferItemResponse `json:"item_stocks"`
	ApprovedBy            *string                `json:"approved_by,omitempty"`
	ApprovedAt            *time.Time             `json:"approved_at,omitempty"`
	IssuedBy              *string                `json:"issued_by,omitempty"`
	ReceivedByName        string                 `json:"received_by_name,omitempty"`
	ReceivedByDesignation string                 `json:"received_by_designation,omitempty"`
	CompletedAt           *time.Time             `json:"completed_at,omitempty"`
	Status                string                 `json:"status"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

// TransferListResponse paginated transfer list.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
