package entity

import "time"

// Transfer types. Closed set; requests with any other value are rejected.
const (
	TransferTypeInventory = "inventory-transfer-report"
	TransferTypeProperty  = "property-transfer-report"
)

// Transfer statuses. Forward-only: pending -> approved -> completed.
const (
	TransferStatusPending   = "pending"
	TransferStatusApproved  = "approved"
	TransferStatusCompleted = "completed"
)

// Transfer moves trackable stock units from an originating office to a
// destination school or division. EntityName and FundCluster are snapshots
// taken at creation time and never re-derived; TransferNo is assigned exactly
// once, at creation.
type Transfer struct {
	ID                    string
	Type                  string // inventory-transfer-report | property-transfer-report
	EntityName            string
	FundCluster           string
	From                  string // free-text origin office
	To                    string // computed destination label
	DivisionID            string
	SchoolID              *string
	TransferNo            string // YYYY-MM-DD-NN, unique per type
	TransferReason        string
	TransferType          string // free-form classification (donation, relocation, ...)
	Items                 []TransferItem
	ApprovedBy            *string
	ApprovedAt            *time.Time
	IssuedBy              *string
	ReceivedByName        string
	ReceivedByDesignation string
	CompletedAt           *time.Time
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TransferItem is one ordered stock reference on a transfer. The set of stock
// ids is fixed at creation; the issuance fields (Qty, Balance, ItemNo, ...)
// stay empty until completion fills them from the batch.
type TransferItem struct {
	StockID          string
	Position         int // order is significant: item numbering depends on it
	Qty              int
	Balance          *int
	ItemNo           string
	InitialCondition string
	Condition        string
	Reference        string
	SerialNo         string
}

// TransferCounter is the monotonic per-type counter behind transfer numbers.
// Provisioned out-of-band; never auto-created.
type TransferCounter struct {
	Type  string
	Count int
}
