package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a catalog entry with aggregate quantity bookkeeping.
// Quantity only decreases through completed good-condition transfers and
// never exceeds InitialQty.
type Asset struct {
	ID         string
	Name       string
	Quantity   int // current available balance
	InitialQty int // quantity at onboarding; basis for historical outflow count
	UnitCost   decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
