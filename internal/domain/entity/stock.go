package entity

import "time"

// Stock conditions. Good-condition units are first-time issuances subject to
// balance deduction; reissued units were already deducted when first issued.
const (
	StockConditionGood        = "good-condition"
	StockConditionReissued    = "reissued"
	StockConditionTransferred = "transferred"
)

// Stock is one physical trackable unit of an Asset, carrying a condition tag
// and its position within the asset's outflow history.
type Stock struct {
	ID        string
	AssetID   string
	Condition string
	ItemNo    string // assigned at first issuance; reissued units keep theirs
	SerialNo  string
	Reference string // set only for non-good-condition units
	Office    string // destination office after issuance
	CreatedAt time.Time
	UpdatedAt time.Time
}
