package transfer

import (
	"strconv"

	"github.com/oams-ph/transfer-api/internal/domain/entity"
)

// IssueItem is one stock unit staged for issuance, with its asset's stored
// balance snapshot. Items must keep the transfer's stored order.
type IssueItem struct {
	StockID         string
	AssetID         string
	Condition       string // condition at staging time
	ItemNo          string // previously assigned number; kept for non-good conditions
	SerialNo        string
	Reference       string
	AssetBalance    int // asset's current stored balance, seeds the running map
	AssetInitialQty int
}

// IssueEntry is the computed issuance row for one stock unit.
type IssueEntry struct {
	StockID          string
	AssetID          string
	Qty              int // fixed quantity per trackable unit
	Balance          int // asset balance charged against this item
	ItemNo           string
	InitialCondition string
	Condition        string // always "transferred"
	SerialNo         string
	Reference        string
}

// BuildIssuanceBatch assigns item numbers and running balances for every staged
// item in one pass. A running balance per asset is seeded from the stored
// balance on first encounter within the batch, so several units of the same
// asset see the net effect of the units processed before them:
//
//   - good-condition: itemNo = (initialQty - runningBalance) + 1, then the
//     running balance is decremented and charged against the item;
//   - any other condition: the unit keeps its original itemNo and the running
//     balance is charged unchanged (it was deducted at first issuance).
func BuildIssuanceBatch(items []IssueItem) []IssueEntry {
	running := make(map[string]int, len(items))
	entries := make([]IssueEntry, 0, len(items))
	for _, it := range items {
		balance, seen := running[it.AssetID]
		if !seen {
			balance = it.AssetBalance
		}

		entry := IssueEntry{
			StockID:          it.StockID,
			AssetID:          it.AssetID,
			Qty:              1,
			InitialCondition: it.Condition,
			Condition:        entity.StockConditionTransferred,
			SerialNo:         it.SerialNo,
			Reference:        it.Reference,
		}

		if it.Condition == entity.StockConditionGood {
			totalOuts := it.AssetInitialQty - balance
			if totalOuts < 0 {
				totalOuts = 0
			}
			entry.ItemNo = strconv.Itoa(totalOuts + 1)
			balance--
			entry.Balance = balance
		} else {
			entry.ItemNo = it.ItemNo
			entry.Balance = balance
		}

		running[it.AssetID] = balance
		entries = append(entries, entry)
	}
	return entries
}

// GoodConditionCounts returns, per asset, how many good-condition units the
// batch charges — the amounts to deduct from stored asset balances.
func GoodConditionCounts(entries []IssueEntry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		if e.InitialCondition == entity.StockConditionGood {
			counts[e.AssetID]++
		}
	}
	return counts
}
