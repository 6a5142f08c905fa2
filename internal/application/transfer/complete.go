package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
	"github.com/oams-ph/transfer-api/internal/domain/transfer"
)

// CompleteInputDTO input for completing a transfer.
type CompleteInputDTO struct {
	TransferID            string
	IssuedBy              string
	ReceivedByName        string
	ReceivedByDesignation string
}

// Complete runs batch issuance and closes the transfer in one transaction:
// every item is re-resolved, item numbers and running balances are computed in
// stored item order, stock units are stamped as transferred to the destination
// office, asset balances are deducted and the header is stamped completed.
// Any unresolved stock or asset aborts the whole transaction; no partial
// balance deduction is ever persisted.
func (uc *WorkflowUseCase) Complete(ctx context.Context, in CompleteInputDTO) error {
	if in.TransferID == "" || in.IssuedBy == "" || in.ReceivedByName == "" || in.ReceivedByDesignation == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.resolveUser(in.IssuedBy); err != nil {
		return err
	}

	return uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		stockRepo repository.StockRepository,
		assetRepo repository.AssetRepository,
		_ repository.CounterRepository,
		_ repository.SchoolRepository,
	) error {
		t, err := transferRepo.GetByID(in.TransferID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}

		staged, err := stageItems(t, stockRepo, assetRepo)
		if err != nil {
			return err
		}
		entries := transfer.BuildIssuanceBatch(staged)

		items := make([]entity.TransferItem, len(entries))
		for i, e := range entries {
			if err := stockRepo.MarkTransferred(e.StockID, e.ItemNo, t.To); err != nil {
				return err
			}
			balance := e.Balance
			items[i] = entity.TransferItem{
				StockID:          e.StockID,
				Position:         i,
				Qty:              e.Qty,
				Balance:          &balance,
				ItemNo:           e.ItemNo,
				InitialCondition: e.InitialCondition,
				Condition:        e.Condition,
				Reference:        e.Reference,
				SerialNo:         e.SerialNo,
			}
		}
		for assetID, amount := range transfer.GoodConditionCounts(entries) {
			if err := assetRepo.DecrementQuantity(assetID, amount); err != nil {
				return err
			}
		}
		if err := transferRepo.ReplaceItems(t.ID, items); err != nil {
			return err
		}

		applyHeaderPatch(t, UpdateInputDTO{
			IssuedBy:              &in.IssuedBy,
			ReceivedByName:        &in.ReceivedByName,
			ReceivedByDesignation: &in.ReceivedByDesignation,
		}, time.Now())
		return transferRepo.Update(t)
	})
}

// stageItems re-resolves every stock unit and its asset, in stored item order,
// into the issuance batch input.
func stageItems(t *entity.Transfer, stockRepo repository.StockRepository, assetRepo repository.AssetRepository) ([]transfer.IssueItem, error) {
	staged := make([]transfer.IssueItem, 0, len(t.Items))
	for _, item := range t.Items {
		stock, err := stockRepo.GetByID(item.StockID)
		if err != nil {
			return nil, err
		}
		if stock == nil {
			return nil, fmt.Errorf("%w: stock %s", domain.ErrNotFound, item.StockID)
		}
		asset, err := assetRepo.GetByID(stock.AssetID)
		if err != nil {
			return nil, err
		}
		if asset == nil {
			return nil, fmt.Errorf("%w: asset %s", domain.ErrNotFound, stock.AssetID)
		}
		staged = append(staged, transfer.IssueItem{
			StockID:         stock.ID,
			AssetID:         stock.AssetID,
			Condition:       stock.Condition,
			ItemNo:          stock.ItemNo,
			SerialNo:        stock.SerialNo,
			Reference:       stock.Reference,
			AssetBalance:    asset.Quantity,
			AssetInitialQty: asset.InitialQty,
		})
	}
	return staged, nil
}
