package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

// UpdateInputDTO partial field patch applied before completion.
// StockIDs may only reference stock ids already on the transfer: the patch
// path reorders/enriches existing references, it never adds new ones.
type UpdateInputDTO struct {
	From                  *string
	TransferReason        *string
	TransferType          *string
	ApprovedBy            *string
	IssuedBy              *string
	ReceivedByName        *string
	ReceivedByDesignation *string
	StockIDs              []string
}

// Update patches the transfer header and optionally replaces the item rows,
// in one transaction. Setting ApprovedBy stamps ApprovedAt; setting IssuedBy
// together with both received-by fields stamps CompletedAt. Unlike Complete,
// this path never runs batch issuance.
func (uc *WorkflowUseCase) Update(ctx context.Context, transferID string, in UpdateInputDTO) error {
	if in.ApprovedBy != nil {
		if err := uc.resolveUser(*in.ApprovedBy); err != nil {
			return err
		}
	}
	if in.IssuedBy != nil {
		if err := uc.resolveUser(*in.IssuedBy); err != nil {
			return err
		}
	}

	return uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		_ repository.StockRepository,
		_ repository.AssetRepository,
		_ repository.CounterRepository,
		_ repository.SchoolRepository,
	) error {
		t, err := transferRepo.GetByID(transferID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}

		if in.StockIDs != nil {
			items, err := reorderItems(t.Items, in.StockIDs)
			if err != nil {
				return err
			}
			if err := transferRepo.ReplaceItems(t.ID, items); err != nil {
				return err
			}
		}

		applyHeaderPatch(t, in, time.Now())
		return transferRepo.Update(t)
	})
}

// Approve stamps the approver and approval time and advances the status.
// There is no guard on the current status: repeat calls re-stamp ApprovedAt.
func (uc *WorkflowUseCase) Approve(ctx context.Context, transferID, approvedBy string) error {
	if approvedBy == "" {
		return domain.ErrInvalidInput
	}
	return uc.Update(ctx, transferID, UpdateInputDTO{ApprovedBy: &approvedBy})
}

func (uc *WorkflowUseCase) resolveUser(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

// reorderItems maps the supplied stock ids onto the existing item rows,
// keeping any issuance data already attached. An id not on the transfer
// fails the whole patch.
func reorderItems(existing []entity.TransferItem, stockIDs []string) ([]entity.TransferItem, error) {
	byStock := make(map[string]entity.TransferItem, len(existing))
	for _, item := range existing {
		byStock[item.StockID] = item
	}
	items := make([]entity.TransferItem, len(stockIDs))
	for i, stockID := range stockIDs {
		item, ok := byStock[stockID]
		if !ok {
			return nil, fmt.Errorf("%w: stock %s is not part of the transfer", domain.ErrNotFound, stockID)
		}
		item.Position = i
		items[i] = item
	}
	return items, nil
}

// applyHeaderPatch mutates the header fields. Timestamps are stamped on every
// call that sets the corresponding actor; the current status is not checked
// before advancing it.
func applyHeaderPatch(t *entity.Transfer, in UpdateInputDTO, now time.Time) {
	if in.From != nil {
		t.From = *in.From
	}
	if in.TransferReason != nil {
		t.TransferReason = *in.TransferReason
	}
	if in.TransferType != nil {
		t.TransferType = *in.TransferType
	}
	if in.ApprovedBy != nil {
		t.ApprovedBy = in.ApprovedBy
		t.ApprovedAt = &now
		t.Status = entity.TransferStatusApproved
	}
	if in.IssuedBy != nil {
		t.IssuedBy = in.IssuedBy
		if in.ReceivedByName != nil {
			t.ReceivedByName = *in.ReceivedByName
		}
		if in.ReceivedByDesignation != nil {
			t.ReceivedByDesignation = *in.ReceivedByDesignation
		}
		if in.ReceivedByName != nil && in.ReceivedByDesignation != nil {
			t.CompletedAt = &now
			t.Status = entity.TransferStatusCompleted
		}
	}
	t.UpdatedAt = now
}
