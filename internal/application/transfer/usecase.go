package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oams-ph/transfer-api/internal/application/dto"
	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
	"github.com/oams-ph/transfer-api/internal/domain/transfer"
)

// WorkflowUseCase drives a transfer through its lifecycle
// (create -> approve -> complete) with transactional Commit/Rollback.
type WorkflowUseCase struct {
	txRunner     TxRunner
	transferRepo repository.TransferRepository
	divisionRepo repository.DivisionRepository
	userRepo     repository.UserRepository
	org          OrgSnapshot
}

// NewWorkflowUseCase builds the use case.
func NewWorkflowUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	divisionRepo repository.DivisionRepository,
	userRepo repository.UserRepository,
	org OrgSnapshot,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		txRunner:     txRunner,
		transferRepo: transferRepo,
		divisionRepo: divisionRepo,
		userRepo:     userRepo,
		org:          org,
	}
}

// CreateInputDTO input for creating a transfer.
// School is optional and accepts a school id or a school name.
type CreateInputDTO struct {
	Type           string
	From           string
	DivisionID     string
	School         string
	TransferReason string
	TransferType   string
	StockIDs       []string
}

// Create opens one transaction that resolves the destination, atomically bumps
// the per-type counter to assign the transfer number, validates every staged
// stock against its asset balance and persists the transfer as pending.
// Returns the new transfer id; callers re-fetch for the full record.
func (uc *WorkflowUseCase) Create(ctx context.Context, in CreateInputDTO) (string, error) {
	switch in.Type {
	case entity.TransferTypeInventory, entity.TransferTypeProperty:
	default:
		return "", domain.ErrInvalidInput
	}
	if in.From == "" || in.DivisionID == "" || len(in.StockIDs) == 0 {
		return "", domain.ErrInvalidInput
	}
	if uc.org.EntityName == "" || uc.org.FundClusterSEP == "" || uc.org.FundClusterPPE == "" {
		return "", domain.ErrMissingSetting
	}

	division, err := uc.divisionRepo.GetByID(in.DivisionID)
	if err != nil {
		return "", err
	}
	if division == nil {
		return "", domain.ErrNotFound
	}

	fundCluster := uc.org.FundClusterSEP
	if in.Type == entity.TransferTypeProperty {
		fundCluster = uc.org.FundClusterPPE
	}

	id := uuid.New().String()
	now := time.Now()

	err = uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		stockRepo repository.StockRepository,
		assetRepo repository.AssetRepository,
		counterRepo repository.CounterRepository,
		schoolRepo repository.SchoolRepository,
	) error {
		to := division.Name
		var schoolID *string
		if in.School != "" {
			school, err := resolveOrCreateSchool(schoolRepo, in.School, in.DivisionID, now)
			if err != nil {
				return err
			}
			schoolID = &school.ID
			to = school.Name + " - " + division.Name
		}

		count, err := counterRepo.Increment(in.Type)
		if err != nil {
			return err
		}
		transferNo := transfer.FormatTransferNo(now, count)

		// Every staged good-condition unit needs at least one on the asset's
		// balance (fixed quantity of 1 per trackable unit). Reissued units were
		// already deducted at first issuance and are not balance-checked.
		items := make([]entity.TransferItem, len(in.StockIDs))
		for i, stockID := range in.StockIDs {
			stock, err := stockRepo.GetByID(stockID)
			if err != nil {
				return err
			}
			if stock == nil {
				return fmt.Errorf("%w: stock %s", domain.ErrNotFound, stockID)
			}
			asset, err := assetRepo.GetByID(stock.AssetID)
			if err != nil {
				return err
			}
			if asset == nil {
				return fmt.Errorf("%w: asset %s", domain.ErrNotFound, stock.AssetID)
			}
			if stock.Condition == entity.StockConditionGood && asset.Quantity < 1 {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientBalance, asset.Name)
			}
			items[i] = entity.TransferItem{StockID: stockID, Position: i}
		}

		t := &entity.Transfer{
			ID:             id,
			Type:           in.Type,
			EntityName:     uc.org.EntityName,
			FundCluster:    fundCluster,
			From:           in.From,
			To:             to,
			DivisionID:     in.DivisionID,
			SchoolID:       schoolID,
			TransferNo:     transferNo,
			TransferReason: in.TransferReason,
			TransferType:   in.TransferType,
			Items:          items,
			Status:         entity.TransferStatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return transferRepo.Create(t)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// resolveOrCreateSchool resolves the school by id when the value parses as a
// UUID, then by exact name, and finally creates it inside the caller's
// transaction (so a later failure rolls the new school back too).
func resolveOrCreateSchool(schoolRepo repository.SchoolRepository, nameOrID, divisionID string, now time.Time) (*entity.School, error) {
	if _, err := uuid.Parse(nameOrID); err == nil {
		school, err := schoolRepo.GetByID(nameOrID)
		if err != nil {
			return nil, err
		}
		if school != nil {
			return school, nil
		}
	}
	school, err := schoolRepo.GetByName(nameOrID)
	if err != nil {
		return nil, err
	}
	if school != nil {
		return school, nil
	}
	school = &entity.School{
		ID:         uuid.New().String(),
		Name:       nameOrID,
		DivisionID: &divisionID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := schoolRepo.Create(school); err != nil {
		return nil, err
	}
	return school, nil
}

// GetByID returns the full transfer projection, or nil when absent.
func (uc *WorkflowUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	t, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTransferResponse(t), nil
}

// List returns transfers with pagination.
func (uc *WorkflowUseCase) List(limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	items := make([]dto.TransferItemResponse, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, dto.TransferItemResponse{
			StockID:          item.StockID,
			Qty:              item.Qty,
			Balance:          item.Balance,
			ItemNo:           item.ItemNo,
			InitialCondition: item.InitialCondition,
			Condition:        item.Condition,
			Reference:        item.Reference,
			SerialNo:         item.SerialNo,
		})
	}
	return &dto.TransferResponse{
		ID:                    t.ID,
		Type:                  t.Type,
		EntityName:            t.EntityName,
		FundCluster:           t.FundCluster,
		From:                  t.From,
		To:                    t.To,
		DivisionID:            t.DivisionID,
		SchoolID:              t.SchoolID,
		TransferNo:            t.TransferNo,
		TransferReason:        t.TransferReason,
		TransferType:          t.TransferType,
		ItemStocks:            items,
		ApprovedBy:            t.ApprovedBy,
		ApprovedAt:            t.ApprovedAt,
		IssuedBy:              t.IssuedBy,
		ReceivedByName:        t.ReceivedByName,
		ReceivedByDesignation: t.ReceivedByDesignation,
		CompletedAt:           t.CompletedAt,
		Status:                t.Status,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}
