package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo TransferRepository implementation over PostgreSQL (usable with pool or tx).
// Header rows live in transfers; the ordered stock references in transfer_items.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository builds the transfer adapter. Pass pool or tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create inserts the header and its item rows. transfer_no carries a unique
// index per type, so a duplicate number surfaces as ErrDuplicate.
func (r *TransferRepo) Create(t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, type, entity_name, fund_cluster, from_office, to_office,
			division_id, school_id, transfer_no, transfer_reason, transfer_type,
			received_by_name, received_by_designation, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Type, t.EntityName, t.FundCluster, t.From, t.To,
		t.DivisionID, t.SchoolID, t.TransferNo, t.TransferReason, t.TransferType,
		t.ReceivedByName, t.ReceivedByDesignation, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	return r.insertItems(t.ID, t.Items)
}

// GetByID fetches the header with its items in stored order, or nil if absent.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	query := `
		SELECT id, type, entity_name, fund_cluster, from_office, to_office,
			division_id, school_id, transfer_no, transfer_reason, transfer_type,
			approved_by, approved_at, issued_by, received_by_name, received_by_designation,
			completed_at, status, created_at, updated_at
		FROM transfers WHERE id = $1`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Type, &t.EntityName, &t.FundCluster, &t.From, &t.To,
		&t.DivisionID, &t.SchoolID, &t.TransferNo, &t.TransferReason, &t.TransferType,
		&t.ApprovedBy, &t.ApprovedAt, &t.IssuedBy, &t.ReceivedByName, &t.ReceivedByDesignation,
		&t.CompletedAt, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	items, err := r.getItems(id)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

// Update writes the mutable header fields. Transfers are never deleted and
// transfer_no is never rewritten.
func (r *TransferRepo) Update(t *entity.Transfer) error {
	query := `
		UPDATE transfers SET from_office = $2, transfer_reason = $3, transfer_type = $4,
			approved_by = $5, approved_at = $6, issued_by = $7,
			received_by_name = $8, received_by_designation = $9,
			completed_at = $10, status = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		t.ID, t.From, t.TransferReason, t.TransferType,
		t.ApprovedBy, t.ApprovedAt, t.IssuedBy,
		t.ReceivedByName, t.ReceivedByDesignation,
		t.CompletedAt, t.Status, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceItems swaps the item rows for the transfer.
func (r *TransferRepo) ReplaceItems(transferID string, items []entity.TransferItem) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM transfer_items WHERE transfer_id = $1`, transferID)
	if err != nil {
		return fmt.Errorf("delete transfer items: %w", err)
	}
	return r.insertItems(transferID, items)
}

// List fetches transfer headers with pagination, newest first. Items are
// loaded on GetByID only.
func (r *TransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, type, entity_name, fund_cluster, from_office, to_office,
			division_id, school_id, transfer_no, transfer_reason, transfer_type,
			approved_by, approved_at, issued_by, received_by_name, received_by_designation,
			completed_at, status, created_at, updated_at
		FROM transfers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(
			&t.ID, &t.Type, &t.EntityName, &t.FundCluster, &t.From, &t.To,
			&t.DivisionID, &t.SchoolID, &t.TransferNo, &t.TransferReason, &t.TransferType,
			&t.ApprovedBy, &t.ApprovedAt, &t.IssuedBy, &t.ReceivedByName, &t.ReceivedByDesignation,
			&t.CompletedAt, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TransferRepo) insertItems(transferID string, items []entity.TransferItem) error {
	query := `
		INSERT INTO transfer_items (transfer_id, position, stock_id, qty, balance,
			item_no, initial_condition, condition, reference, serial_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), query,
			transferID, item.Position, item.StockID, item.Qty, item.Balance,
			item.ItemNo, item.InitialCondition, item.Condition, item.Reference, item.SerialNo,
		)
		if err != nil {
			return fmt.Errorf("insert transfer item: %w", err)
		}
	}
	return nil
}

func (r *TransferRepo) getItems(transferID string) ([]entity.TransferItem, error) {
	query := `
		SELECT position, stock_id, qty, balance, item_no, initial_condition, condition, reference, serial_no
		FROM transfer_items WHERE transfer_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("get transfer items: %w", err)
	}
	defer rows.Close()

	var items []entity.TransferItem
	for rows.Next() {
		var item entity.TransferItem
		if err := rows.Scan(
			&item.Position, &item.StockID, &item.Qty, &item.Balance,
			&item.ItemNo, &item.InitialCondition, &item.Condition, &item.Reference, &item.SerialNo,
		); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
