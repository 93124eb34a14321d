package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	productRepo "github.com/fekuna/agritrace-service/internal/product/repository"
	"github.com/fekuna/agritrace-service/internal/transfer/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const updateProductQuery = `
        UPDATE products
        SET quantity = $1, status = $2, price = $3, updated_at = $4, version = version + 1
        WHERE id = $5 AND version = $6
    `

const insertTransferQuery = `
        INSERT INTO transfers (
            id, product_id, origin_id, destination_product_id, from_stakeholder_id,
            to_stakeholder_id, from_role, to_role, quantity, price, location,
            status_after, tx_type, "timestamp", sync_status, sync_attempts,
            confirmation_id, last_sync_error
        )
        VALUES (
            :id, :product_id, :origin_id, :destination_product_id, :from_stakeholder_id,
            :to_stakeholder_id, :from_role, :to_role, :quantity, :price, :location,
            :status_after, :tx_type, :timestamp, :sync_status, :sync_attempts,
            :confirmation_id, :last_sync_error
        )
    `

func (r *PGRepository) Execute(ctx context.Context, plan *dto.TransferPlan) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Source record
	if err := updateVersioned(ctx, tx, plan.Source, plan.SourceVersion); err != nil {
		return err
	}

	// 2. Destination record
	if plan.Destination != nil {
		if plan.DestinationIsNew {
			if _, err := tx.NamedExecContext(ctx, productRepo.InsertProductQuery, plan.Destination); err != nil {
				return fmt.Errorf("failed to insert destination product: %w", err)
			}
		} else if err := updateVersioned(ctx, tx, plan.Destination, plan.DestinationVersion); err != nil {
			return err
		}
	}

	// 3. Ledger entry
	if _, err := tx.NamedExecContext(ctx, insertTransferQuery, plan.Record); err != nil {
		return fmt.Errorf("failed to insert transfer: %w", err)
	}

	return tx.Commit()
}

func updateVersioned(ctx context.Context, tx *sqlx.Tx, p *model.Product, expected int64) error {
	res, err := tx.ExecContext(ctx, updateProductQuery, p.Quantity, p.Status, p.Price, p.UpdatedAt, p.ID, expected)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.New(apperr.KindConflict, "product %s was modified concurrently", p.ID)
	}
	return nil
}

func (r *PGRepository) FindDestination(ctx context.Context, originID, ownerID string, status lifecycle.Status) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `
        SELECT * FROM products
        WHERE origin_id = $1 AND owner_id = $2 AND status = $3
        ORDER BY created_at ASC, id ASC
        LIMIT 1
    `, originID, ownerID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Transfer, error) {
	var t model.Transfer
	err := r.DB.GetContext(ctx, &t, `SELECT * FROM transfers WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.TransferFilters) ([]model.Transfer, int, error) {
	var items []model.Transfer
	var count int

	conditions := []string{}
	args := []interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "(product_id = ? OR destination_product_id = ?)")
		args = append(args, f.ProductID, f.ProductID)
	}
	if f.OriginID != "" {
		conditions = append(conditions, "origin_id = ?")
		args = append(args, f.OriginID)
	}
	if f.StakeholderID != "" {
		conditions = append(conditions, "(from_stakeholder_id = ? OR to_stakeholder_id = ?)")
		args = append(args, f.StakeholderID, f.StakeholderID)
	}
	if len(f.SyncStatuses) > 0 {
		statuses := make([]string, len(f.SyncStatuses))
		for i, s := range f.SyncStatuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, "sync_status IN (?)")
		args = append(args, statuses)
	}
	if f.MaxAttempts > 0 {
		conditions = append(conditions, "sync_attempts < ?")
		args = append(args, f.MaxAttempts)
	}
	if !f.Before.IsZero() {
		conditions = append(conditions, `"timestamp" < ?`)
		args = append(args, f.Before)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.In("SELECT count(*) FROM transfers"+whereClause, args...)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM transfers" + whereClause + ` ORDER BY "timestamp" ASC, id ASC`
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	query, listArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), listArgs...); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *PGRepository) UpdateSyncState(ctx context.Context, u *dto.SyncUpdate) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
        UPDATE transfers
        SET sync_status = $1, sync_attempts = $2, confirmation_id = $3, last_sync_error = $4
        WHERE id = $5 AND sync_status <> 'synced'
    `, u.Status, u.Attempts, u.ConfirmationID, u.LastError, u.TransferID)
	if err != nil {
		return fmt.Errorf("failed to update sync state: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update sync state: %w", err)
	}
	if affected == 0 {
		return apperr.New(apperr.KindConflict, "transfer %s is missing or already synced", u.TransferID)
	}

	if u.ConfirmationID != nil && u.DestinationProductID != nil {
		_, err = tx.ExecContext(ctx, `
            UPDATE products SET blockchain_id = $1
            WHERE id = $2 AND blockchain_id IS NULL
        `, *u.ConfirmationID, *u.DestinationProductID)
		if err != nil {
			return fmt.Errorf("failed to set blockchain id: %w", err)
		}
	}

	return tx.Commit()
}
