package model

import (
	"time"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/shopspring/decimal"
)

type TxType string

const (
	TxTypeTransfer TxType = "transfer"
	TxTypeSale     TxType = "sale"
	TxTypeMarkSold TxType = "mark_sold"
)

type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
	SyncSkipped SyncStatus = "skipped"
)

// Transfer is an append-only custody ledger entry. Only the sync columns change after insert.
type Transfer struct {
	ID                   string           `db:"id" json:"id"`
	ProductID            string           `db:"product_id" json:"product_id"`
	OriginID             string           `db:"origin_id" json:"origin_id"`
	DestinationProductID *string          `db:"destination_product_id" json:"destination_product_id"`
	FromStakeholderID    string           `db:"from_stakeholder_id" json:"from_stakeholder_id"`
	ToStakeholderID      string           `db:"to_stakeholder_id" json:"to_stakeholder_id"`
	FromRole             lifecycle.Role   `db:"from_role" json:"from_role"`
	ToRole               lifecycle.Role   `db:"to_role" json:"to_role"`
	Quantity             decimal.Decimal  `db:"quantity" json:"quantity"`
	Price                decimal.Decimal  `db:"price" json:"price"`
	Location             string           `db:"location" json:"location"`
	StatusAfter          lifecycle.Status `db:"status_after" json:"status_after"`
	TxType               TxType           `db:"tx_type" json:"tx_type"`
	Timestamp            time.Time        `db:"timestamp" json:"timestamp"`
	SyncStatus           SyncStatus       `db:"sync_status" json:"sync_status"`
	SyncAttempts         int              `db:"sync_attempts" json:"sync_attempts"`
	ConfirmationID       *string          `db:"confirmation_id" json:"confirmation_id"`
	LastSyncError        *string          `db:"last_sync_error" json:"last_sync_error"`
}
