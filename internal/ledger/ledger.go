// Package ledger publishes committed custody steps to the external immutable ledger.
// The ledger is a secondary record: failures are reported, never rolled back.
package ledger

import (
	"context"
	"time"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
)

type Ledger interface {
	// RecordTransfer returns the ledger's confirmation id for the entry.
	RecordTransfer(ctx context.Context, entry Entry) (string, error)
}

// Entry is the ledger view of a transfer record.
type Entry struct {
	TransferID  string           `json:"transfer_id"`
	ProductID   string           `json:"product_id"`
	OriginID    string           `json:"origin_id"`
	From        string           `json:"from"`
	To          string           `json:"to"`
	FromRole    lifecycle.Role   `json:"from_role"`
	ToRole      lifecycle.Role   `json:"to_role"`
	Quantity    string           `json:"quantity"`
	Price       string           `json:"price"`
	Location    string           `json:"location"`
	StatusAfter lifecycle.Status `json:"status_after"`
	TxType      model.TxType     `json:"tx_type"`
	Timestamp   time.Time        `json:"timestamp"`
}

func EntryFromTransfer(t *model.Transfer) Entry {
	return Entry{
		TransferID:  t.ID,
		ProductID:   t.ProductID,
		OriginID:    t.OriginID,
		From:        t.FromStakeholderID,
		To:          t.ToStakeholderID,
		FromRole:    t.FromRole,
		ToRole:      t.ToRole,
		Quantity:    t.Quantity.String(),
		Price:       t.Price.String(),
		Location:    t.Location,
		StatusAfter: t.StatusAfter,
		TxType:      t.TxType,
		Timestamp:   t.Timestamp,
	}
}
