package dto

import (
	"time"

	"github.com/fekuna/agritrace-service/internal/model"
)

type TransferFilters struct {
	ProductID     string
	OriginID      string
	StakeholderID string // either side of the transfer
	SyncStatuses  []model.SyncStatus
	MaxAttempts   int       // only records with fewer sync attempts, 0 for no limit
	Before        time.Time // only records older than this, zero for no limit
	Page          int
	PageSize      int
}

// TransferPlan is the full set of writes of one custody step.
type TransferPlan struct {
	Source        *model.Product // state after the step
	SourceVersion int64          // version the plan was built from

	Destination        *model.Product // nil when only the source changes
	DestinationIsNew   bool
	DestinationVersion int64

	Record *model.Transfer
}

type SyncUpdate struct {
	TransferID           string
	Status               model.SyncStatus
	Attempts             int
	ConfirmationID       *string
	LastError            *string
	DestinationProductID *string // receives the confirmation as blockchain id
}
