package transfer

import (
	"context"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/transfer/dto"
)

type Repository interface {
	// Execute applies every write of plan in one transaction. It fails with a conflict
	// error when a touched product moved past the version the plan was built from.
	Execute(ctx context.Context, plan *dto.TransferPlan) error

	// FindDestination returns the recipient's record of the same batch in status, or nil.
	FindDestination(ctx context.Context, originID, ownerID string, status lifecycle.Status) (*model.Product, error)

	FindByID(ctx context.Context, id string) (*model.Transfer, error)
	FindAll(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error)

	// UpdateSyncState records the outcome of an external ledger write. A record that is
	// already synced is never overwritten; the update then fails with a conflict error.
	UpdateSyncState(ctx context.Context, update *dto.SyncUpdate) error
}
