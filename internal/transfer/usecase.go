package transfer

import (
	"context"
	"time"

	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/transfer/dto"
)

type UseCase interface {
	Transfer(ctx context.Context, input *dto.TransferInput) (*model.Transfer, error)
	MarkSold(ctx context.Context, input *dto.MarkSoldInput) (*model.Transfer, error)

	GetTransfer(ctx context.Context, id string) (*model.Transfer, error)
	// ProductHistory lists every custody step of the product's batch, oldest first.
	ProductHistory(ctx context.Context, productID string) ([]model.Transfer, error)
	ListTransfers(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error)

	// SyncPending retries external ledger writes that have not been confirmed yet.
	SyncPending(ctx context.Context, limit int) (int, error)
}

// Locker serialises writers of one product. *cache.RedisClient implements it.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

// ViewNotifier is told about committed product writes. The product usecase implements it.
type ViewNotifier interface {
	ProductsChanged(ctx context.Context, products ...*model.Product)
}
