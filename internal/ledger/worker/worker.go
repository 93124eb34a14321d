package worker

import (
	"context"
	"time"

	"github.com/fekuna/agritrace-service/pkg/logger"
	"go.uber.org/zap"
)

// Syncer retries unconfirmed ledger writes. The transfer usecase implements it.
type Syncer interface {
	SyncPending(ctx context.Context, limit int) (int, error)
}

// SyncWorker periodically pushes pending and failed transfer records to the external ledger.
type SyncWorker struct {
	syncer    Syncer
	interval  time.Duration
	batchSize int
	logger    logger.ZapLogger
}

func NewSyncWorker(syncer Syncer, interval time.Duration, batchSize int, logger logger.ZapLogger) *SyncWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &SyncWorker{
		syncer:    syncer,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (w *SyncWorker) Start(ctx context.Context) {
	w.logger.Info("Starting ledger sync worker", zap.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping ledger sync worker")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *SyncWorker) runOnce(ctx context.Context) {
	synced, err := w.syncer.SyncPending(ctx, w.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("Ledger sync pass failed", zap.Error(err))
		return
	}
	if synced > 0 {
		w.logger.Info("Ledger records synced", zap.Int("count", synced))
	}
}
