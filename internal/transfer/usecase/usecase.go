package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/auth"
	"github.com/fekuna/agritrace-service/internal/ledger"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/product"
	"github.com/fekuna/agritrace-service/internal/stakeholder"
	"github.com/fekuna/agritrace-service/internal/transfer"
	"github.com/fekuna/agritrace-service/internal/transfer/dto"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/fekuna/agritrace-service/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Options struct {
	LockTTL         time.Duration
	LockRetries     int
	LockRetryDelay  time.Duration
	LedgerTimeout   time.Duration
	MaxSyncAttempts int
	// SyncGrace keeps the retry worker away from records whose first write may still be in flight.
	SyncGrace time.Duration
}

func (o Options) withDefaults() Options {
	if o.LockTTL <= 0 {
		o.LockTTL = 5 * time.Second
	}
	if o.LockRetries <= 0 {
		o.LockRetries = 3
	}
	if o.LockRetryDelay <= 0 {
		o.LockRetryDelay = 100 * time.Millisecond
	}
	if o.LedgerTimeout <= 0 {
		o.LedgerTimeout = 3 * time.Second
	}
	if o.MaxSyncAttempts <= 0 {
		o.MaxSyncAttempts = 10
	}
	if o.SyncGrace < 0 {
		o.SyncGrace = 0
	}
	return o
}

type transferUseCase struct {
	repo         transfer.Repository
	products     product.Repository
	stakeholders stakeholder.Repository
	verifier     auth.CredentialVerifier
	locker       transfer.Locker
	ledger       ledger.Ledger
	notifier     transfer.ViewNotifier
	logger       logger.ZapLogger
	opts         Options
}

// NewTransferUseCase wires the custody workflow. ledger and notifier may be nil; without a
// ledger every record is stored as skipped.
func NewTransferUseCase(
	repo transfer.Repository,
	products product.Repository,
	stakeholders stakeholder.Repository,
	verifier auth.CredentialVerifier,
	locker transfer.Locker,
	l ledger.Ledger,
	notifier transfer.ViewNotifier,
	log logger.ZapLogger,
	opts Options,
) transfer.UseCase {
	return &transferUseCase{
		repo:         repo,
		products:     products,
		stakeholders: stakeholders,
		verifier:     verifier,
		locker:       locker,
		ledger:       l,
		notifier:     notifier,
		logger:       log,
		opts:         opts.withDefaults(),
	}
}

func (uc *transferUseCase) Transfer(ctx context.Context, input *dto.TransferInput) (rec *model.Transfer, err error) {
	txType := model.TxTypeTransfer
	defer func() { observe(txType, err) }()

	release, err := uc.lock(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	defer release()

	// 1. Product exists
	p, err := uc.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "product %s not found", input.ProductID)
	}

	// 2. Actor owns it
	if p.OwnerID != input.ActorID {
		return nil, apperr.New(apperr.KindForbidden, "stakeholder %s does not own product %s", input.ActorID, p.ID)
	}

	// 3. Actor is verified
	actor, err := uc.stakeholders.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.New(apperr.KindForbidden, "stakeholder %s not found", input.ActorID)
	}
	if !actor.IsVerified {
		return nil, apperr.New(apperr.KindNotVerified, "stakeholder %s is not verified", actor.ID)
	}

	// 4. Recipient holds the next role
	recipient, err := uc.stakeholders.FindByID(ctx, input.ToStakeholderID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, apperr.New(apperr.KindInvalidRecipientRole, "recipient %s not found", input.ToStakeholderID)
	}
	statusAfter, ok := lifecycle.TransferStatus(actor.Role, recipient.Role)
	if !ok {
		return nil, apperr.New(apperr.KindInvalidRecipientRole, "%s cannot transfer to %s", actor.Role, recipient.Role)
	}
	if !recipient.IsVerified {
		return nil, apperr.New(apperr.KindNotVerified, "recipient %s is not verified", recipient.ID)
	}

	// 5. Quantity
	if !input.Quantity.IsPositive() || input.Quantity.GreaterThan(p.Quantity) {
		return nil, apperr.New(apperr.KindInvalidQuantity, "quantity %s must be in (0, %s]", input.Quantity, p.Quantity)
	}

	// 6. Price
	price := p.Price
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperr.New(apperr.KindInvalidPrice, "price must not be negative")
		}
		price = *input.Price
	}

	// 7. Credential
	if err := uc.checkCredential(actor, input.CredentialProof); err != nil {
		return nil, err
	}

	if p.Status.Terminal() || !lifecycle.HolderStatus(actor.Role, p.Status) || !lifecycle.CanAdvance(p.Status, statusAfter) {
		return nil, apperr.New(apperr.KindConflict, "product %s in status %s cannot move to %s", p.ID, p.Status, statusAfter)
	}

	if recipient.Role == lifecycle.RoleConsumer {
		txType = model.TxTypeSale
	}

	plan, err := uc.buildTransferPlan(ctx, p, actor, recipient, input, price, statusAfter, txType)
	if err != nil {
		return nil, err
	}

	return uc.commit(ctx, plan)
}

func (uc *transferUseCase) buildTransferPlan(
	ctx context.Context,
	p *model.Product,
	actor, recipient *model.Stakeholder,
	input *dto.TransferInput,
	price decimal.Decimal,
	statusAfter lifecycle.Status,
	txType model.TxType,
) (*dto.TransferPlan, error) {
	now := time.Now().UTC()

	source := *p
	source.Quantity = p.Quantity.Sub(input.Quantity)
	source.UpdatedAt = now

	plan := &dto.TransferPlan{
		Source:        &source,
		SourceVersion: p.Version,
	}

	existing, err := uc.repo.FindDestination(ctx, p.OriginID, recipient.ID, statusAfter)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		dest := *existing
		dest.Quantity = existing.Quantity.Add(input.Quantity)
		dest.Price = price
		dest.UpdatedAt = now
		plan.Destination = &dest
		plan.DestinationVersion = existing.Version
	} else {
		parentID := p.ID
		plan.Destination = &model.Product{
			BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			OriginID:     p.OriginID,
			ParentID:     &parentID,
			Name:         p.Name,
			Variety:      p.Variety,
			FarmLocation: p.FarmLocation,
			Quantity:     input.Quantity,
			QualityGrade: p.QualityGrade,
			IsOrganic:    p.IsOrganic,
			Price:        price,
			Status:       statusAfter,
			OwnerID:      recipient.ID,
			FarmerID:     p.FarmerID,
			Version:      1,
		}
		plan.DestinationIsNew = true
	}

	if !lifecycle.HolderStatus(recipient.Role, plan.Destination.Status) {
		return nil, apperr.New(apperr.KindInvalidRecipientRole, "%s cannot hold a record in status %s", recipient.Role, plan.Destination.Status)
	}

	destID := plan.Destination.ID
	plan.Record = &model.Transfer{
		ID:                   uuid.New().String(),
		ProductID:            p.ID,
		OriginID:             p.OriginID,
		DestinationProductID: &destID,
		FromStakeholderID:    actor.ID,
		ToStakeholderID:      recipient.ID,
		FromRole:             actor.Role,
		ToRole:               recipient.Role,
		Quantity:             input.Quantity,
		Price:                price,
		Location:             strings.TrimSpace(input.Location),
		StatusAfter:          statusAfter,
		TxType:               txType,
		Timestamp:            now,
		SyncStatus:           uc.initialSyncStatus(),
	}
	return plan, nil
}

func (uc *transferUseCase) MarkSold(ctx context.Context, input *dto.MarkSoldInput) (rec *model.Transfer, err error) {
	defer func() { observe(model.TxTypeMarkSold, err) }()

	release, err := uc.lock(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	defer release()

	p, err := uc.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "product %s not found", input.ProductID)
	}
	if p.OwnerID != input.ActorID {
		return nil, apperr.New(apperr.KindForbidden, "stakeholder %s does not own product %s", input.ActorID, p.ID)
	}

	actor, err := uc.stakeholders.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.New(apperr.KindForbidden, "stakeholder %s not found", input.ActorID)
	}
	if !actor.IsVerified {
		return nil, apperr.New(apperr.KindNotVerified, "stakeholder %s is not verified", actor.ID)
	}
	if actor.Role != lifecycle.RoleRetailer {
		return nil, apperr.New(apperr.KindForbidden, "only retailers can mark products sold")
	}
	if !p.Active() {
		return nil, apperr.New(apperr.KindInvalidQuantity, "product %s has no remaining quantity", p.ID)
	}
	if err := uc.checkCredential(actor, input.CredentialProof); err != nil {
		return nil, err
	}
	if p.Status.Terminal() {
		return nil, apperr.New(apperr.KindConflict, "product %s is already sold", p.ID)
	}
	if !lifecycle.HolderStatus(actor.Role, p.Status) || !lifecycle.CanAdvance(p.Status, lifecycle.StatusSold) {
		return nil, apperr.New(apperr.KindConflict, "product %s in status %s cannot be marked sold", p.ID, p.Status)
	}

	now := time.Now().UTC()
	source := *p
	source.Status = lifecycle.StatusSold
	source.UpdatedAt = now

	productID := p.ID
	plan := &dto.TransferPlan{
		Source:        &source,
		SourceVersion: p.Version,
		Record: &model.Transfer{
			ID:                   uuid.New().String(),
			ProductID:            p.ID,
			OriginID:             p.OriginID,
			DestinationProductID: &productID,
			FromStakeholderID:    actor.ID,
			ToStakeholderID:      actor.ID,
			FromRole:             actor.Role,
			ToRole:               actor.Role,
			Quantity:             p.Quantity,
			Price:                p.Price,
			Location:             strings.TrimSpace(input.Location),
			StatusAfter:          lifecycle.StatusSold,
			TxType:               model.TxTypeMarkSold,
			Timestamp:            now,
			SyncStatus:           uc.initialSyncStatus(),
		},
	}

	return uc.commit(ctx, plan)
}

// commit applies the plan and runs the post-commit steps. From here on the request can
// no longer cancel the operation.
func (uc *transferUseCase) commit(ctx context.Context, plan *dto.TransferPlan) (*model.Transfer, error) {
	ctx = context.WithoutCancel(ctx)

	if err := uc.repo.Execute(ctx, plan); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, fmt.Errorf("commit transfer: %w", err)
	}

	rec := plan.Record
	uc.logger.Info("transfer committed",
		zap.String("transfer_id", rec.ID),
		zap.String("product_id", rec.ProductID),
		zap.String("tx_type", string(rec.TxType)),
		zap.String("from", rec.FromStakeholderID),
		zap.String("to", rec.ToStakeholderID),
		zap.String("quantity", rec.Quantity.String()),
	)

	if uc.notifier != nil {
		changed := []*model.Product{plan.Source}
		if plan.Destination != nil {
			changed = append(changed, plan.Destination)
		}
		uc.notifier.ProductsChanged(ctx, changed...)
	}

	if rec.SyncStatus == model.SyncPending {
		uc.syncLedger(ctx, rec)
	}
	return rec, nil
}

// syncLedger writes rec to the external ledger within the configured timeout and stores
// the outcome on the record. A timeout leaves the record pending for the retry worker.
func (uc *transferUseCase) syncLedger(ctx context.Context, rec *model.Transfer) {
	callCtx, cancel := context.WithTimeout(ctx, uc.opts.LedgerTimeout)
	confirmation, err := uc.ledger.RecordTransfer(callCtx, ledger.EntryFromTransfer(rec))
	cancel()

	update := &dto.SyncUpdate{
		TransferID:           rec.ID,
		Attempts:             rec.SyncAttempts + 1,
		DestinationProductID: rec.DestinationProductID,
	}

	switch {
	case err == nil:
		update.Status = model.SyncSynced
		update.ConfirmationID = &confirmation
	case errors.Is(err, context.DeadlineExceeded):
		msg := "ledger write timed out"
		update.Status = model.SyncPending
		update.LastError = &msg
	default:
		msg := err.Error()
		update.Status = model.SyncFailed
		update.LastError = &msg
	}

	if err != nil {
		uc.logger.Warn("external ledger write failed",
			zap.String("transfer_id", rec.ID),
			zap.Int("attempt", update.Attempts),
			zap.Error(err),
		)
	}

	if err := uc.repo.UpdateSyncState(ctx, update); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			// another writer confirmed the record first
			uc.logger.Debug("ledger sync state already settled", zap.String("transfer_id", rec.ID))
			return
		}
		uc.logger.Error("failed to store ledger sync state", zap.String("transfer_id", rec.ID), zap.Error(err))
		return
	}
	metrics.LedgerSyncCounter.WithLabelValues(string(update.Status)).Inc()

	rec.SyncStatus = update.Status
	rec.SyncAttempts = update.Attempts
	rec.ConfirmationID = update.ConfirmationID
	rec.LastSyncError = update.LastError
}

func (uc *transferUseCase) SyncPending(ctx context.Context, limit int) (int, error) {
	if uc.ledger == nil {
		return 0, nil
	}

	pending, _, err := uc.repo.FindAll(ctx, &dto.TransferFilters{
		SyncStatuses: []model.SyncStatus{model.SyncPending, model.SyncFailed},
		MaxAttempts:  uc.opts.MaxSyncAttempts,
		Before:       time.Now().UTC().Add(-uc.opts.SyncGrace),
		Page:         1,
		PageSize:     limit,
	})
	if err != nil {
		return 0, err
	}

	synced := 0
	for i := range pending {
		if ctx.Err() != nil {
			break
		}
		rec := &pending[i]
		uc.syncLedger(ctx, rec)
		if rec.SyncStatus == model.SyncSynced {
			synced++
		}
	}
	return synced, nil
}

func (uc *transferUseCase) GetTransfer(ctx context.Context, id string) (*model.Transfer, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.New(apperr.KindNotFound, "transfer %s not found", id)
	}
	return t, nil
}

func (uc *transferUseCase) ProductHistory(ctx context.Context, productID string) ([]model.Transfer, error) {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "product %s not found", productID)
	}

	items, _, err := uc.repo.FindAll(ctx, &dto.TransferFilters{OriginID: p.OriginID})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Transfer{}
	}
	return items, nil
}

func (uc *transferUseCase) ListTransfers(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *transferUseCase) initialSyncStatus() model.SyncStatus {
	if uc.ledger == nil {
		return model.SyncSkipped
	}
	return model.SyncPending
}

func (uc *transferUseCase) checkCredential(actor *model.Stakeholder, proof string) error {
	if proof == "" || actor.CredentialHash == "" {
		return apperr.New(apperr.KindUnauthorized, "credential proof rejected")
	}
	ok, err := uc.verifier.Verify(proof, actor.CredentialHash)
	if err != nil {
		uc.logger.Warn("stored credential could not be checked", zap.String("stakeholder_id", actor.ID), zap.Error(err))
		return apperr.New(apperr.KindUnauthorized, "credential proof rejected")
	}
	if !ok {
		return apperr.New(apperr.KindUnauthorized, "credential proof rejected")
	}
	return nil
}

// lock takes the per-product lock, retrying a few times before giving up with Busy.
func (uc *transferUseCase) lock(ctx context.Context, productID string) (func(), error) {
	key := "lock:product:" + productID
	value := uuid.New().String()

	for i := 0; i < uc.opts.LockRetries; i++ {
		ok, err := uc.locker.AcquireLock(ctx, key, value, uc.opts.LockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire product lock", zap.String("key", key), zap.Error(err))
		}
		if ok {
			return func() {
				if err := uc.locker.ReleaseLock(context.WithoutCancel(ctx), key, value); err != nil {
					uc.logger.Warn("failed to release product lock", zap.String("key", key), zap.Error(err))
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(uc.opts.LockRetryDelay):
		}
	}

	return nil, apperr.New(apperr.KindBusy, "product %s is being modified, try again", productID)
}

func observe(txType model.TxType, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(apperr.KindOf(err))
	}
	metrics.TransferCounter.WithLabelValues(string(txType), outcome).Inc()
}
