package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/ledger"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/memstore"
	"github.com/fekuna/agritrace-service/internal/model"
	productDto "github.com/fekuna/agritrace-service/internal/product/dto"
	"github.com/fekuna/agritrace-service/internal/transfer"
	"github.com/fekuna/agritrace-service/internal/transfer/dto"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainVerifier accepts a proof when the stored hash is "hashed:" + proof.
type plainVerifier struct{}

func (plainVerifier) Verify(proof, encodedHash string) (bool, error) {
	return encodedHash == "hashed:"+proof, nil
}

type fakeLedger struct {
	mu      sync.Mutex
	entries []ledger.Entry
	err     error
	block   bool
}

func (l *fakeLedger) RecordTransfer(ctx context.Context, entry ledger.Entry) (string, error) {
	if l.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return "", l.err
	}
	l.entries = append(l.entries, entry)
	return "conf-" + entry.TransferID, nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	changed []string
}

func (n *recordingNotifier) ProductsChanged(_ context.Context, products ...*model.Product) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, p := range products {
		n.changed = append(n.changed, p.ID)
	}
}

type fixture struct {
	store    *memstore.Store
	locker   *memstore.Locker
	ledger   *fakeLedger
	notifier *recordingNotifier
	uc       transfer.UseCase
}

func newFixture(t *testing.T, l *fakeLedger, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		store:    memstore.New(),
		locker:   memstore.NewLocker(),
		ledger:   l,
		notifier: &recordingNotifier{},
	}
	var lg ledger.Ledger
	if l != nil {
		lg = l
	}
	f.uc = NewTransferUseCase(
		f.store.Transfers(),
		f.store.Products(),
		f.store.Stakeholders(),
		plainVerifier{},
		f.locker,
		lg,
		f.notifier,
		logger.NewNopLogger(),
		opts,
	)
	return f
}

func (f *fixture) stakeholder(t *testing.T, id string, role lifecycle.Role, verified bool) *model.Stakeholder {
	t.Helper()
	s := &model.Stakeholder{
		BaseModel:      model.BaseModel{ID: id, CreatedAt: time.Now().UTC()},
		Name:           id,
		Role:           role,
		IsVerified:     verified,
		CredentialHash: "hashed:pw-" + id,
	}
	require.NoError(t, f.store.Stakeholders().Create(context.Background(), s))
	return s
}

func (f *fixture) harvest(t *testing.T, id, farmerID string, qty, price int64) *model.Product {
	t.Helper()
	p := &model.Product{
		BaseModel:    model.BaseModel{ID: id, CreatedAt: time.Now().UTC()},
		OriginID:     id,
		Name:         "Tomato",
		Variety:      "Roma",
		FarmLocation: "Nashik",
		Quantity:     decimal.NewFromInt(qty),
		QualityGrade: model.GradeA,
		Price:        decimal.NewFromInt(price),
		Status:       lifecycle.StatusHarvested,
		OwnerID:      farmerID,
		FarmerID:     farmerID,
		Version:      1,
	}
	require.NoError(t, f.store.Products().Create(context.Background(), p))
	return p
}

func (f *fixture) product(t *testing.T, id string) *model.Product {
	t.Helper()
	p, err := f.store.Products().FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func priceOf(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func transferInput(productID, actor, to string, qty int64, price int64) *dto.TransferInput {
	return &dto.TransferInput{
		ProductID:       productID,
		ActorID:         actor,
		ToStakeholderID: to,
		Quantity:        decimal.NewFromInt(qty),
		Price:           priceOf(price),
		Location:        "Pune",
		CredentialProof: "pw-" + actor,
	}
}

func TestTransferFarmerToDistributor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeLedger{}, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	rec, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	require.NoError(t, err)

	src := f.product(t, "P")
	assert.True(t, src.Quantity.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, lifecycle.StatusHarvested, src.Status)
	assert.Equal(t, "F", src.OwnerID)

	require.NotNil(t, rec.DestinationProductID)
	dest := f.product(t, *rec.DestinationProductID)
	assert.True(t, dest.Quantity.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, lifecycle.StatusAtDistributor, dest.Status)
	assert.Equal(t, "D", dest.OwnerID)
	assert.Equal(t, "F", dest.FarmerID)
	assert.Equal(t, "P", dest.OriginID)
	require.NotNil(t, dest.ParentID)
	assert.Equal(t, "P", *dest.ParentID)
	assert.True(t, dest.Price.Equal(decimal.NewFromInt(55)))

	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(40)))
	assert.True(t, rec.Price.Equal(decimal.NewFromInt(55)))
	assert.Equal(t, "Pune", rec.Location)
	assert.Equal(t, model.TxTypeTransfer, rec.TxType)
	assert.Equal(t, lifecycle.StatusAtDistributor, rec.StatusAfter)

	// conservation
	assert.True(t, src.Quantity.Add(dest.Quantity).Equal(decimal.NewFromInt(100)))

	assert.Equal(t, model.SyncSynced, rec.SyncStatus)
	require.NotNil(t, rec.ConfirmationID)
	assert.Equal(t, "conf-"+rec.ID, *rec.ConfirmationID)
	require.NotNil(t, dest.BlockchainID)
	assert.Equal(t, *rec.ConfirmationID, *dest.BlockchainID)

	assert.ElementsMatch(t, []string{"P", dest.ID}, f.notifier.changed)
}

func TestTransferUnverifiedRecipient(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeLedger{}, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, false)
	f.harvest(t, "P", "F", 100, 50)

	_, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	assert.ErrorIs(t, err, apperr.NotVerified)
	assertUntouched(t, f, "P", 100)
}

func TestTransferSkippingRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeLedger{}, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "R", lifecycle.RoleRetailer, true)
	f.stakeholder(t, "C", lifecycle.RoleConsumer, true)
	f.stakeholder(t, "F2", lifecycle.RoleFarmer, true)
	f.harvest(t, "P", "F", 100, 50)

	for _, to := range []string{"R", "C", "F2", "missing"} {
		_, err := f.uc.Transfer(ctx, transferInput("P", "F", to, 10, 55))
		assert.ErrorIs(t, err, apperr.InvalidRecipientRole, to)
	}
	assertUntouched(t, f, "P", 100)
}

func TestTransferValidationOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeLedger{}, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "Fu", lifecycle.RoleFarmer, false)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.stakeholder(t, "R", lifecycle.RoleRetailer, true)
	f.harvest(t, "P", "F", 100, 50)
	f.harvest(t, "Pu", "Fu", 100, 50)

	cases := []struct {
		name  string
		input *dto.TransferInput
		want  apperr.Kind
	}{
		{"missing product", transferInput("nope", "F", "D", 40, 55), apperr.KindNotFound},
		{"not the owner", transferInput("P", "D", "R", 40, 55), apperr.KindForbidden},
		{"unverified actor beats bad quantity", transferInput("Pu", "Fu", "D", 500, -1), apperr.KindNotVerified},
		{"bad recipient beats bad quantity", transferInput("P", "F", "R", 500, 55), apperr.KindInvalidRecipientRole},
		{"too much", transferInput("P", "F", "D", 101, 55), apperr.KindInvalidQuantity},
		{"zero", transferInput("P", "F", "D", 0, 55), apperr.KindInvalidQuantity},
		{"negative", transferInput("P", "F", "D", -5, 55), apperr.KindInvalidQuantity},
		{"bad quantity beats bad price", transferInput("P", "F", "D", 101, -1), apperr.KindInvalidQuantity},
		{"negative price", transferInput("P", "F", "D", 40, -1), apperr.KindInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Transfer(ctx, tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.want, apperr.KindOf(err))
		})
	}

	bad := transferInput("P", "F", "D", 40, -1)
	bad.CredentialProof = "wrong"
	_, err := f.uc.Transfer(ctx, bad)
	assert.Equal(t, apperr.KindInvalidPrice, apperr.KindOf(err), "price is checked before the credential")

	bad = transferInput("P", "F", "D", 40, 55)
	bad.CredentialProof = "wrong"
	_, err = f.uc.Transfer(ctx, bad)
	assert.ErrorIs(t, err, apperr.Unauthorized)

	bad.CredentialProof = ""
	_, err = f.uc.Transfer(ctx, bad)
	assert.ErrorIs(t, err, apperr.Unauthorized)

	assertUntouched(t, f, "P", 100)
}

func TestTransferWholeQuantityAndKeepPrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	in := transferInput("P", "F", "D", 100, 0)
	in.Price = nil
	rec, err := f.uc.Transfer(ctx, in)
	require.NoError(t, err)
	assert.True(t, rec.Price.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, model.SyncSkipped, rec.SyncStatus)

	src := f.product(t, "P")
	assert.True(t, src.Quantity.IsZero())
	assert.Equal(t, lifecycle.StatusHarvested, src.Status)

	// consumed records cannot move again
	_, err = f.uc.Transfer(ctx, transferInput("P", "F", "D", 1, 50))
	assert.ErrorIs(t, err, apperr.InvalidQuantity)
}

func TestTransferMergesIntoExistingRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeLedger{}, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	first, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	require.NoError(t, err)
	second, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 30, 58))
	require.NoError(t, err)

	assert.Equal(t, *first.DestinationProductID, *second.DestinationProductID)
	dest := f.product(t, *first.DestinationProductID)
	assert.True(t, dest.Quantity.Equal(decimal.NewFromInt(70)))
	assert.True(t, dest.Price.Equal(decimal.NewFromInt(58)))

	owned, _, err := f.store.Products().FindAll(ctx, &productDto.ProductFilters{OwnerID: "D"})
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	history, err := f.uc.ProductHistory(ctx, dest.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, second.ID, history[1].ID)
}

func TestFullChainIsMonotone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeLedger{}, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.stakeholder(t, "R", lifecycle.RoleRetailer, true)
	f.stakeholder(t, "C", lifecycle.RoleConsumer, true)
	f.harvest(t, "P", "F", 100, 50)

	toD, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 80, 55))
	require.NoError(t, err)
	toR, err := f.uc.Transfer(ctx, transferInput(*toD.DestinationProductID, "D", "R", 50, 60))
	require.NoError(t, err)
	toC, err := f.uc.Transfer(ctx, transferInput(*toR.DestinationProductID, "R", "C", 5, 70))
	require.NoError(t, err)

	assert.Equal(t, model.TxTypeSale, toC.TxType)
	assert.Equal(t, lifecycle.StatusSold, f.product(t, *toC.DestinationProductID).Status)

	ranks := []int{
		lifecycle.StatusHarvested.Rank(),
		toD.StatusAfter.Rank(),
		toR.StatusAfter.Rank(),
		toC.StatusAfter.Rank(),
	}
	for i := 1; i < len(ranks); i++ {
		assert.Greater(t, ranks[i], ranks[i-1])
	}

	// a consumer is the end of the chain
	_, err = f.uc.Transfer(ctx, transferInput(*toC.DestinationProductID, "C", "F", 1, 1))
	assert.ErrorIs(t, err, apperr.InvalidRecipientRole)

	// the retailer closes the remaining balance
	sold, err := f.uc.MarkSold(ctx, &dto.MarkSoldInput{
		ProductID:       *toR.DestinationProductID,
		ActorID:         "R",
		Location:        "Mumbai",
		CredentialProof: "pw-R",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TxTypeMarkSold, sold.TxType)
	assert.Equal(t, "R", sold.FromStakeholderID)
	assert.Equal(t, "R", sold.ToStakeholderID)
	assert.True(t, sold.Quantity.Equal(decimal.NewFromInt(45)))

	retail := f.product(t, *toR.DestinationProductID)
	assert.Equal(t, lifecycle.StatusSold, retail.Status)
	assert.True(t, retail.Quantity.Equal(decimal.NewFromInt(45)))

	// sold records stay sold
	_, err = f.uc.MarkSold(ctx, &dto.MarkSoldInput{ProductID: retail.ID, ActorID: "R", CredentialProof: "pw-R"})
	assert.ErrorIs(t, err, apperr.Conflict)
	_, err = f.uc.Transfer(ctx, transferInput(retail.ID, "R", "C", 1, 70))
	assert.ErrorIs(t, err, apperr.Conflict)

	history, err := f.uc.ProductHistory(ctx, "P")
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestMarkSoldRequiresRetailer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.harvest(t, "P", "F", 100, 50)

	_, err := f.uc.MarkSold(ctx, &dto.MarkSoldInput{ProductID: "P", ActorID: "F", CredentialProof: "pw-F"})
	assert.ErrorIs(t, err, apperr.Forbidden)

	_, err = f.uc.MarkSold(ctx, &dto.MarkSoldInput{ProductID: "missing", ActorID: "F"})
	assert.ErrorIs(t, err, apperr.NotFound)
}

func TestTransferRejectsStatusOutsideHolderRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.stakeholder(t, "R", lifecycle.RoleRetailer, true)
	// a distributor never holds a harvested record
	f.harvest(t, "P", "D", 100, 50)

	_, err := f.uc.Transfer(ctx, transferInput("P", "D", "R", 10, 55))
	assert.ErrorIs(t, err, apperr.Conflict)
	assertUntouched(t, f, "P", 100)
}

func TestMarkSoldRejectsRetailerOutsideAtRetailer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	f.stakeholder(t, "R", lifecycle.RoleRetailer, true)
	f.harvest(t, "P", "R", 100, 50)

	_, err := f.uc.MarkSold(ctx, &dto.MarkSoldInput{ProductID: "P", ActorID: "R", CredentialProof: "pw-R"})
	assert.ErrorIs(t, err, apperr.Conflict)
	assertUntouched(t, f, "P", 100)
}

func TestLedgerFailureKeepsCommit(t *testing.T) {
	ctx := context.Background()
	l := &fakeLedger{err: errors.New("broker unreachable")}
	f := newFixture(t, l, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	rec, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	require.NoError(t, err)
	assert.Equal(t, model.SyncFailed, rec.SyncStatus)
	assert.Equal(t, 1, rec.SyncAttempts)
	require.NotNil(t, rec.LastSyncError)
	assert.True(t, f.product(t, "P").Quantity.Equal(decimal.NewFromInt(60)))

	// the worker picks it up once the ledger is back
	l.mu.Lock()
	l.err = nil
	l.mu.Unlock()

	synced, err := f.uc.SyncPending(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, synced)

	stored, err := f.uc.GetTransfer(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SyncSynced, stored.SyncStatus)
	assert.Equal(t, 2, stored.SyncAttempts)
	assert.NotNil(t, f.product(t, *rec.DestinationProductID).BlockchainID)

	synced, err = f.uc.SyncPending(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, synced)
}

func TestLedgerTimeoutLeavesPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeLedger{block: true}, Options{LedgerTimeout: 10 * time.Millisecond})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	start := time.Now()
	rec, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, model.SyncPending, rec.SyncStatus)
	assert.Equal(t, 1, rec.SyncAttempts)
}

func TestSyncPendingRespectsMaxAttempts(t *testing.T) {
	ctx := context.Background()
	l := &fakeLedger{err: errors.New("down")}
	f := newFixture(t, l, Options{MaxSyncAttempts: 2})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	rec, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	require.NoError(t, err)

	_, err = f.uc.SyncPending(ctx, 10)
	require.NoError(t, err)
	_, err = f.uc.SyncPending(ctx, 10)
	require.NoError(t, err)

	stored, err := f.uc.GetTransfer(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.SyncAttempts)
	assert.Equal(t, model.SyncFailed, stored.SyncStatus)
}

// gatedLedger holds every call until the test releases it with the call's result.
type gatedLedger struct {
	mu      sync.Mutex
	calls   int
	entered chan int
	results []chan error
}

func newGatedLedger(calls int) *gatedLedger {
	l := &gatedLedger{entered: make(chan int, calls)}
	for i := 0; i < calls; i++ {
		l.results = append(l.results, make(chan error, 1))
	}
	return l
}

func (l *gatedLedger) RecordTransfer(ctx context.Context, entry ledger.Entry) (string, error) {
	l.mu.Lock()
	n := l.calls
	l.calls++
	l.mu.Unlock()

	l.entered <- n
	select {
	case err := <-l.results[n]:
		if err != nil {
			return "", err
		}
		return "conf-" + entry.TransferID, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestLateRetryFailureKeepsSyncedRecord(t *testing.T) {
	ctx := context.Background()
	l := newGatedLedger(2)
	f := newFixture(t, nil, Options{})
	f.uc = NewTransferUseCase(f.store.Transfers(), f.store.Products(), f.store.Stakeholders(), plainVerifier{}, f.locker, l, nil, logger.NewNopLogger(), Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	type result struct {
		rec *model.Transfer
		err error
	}
	inline := make(chan result, 1)
	go func() {
		rec, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
		inline <- result{rec, err}
	}()
	require.Equal(t, 0, <-l.entered)

	// the worker reads the record while the inline write is still in flight
	retried := make(chan error, 1)
	go func() {
		_, err := f.uc.SyncPending(ctx, 10)
		retried <- err
	}()
	require.Equal(t, 1, <-l.entered)

	l.results[0] <- nil
	res := <-inline
	require.NoError(t, res.err)
	assert.Equal(t, model.SyncSynced, res.rec.SyncStatus)

	l.results[1] <- errors.New("broker unreachable")
	require.NoError(t, <-retried)

	stored, err := f.uc.GetTransfer(ctx, res.rec.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SyncSynced, stored.SyncStatus)
	require.NotNil(t, stored.ConfirmationID)
	assert.Equal(t, "conf-"+res.rec.ID, *stored.ConfirmationID)
	assert.Nil(t, stored.LastSyncError)
	assert.Equal(t, 2, l.calls)
}

func TestSyncPendingWaitsForGrace(t *testing.T) {
	ctx := context.Background()
	l := &fakeLedger{err: errors.New("down")}
	f := newFixture(t, l, Options{SyncGrace: time.Hour})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	rec, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	require.NoError(t, err)

	l.mu.Lock()
	l.err = nil
	l.mu.Unlock()

	synced, err := f.uc.SyncPending(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, synced)

	stored, err := f.uc.GetTransfer(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SyncFailed, stored.SyncStatus)
	assert.Equal(t, 1, stored.SyncAttempts)
}

func TestTransferBusyWhenLocked(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{LockRetryDelay: time.Millisecond})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	ok, err := f.locker.AcquireLock(ctx, "lock:product:P", "someone-else", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	assert.ErrorIs(t, err, apperr.Busy)
	assertUntouched(t, f, "P", 100)
}

func TestConcurrentTransfersNeverOverspend(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{LockRetries: 10000, LockRetryDelay: time.Millisecond})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Transfer(ctx, transferInput("P", "F", "D", 20, 55))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperr.InvalidQuantity)
	}
	assert.Equal(t, 5, succeeded)

	src := f.product(t, "P")
	assert.True(t, src.Quantity.IsZero())
	owned, _, err := f.store.Products().FindAll(ctx, &productDto.ProductFilters{OwnerID: "D"})
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.True(t, owned[0].Quantity.Equal(decimal.NewFromInt(100)))
}

// cancellingRepo cancels the request right before the commit.
type cancellingRepo struct {
	transfer.Repository
	cancel    context.CancelFunc
	commitErr error
}

func (r *cancellingRepo) FindDestination(ctx context.Context, originID, ownerID string, status lifecycle.Status) (*model.Product, error) {
	p, err := r.Repository.FindDestination(ctx, originID, ownerID, status)
	r.cancel()
	return p, err
}

func (r *cancellingRepo) Execute(ctx context.Context, plan *dto.TransferPlan) error {
	r.commitErr = ctx.Err()
	return r.Repository.Execute(ctx, plan)
}

func TestCancelDuringCommitDoesNotAbort(t *testing.T) {
	f := newFixture(t, nil, Options{})
	f.stakeholder(t, "F", lifecycle.RoleFarmer, true)
	f.stakeholder(t, "D", lifecycle.RoleDistributor, true)
	f.harvest(t, "P", "F", 100, 50)

	ctx, cancel := context.WithCancel(context.Background())
	repo := &cancellingRepo{Repository: f.store.Transfers(), cancel: cancel}
	uc := NewTransferUseCase(repo, f.store.Products(), f.store.Stakeholders(), plainVerifier{}, f.locker, nil, nil, logger.NewNopLogger(), Options{})

	_, err := uc.Transfer(ctx, transferInput("P", "F", "D", 40, 55))
	require.NoError(t, err)
	assert.NoError(t, repo.commitErr)
	assert.True(t, f.product(t, "P").Quantity.Equal(decimal.NewFromInt(60)))
}

func assertUntouched(t *testing.T, f *fixture, productID string, qty int64) {
	t.Helper()
	p := f.product(t, productID)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(qty)))
	assert.Equal(t, int64(1), p.Version)
	items, total, err := f.store.Transfers().FindAll(context.Background(), &dto.TransferFilters{ProductID: productID})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
