// Package memstore keeps stakeholders, products and transfers in process memory.
// It backs the service when STORAGE_DRIVER=memory and serves as the store in tests.
// Every write happens under one mutex, so a transfer plan is applied all-or-nothing.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	productDto "github.com/fekuna/agritrace-service/internal/product/dto"
	stakeholderDto "github.com/fekuna/agritrace-service/internal/stakeholder/dto"
	transferDto "github.com/fekuna/agritrace-service/internal/transfer/dto"
)

type Store struct {
	mu sync.RWMutex

	stakeholders     map[string]model.Stakeholder
	stakeholderOrder []string
	products         map[string]model.Product
	productOrder     []string
	transfers        map[string]model.Transfer
	transferOrder    []string
}

func New() *Store {
	return &Store{
		stakeholders: map[string]model.Stakeholder{},
		products:     map[string]model.Product{},
		transfers:    map[string]model.Transfer{},
	}
}

func (s *Store) Stakeholders() *StakeholderRepository { return &StakeholderRepository{s: s} }
func (s *Store) Products() *ProductRepository         { return &ProductRepository{s: s} }
func (s *Store) Transfers() *TransferRepository       { return &TransferRepository{s: s} }

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// StakeholderRepository implements stakeholder.Repository.
type StakeholderRepository struct{ s *Store }

func (r *StakeholderRepository) Create(_ context.Context, st *model.Stakeholder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stakeholders[st.ID]; ok {
		return apperr.New(apperr.KindConflict, "stakeholder %s already exists", st.ID)
	}
	r.s.stakeholders[st.ID] = *st
	r.s.stakeholderOrder = append(r.s.stakeholderOrder, st.ID)
	return nil
}

func (r *StakeholderRepository) FindByID(_ context.Context, id string) (*model.Stakeholder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.stakeholders[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (r *StakeholderRepository) FindByIDs(_ context.Context, ids []string) ([]model.Stakeholder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := []model.Stakeholder{}
	for _, id := range ids {
		if st, ok := r.s.stakeholders[id]; ok {
			items = append(items, st)
		}
	}
	return items, nil
}

func (r *StakeholderRepository) FindAll(_ context.Context, f *stakeholderDto.StakeholderFilters) ([]model.Stakeholder, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := []model.Stakeholder{}
	for _, id := range r.s.stakeholderOrder {
		st := r.s.stakeholders[id]
		if f.Role != "" && st.Role != f.Role {
			continue
		}
		if f.VerifiedOnly && !st.IsVerified {
			continue
		}
		items = append(items, st)
	}
	return paginate(items, f.Page, f.PageSize), len(items), nil
}

func (r *StakeholderRepository) MarkVerified(_ context.Context, id string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stakeholders[id]
	if !ok || st.IsVerified {
		return false, nil
	}
	st.IsVerified = true
	st.VerifiedAt = &at
	st.UpdatedAt = at
	r.s.stakeholders[id] = st
	return true, nil
}

// ProductRepository implements product.Repository.
type ProductRepository struct{ s *Store }

func (r *ProductRepository) Create(_ context.Context, p *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertProduct(p)
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepository) FindAll(_ context.Context, f *productDto.ProductFilters) ([]model.Product, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ids map[string]bool
	if len(f.IDs) > 0 {
		ids = make(map[string]bool, len(f.IDs))
		for _, id := range f.IDs {
			ids[id] = true
		}
	}

	items := []model.Product{}
	for _, id := range r.s.productOrder {
		p := r.s.products[id]
		if ids != nil && !ids[p.ID] {
			continue
		}
		if f.OwnerID != "" && p.OwnerID != f.OwnerID {
			continue
		}
		if f.FarmerID != "" && p.FarmerID != f.FarmerID {
			continue
		}
		if f.OriginID != "" && p.OriginID != f.OriginID {
			continue
		}
		if len(f.Statuses) > 0 && !hasStatus(f.Statuses, p.Status) {
			continue
		}
		if f.ActiveOnly && !p.Active() {
			continue
		}
		items = append(items, p)
	}
	return paginate(items, f.Page, f.PageSize), len(items), nil
}

func hasStatus(statuses []lifecycle.Status, s lifecycle.Status) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s *Store) insertProduct(p *model.Product) error {
	if _, ok := s.products[p.ID]; ok {
		return apperr.New(apperr.KindConflict, "product %s already exists", p.ID)
	}
	s.products[p.ID] = *p
	s.productOrder = append(s.productOrder, p.ID)
	return nil
}

// TransferRepository implements transfer.Repository.
type TransferRepository struct{ s *Store }

func (r *TransferRepository) Execute(_ context.Context, plan *transferDto.TransferPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// validate every write before applying any of them
	if err := r.s.checkVersion(plan.Source.ID, plan.SourceVersion); err != nil {
		return err
	}
	if plan.Destination != nil {
		if plan.DestinationIsNew {
			if _, ok := r.s.products[plan.Destination.ID]; ok {
				return apperr.New(apperr.KindConflict, "product %s already exists", plan.Destination.ID)
			}
		} else if err := r.s.checkVersion(plan.Destination.ID, plan.DestinationVersion); err != nil {
			return err
		}
	}
	if _, ok := r.s.transfers[plan.Record.ID]; ok {
		return apperr.New(apperr.KindConflict, "transfer %s already exists", plan.Record.ID)
	}

	r.s.applyUpdate(plan.Source, plan.SourceVersion)
	if plan.Destination != nil {
		if plan.DestinationIsNew {
			_ = r.s.insertProduct(plan.Destination)
		} else {
			r.s.applyUpdate(plan.Destination, plan.DestinationVersion)
		}
	}
	r.s.transfers[plan.Record.ID] = *plan.Record
	r.s.transferOrder = append(r.s.transferOrder, plan.Record.ID)
	return nil
}

func (s *Store) checkVersion(id string, expected int64) error {
	cur, ok := s.products[id]
	if !ok || cur.Version != expected {
		return apperr.New(apperr.KindConflict, "product %s was modified concurrently", id)
	}
	return nil
}

// applyUpdate writes the mutable columns, mirroring the SQL update.
func (s *Store) applyUpdate(p *model.Product, expected int64) {
	cur := s.products[p.ID]
	cur.Quantity = p.Quantity
	cur.Status = p.Status
	cur.Price = p.Price
	cur.UpdatedAt = p.UpdatedAt
	cur.Version = expected + 1
	s.products[p.ID] = cur
}

func (r *TransferRepository) FindDestination(_ context.Context, originID, ownerID string, status lifecycle.Status) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.productOrder {
		p := r.s.products[id]
		if p.OriginID == originID && p.OwnerID == ownerID && p.Status == status {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *TransferRepository) FindByID(_ context.Context, id string) (*model.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.transfers[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TransferRepository) FindAll(_ context.Context, f *transferDto.TransferFilters) ([]model.Transfer, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := []model.Transfer{}
	for _, id := range r.s.transferOrder {
		t := r.s.transfers[id]
		if f.ProductID != "" && t.ProductID != f.ProductID &&
			(t.DestinationProductID == nil || *t.DestinationProductID != f.ProductID) {
			continue
		}
		if f.OriginID != "" && t.OriginID != f.OriginID {
			continue
		}
		if f.StakeholderID != "" && t.FromStakeholderID != f.StakeholderID && t.ToStakeholderID != f.StakeholderID {
			continue
		}
		if len(f.SyncStatuses) > 0 && !hasSyncStatus(f.SyncStatuses, t.SyncStatus) {
			continue
		}
		if f.MaxAttempts > 0 && t.SyncAttempts >= f.MaxAttempts {
			continue
		}
		if !f.Before.IsZero() && !t.Timestamp.Before(f.Before) {
			continue
		}
		items = append(items, t)
	}
	return paginate(items, f.Page, f.PageSize), len(items), nil
}

func hasSyncStatus(statuses []model.SyncStatus, s model.SyncStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (r *TransferRepository) UpdateSyncState(_ context.Context, u *transferDto.SyncUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.transfers[u.TransferID]
	if !ok {
		return apperr.New(apperr.KindNotFound, "transfer %s not found", u.TransferID)
	}
	if t.SyncStatus == model.SyncSynced {
		return apperr.New(apperr.KindConflict, "transfer %s is already synced", u.TransferID)
	}
	t.SyncStatus = u.Status
	t.SyncAttempts = u.Attempts
	t.ConfirmationID = u.ConfirmationID
	t.LastSyncError = u.LastError
	r.s.transfers[t.ID] = t

	if u.ConfirmationID != nil && u.DestinationProductID != nil {
		if p, ok := r.s.products[*u.DestinationProductID]; ok && p.BlockchainID == nil {
			confirmation := *u.ConfirmationID
			p.BlockchainID = &confirmation
			r.s.products[p.ID] = p
		}
	}
	return nil
}
