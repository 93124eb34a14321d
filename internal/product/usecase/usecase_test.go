package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/memstore"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/product"
	"github.com/fekuna/agritrace-service/internal/product/dto"
	transferDto "github.com/fekuna/agritrace-service/internal/transfer/dto"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/fekuna/agritrace-service/pkg/search"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mapCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMapCache() *mapCache { return &mapCache{data: map[string]string{}} }

func (c *mapCache) GetString(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = string(value)
	return nil
}

func (c *mapCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(c.data[key], 10, 64)
	n++
	c.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *mapCache) views() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var keys []string
	for k := range c.data {
		if strings.HasPrefix(k, viewPrefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *mapCache) DeletePattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type stubIndex struct {
	mu        sync.Mutex
	createErr error
	hits      []string
	total     int
	err       error
	queries   []map[string]interface{}
	indexed   map[string]interface{}
}

func (s *stubIndex) CreateIndex(context.Context, string, string) error { return s.createErr }

func (s *stubIndex) indexedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for id := range s.indexed {
		out = append(out, id)
	}
	return out
}

func (s *stubIndex) Index(_ context.Context, _ string, id string, doc interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexed == nil {
		s.indexed = map[string]interface{}{}
	}
	s.indexed[id] = doc
	return nil
}

func (s *stubIndex) Search(_ context.Context, _ string, q map[string]interface{}) (*search.SearchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if s.err != nil {
		return nil, s.err
	}
	res := &search.SearchResponse{}
	res.Hits.Total.Value = s.total
	if s.total == 0 {
		res.Hits.Total.Value = len(s.hits)
	}
	for _, id := range s.hits {
		res.Hits.Hits = append(res.Hits.Hits, search.SearchHit{ID: id})
	}
	return res, nil
}

func (s *stubIndex) Delete(context.Context, string, string) error { return nil }

func seed(t *testing.T, store *memstore.Store) {
	t.Helper()
	ctx := context.Background()
	for _, s := range []model.Stakeholder{
		{BaseModel: model.BaseModel{ID: "f1"}, Name: "Asha Patil", Role: lifecycle.RoleFarmer, IsVerified: true},
		{BaseModel: model.BaseModel{ID: "f2"}, Name: "Ravi Kumar", Role: lifecycle.RoleFarmer},
		{BaseModel: model.BaseModel{ID: "d1"}, Name: "Cold Chain Co", Role: lifecycle.RoleDistributor, IsVerified: true},
	} {
		s := s
		require.NoError(t, store.Stakeholders().Create(ctx, &s))
	}

	products := []model.Product{
		{BaseModel: model.BaseModel{ID: "a"}, Name: "Tomato", Variety: "Roma", FarmLocation: "Nashik", Quantity: decimal.NewFromInt(60), Status: lifecycle.StatusHarvested, OwnerID: "f1", FarmerID: "f1"},
		{BaseModel: model.BaseModel{ID: "b"}, Name: "Onion", Variety: "Red", FarmLocation: "Lasalgaon", Quantity: decimal.NewFromInt(40), Status: lifecycle.StatusAtDistributor, OwnerID: "d1", FarmerID: "f1"},
		{BaseModel: model.BaseModel{ID: "c"}, Name: "Grapes", Variety: "Thompson", FarmLocation: "Nashik", Quantity: decimal.Zero, Status: lifecycle.StatusHarvested, OwnerID: "f2", FarmerID: "f2"},
		{BaseModel: model.BaseModel{ID: "d"}, Name: "Cherry tomato", Variety: "Sweet", FarmLocation: "Pune", Quantity: decimal.NewFromInt(5), Status: lifecycle.StatusHarvested, OwnerID: "f2", FarmerID: "f2"},
	}
	for i := range products {
		products[i].OriginID = products[i].ID
		products[i].Version = 1
		require.NoError(t, store.Products().Create(ctx, &products[i]))
	}
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func newUseCase(store *memstore.Store, cache product.Cache, es product.SearchIndex) product.UseCase {
	return NewProductUseCase(store.Products(), store.Stakeholders(), cache, es, logger.NewNopLogger())
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store)
	uc := newUseCase(store, nil, nil)

	valid := func() *dto.CreateProductInput {
		return &dto.CreateProductInput{
			FarmerID:     "f1",
			Name:         " Wheat ",
			Variety:      "Sharbati",
			FarmLocation: "Sehore",
			Quantity:     decimal.NewFromInt(100),
			Price:        decimal.NewFromInt(50),
		}
	}

	p, err := uc.CreateProduct(ctx, valid())
	require.NoError(t, err)
	assert.Equal(t, "Wheat", p.Name)
	assert.Equal(t, lifecycle.StatusHarvested, p.Status)
	assert.Equal(t, p.ID, p.OriginID)
	assert.Equal(t, "f1", p.OwnerID)
	assert.Equal(t, "f1", p.FarmerID)
	assert.Equal(t, model.GradeStandard, p.QualityGrade)
	assert.Nil(t, p.BlockchainID)

	stored, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(100)))

	cases := []struct {
		name   string
		mutate func(in *dto.CreateProductInput)
		want   apperr.Kind
	}{
		{"unknown farmer", func(in *dto.CreateProductInput) { in.FarmerID = "nobody" }, apperr.KindNotFound},
		{"not a farmer", func(in *dto.CreateProductInput) { in.FarmerID = "d1" }, apperr.KindForbidden},
		{"unverified farmer", func(in *dto.CreateProductInput) { in.FarmerID = "f2" }, apperr.KindNotVerified},
		{"blank name", func(in *dto.CreateProductInput) { in.Name = "  " }, apperr.KindInvalidArgument},
		{"zero quantity", func(in *dto.CreateProductInput) { in.Quantity = decimal.Zero }, apperr.KindInvalidQuantity},
		{"negative price", func(in *dto.CreateProductInput) { in.Price = decimal.NewFromInt(-1) }, apperr.KindInvalidPrice},
		{"unknown grade", func(in *dto.CreateProductInput) { in.QualityGrade = "gold" }, apperr.KindInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			tc.mutate(in)
			_, err := uc.CreateProduct(ctx, in)
			require.Error(t, err)
			assert.Equal(t, tc.want, apperr.KindOf(err))
		})
	}

	_, err = uc.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, apperr.NotFound)
}

func TestRoleViews(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store)
	uc := newUseCase(store, nil, nil)

	got, err := uc.ProductsAvailableTo(ctx, lifecycle.RoleDistributor)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, ids(got))

	got, err = uc.ProductsAvailableTo(ctx, lifecycle.RoleRetailer)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(got))

	got, err = uc.ProductsAvailableTo(ctx, lifecycle.RoleFarmer)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = uc.ProductsAvailableTo(ctx, lifecycle.Role("admin"))
	assert.ErrorIs(t, err, apperr.InvalidArgument)

	got, err = uc.ProductsOwnedBy(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, ids(got))
}

func TestSearchProductsFromDatabase(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store)
	uc := newUseCase(store, nil, nil)

	got, err := uc.SearchProducts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got))

	got, err = uc.SearchProducts(ctx, "TOMATO")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, ids(got))

	got, err = uc.SearchProducts(ctx, "nashik")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, ids(got))

	got, err = uc.SearchProducts(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestSearchProductsThroughIndex(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store)

	idx := &stubIndex{hits: []string{"d", "a"}}
	uc := newUseCase(store, nil, idx)

	got, err := uc.SearchProducts(ctx, "tomato")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, ids(got), "database order wins over hit order")
	require.Len(t, idx.queries, 1)

	// hits are filtered again, a stale index cannot widen the result
	idx.hits = []string{"a", "b"}
	got, err = uc.SearchProducts(ctx, "tomato")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSearchFallsBackWhenIndexFails(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store)

	uc := newUseCase(store, nil, &stubIndex{err: errors.New("index unavailable")})
	got, err := uc.SearchProducts(ctx, "tomato")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, ids(got))

	truncated := &stubIndex{hits: []string{"a"}, total: 5000}
	uc = newUseCase(store, nil, truncated)
	got, err = uc.SearchProducts(ctx, "tomato")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, ids(got))
}

func TestViewCacheInvalidatedOnChange(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store)
	cache := newMapCache()
	uc := newUseCase(store, cache, nil)

	got, err := uc.ProductsAvailableTo(ctx, lifecycle.RoleDistributor)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEmpty(t, cache.views())

	extra := &model.Product{
		BaseModel: model.BaseModel{ID: "e"}, OriginID: "e", Name: "Potato",
		Quantity: decimal.NewFromInt(9), Status: lifecycle.StatusHarvested, OwnerID: "f1", FarmerID: "f1", Version: 1,
	}
	require.NoError(t, store.Products().Create(ctx, extra))

	got, err = uc.ProductsAvailableTo(ctx, lifecycle.RoleDistributor)
	require.NoError(t, err)
	assert.Len(t, got, 2, "served from cache")

	uc.ProductsChanged(ctx, extra)
	assert.Empty(t, cache.views())

	got, err = uc.ProductsAvailableTo(ctx, lifecycle.RoleDistributor)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "e"}, ids(got))
}

// pausingRepo holds the first FindAll after it has read the rows.
type pausingRepo struct {
	product.Repository
	once   sync.Once
	paused chan struct{}
	resume chan struct{}
}

func (r *pausingRepo) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	items, total, err := r.Repository.FindAll(ctx, f)
	r.once.Do(func() {
		close(r.paused)
		<-r.resume
	})
	return items, total, err
}

func TestViewCacheIgnoresReadThatRacedAWrite(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store)
	cache := newMapCache()
	repo := &pausingRepo{Repository: store.Products(), paused: make(chan struct{}), resume: make(chan struct{})}
	uc := NewProductUseCase(repo, store.Stakeholders(), cache, nil, logger.NewNopLogger())

	stale := make(chan []model.Product, 1)
	go func() {
		got, err := uc.ProductsAvailableTo(ctx, lifecycle.RoleDistributor)
		assert.NoError(t, err)
		stale <- got
	}()
	<-repo.paused

	// "d" is handed on in full while the reader holds its rows
	d, err := store.Products().FindByID(ctx, "d")
	require.NoError(t, err)
	source := *d
	source.Quantity = decimal.Zero
	require.NoError(t, store.Transfers().Execute(ctx, &transferDto.TransferPlan{
		Source: &source, SourceVersion: d.Version,
		Record: &model.Transfer{ID: "t-1", ProductID: "d", SyncStatus: model.SyncSkipped},
	}))
	uc.ProductsChanged(ctx, &source)

	close(repo.resume)
	assert.Equal(t, []string{"a", "d"}, ids(<-stale))

	got, err := uc.ProductsAvailableTo(ctx, lifecycle.RoleDistributor)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestIndexingContinuesWhenIndexSetupFails(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store)
	core, logs := observer.New(zapcore.WarnLevel)
	idx := &stubIndex{createErr: errors.New("cluster read-only")}
	uc := NewProductUseCase(store.Products(), store.Stakeholders(), nil, idx, logger.Wrap(zap.New(core)))

	p, err := store.Products().FindByID(ctx, "a")
	require.NoError(t, err)
	uc.ProductsChanged(ctx, p)

	assert.Eventually(t, func() bool { return len(idx.indexedIDs()) == 1 }, time.Second, 5*time.Millisecond)
	warnings := logs.FilterMessage("failed to ensure product index").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "cluster read-only", warnings[0].ContextMap()["error"])
}
