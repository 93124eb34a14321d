package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/product"
	"github.com/fekuna/agritrace-service/internal/product/dto"
	"github.com/fekuna/agritrace-service/internal/query"
	"github.com/fekuna/agritrace-service/internal/stakeholder"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	indexName    = "products"
	viewCacheTTL = time.Minute
	viewPrefix   = "products:view:"
	// viewGeneration is bumped on every committed write. Views are keyed by it.
	viewGeneration = "products:view-generation"
	maxIndexHits   = 1000
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"name":          { "type": "keyword" },
			"variety":       { "type": "keyword" },
			"farm_location": { "type": "keyword" },
			"farmer_name":   { "type": "keyword" },
			"owner_id":      { "type": "keyword" },
			"status":        { "type": "keyword" },
			"quantity":      { "type": "double" },
			"created_at":    { "type": "date" }
		}
	}
}`

type productUseCase struct {
	repo         product.Repository
	stakeholders stakeholder.Repository
	cache        product.Cache
	es           product.SearchIndex
	logger       logger.ZapLogger
}

// NewProductUseCase wires the catalogue. cache and es may be nil.
func NewProductUseCase(repo product.Repository, stakeholders stakeholder.Repository, cache product.Cache, es product.SearchIndex, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:         repo,
		stakeholders: stakeholders,
		cache:        cache,
		es:           es,
		logger:       log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	farmer, err := uc.stakeholders.FindByID(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, apperr.New(apperr.KindNotFound, "stakeholder %s not found", input.FarmerID)
	}
	if farmer.Role != lifecycle.RoleFarmer {
		return nil, apperr.New(apperr.KindForbidden, "only farmers can create products")
	}
	if !farmer.IsVerified {
		return nil, apperr.New(apperr.KindNotVerified, "farmer %s is not verified", farmer.ID)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "name is required")
	}
	if !input.Quantity.IsPositive() {
		return nil, apperr.New(apperr.KindInvalidQuantity, "quantity must be greater than zero")
	}
	if input.Price.IsNegative() {
		return nil, apperr.New(apperr.KindInvalidPrice, "price must not be negative")
	}

	grade := input.QualityGrade
	if grade == "" {
		grade = model.GradeStandard
	}
	if _, err := model.ParseQualityGrade(string(grade)); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "invalid quality grade")
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	p := &model.Product{
		BaseModel:    model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		OriginID:     id,
		Name:         strings.TrimSpace(input.Name),
		Variety:      strings.TrimSpace(input.Variety),
		FarmLocation: strings.TrimSpace(input.FarmLocation),
		Quantity:     input.Quantity,
		QualityGrade: grade,
		IsOrganic:    input.IsOrganic,
		Price:        input.Price,
		Status:       lifecycle.StatusHarvested,
		OwnerID:      farmer.ID,
		FarmerID:     farmer.ID,
		Version:      1,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("farmer_id", p.FarmerID),
		zap.String("quantity", p.Quantity.String()),
	)

	uc.ProductsChanged(ctx, p)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "product %s not found", id)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) ProductsAvailableTo(ctx context.Context, role lifecycle.Role) ([]model.Product, error) {
	if !role.Valid() {
		return nil, apperr.New(apperr.KindInvalidArgument, "unknown role %q", role)
	}
	st, ok := lifecycle.PurchasableStatus(role)
	if !ok {
		return []model.Product{}, nil
	}

	snapshot, err := uc.snapshot(ctx, "available:"+role.String(), &dto.ProductFilters{
		Statuses:   []lifecycle.Status{st},
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}
	return query.AvailableTo(snapshot, role), nil
}

func (uc *productUseCase) ProductsOwnedBy(ctx context.Context, stakeholderID string) ([]model.Product, error) {
	if stakeholderID == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "stakeholder id is required")
	}
	snapshot, err := uc.snapshot(ctx, "owner:"+stakeholderID, &dto.ProductFilters{OwnerID: stakeholderID})
	if err != nil {
		return nil, err
	}
	return query.OwnedBy(snapshot, stakeholderID), nil
}

func (uc *productUseCase) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	term = strings.TrimSpace(term)

	var snapshot []model.Product
	if term != "" && uc.es != nil {
		candidates, err := uc.searchIndex(ctx, term)
		if err != nil {
			uc.logger.Warn("index search failed, falling back to database", zap.Error(err))
		} else {
			snapshot = candidates
		}
	}

	if snapshot == nil {
		all, err := uc.snapshot(ctx, "all", &dto.ProductFilters{})
		if err != nil {
			return nil, err
		}
		snapshot = all
	}

	names, err := uc.farmerNames(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	return query.Search(snapshot, term, names), nil
}

// searchIndex narrows the snapshot through the index and reloads the hits from the
// database so the pure filter runs over committed rows in the usual order.
func (uc *productUseCase) searchIndex(ctx context.Context, term string) ([]model.Product, error) {
	pattern := "*" + escapeWildcard(strings.ToLower(term)) + "*"
	fields := []string{"name", "variety", "farm_location", "farmer_name"}

	should := make([]map[string]interface{}, 0, len(fields))
	for _, f := range fields {
		should = append(should, map[string]interface{}{
			"wildcard": map[string]interface{}{
				f: map[string]interface{}{"value": pattern, "case_insensitive": true},
			},
		})
	}

	res, err := uc.es.Search(ctx, indexName, map[string]interface{}{
		"query":   map[string]interface{}{"bool": map[string]interface{}{"should": should, "minimum_should_match": 1}},
		"size":    maxIndexHits,
		"_source": false,
	})
	if err != nil {
		return nil, err
	}
	if res.Hits.Total.Value > len(res.Hits.Hits) {
		return nil, fmt.Errorf("index returned %d of %d hits", len(res.Hits.Hits), res.Hits.Total.Value)
	}
	if len(res.Hits.Hits) == 0 {
		return []model.Product{}, nil
	}

	ids := make([]string, len(res.Hits.Hits))
	for i, hit := range res.Hits.Hits {
		ids[i] = hit.ID
	}
	products, _, err := uc.repo.FindAll(ctx, &dto.ProductFilters{IDs: ids})
	return products, err
}

func escapeWildcard(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
	return r.Replace(s)
}

// snapshot reads a committed view through the cache. The generation is read before the
// database, so a reader that races a write can only fill a key nobody reads anymore.
func (uc *productUseCase) snapshot(ctx context.Context, view string, filters *dto.ProductFilters) ([]model.Product, error) {
	cacheKey, cached := uc.viewKey(ctx, view)
	if cached {
		val, ok, err := uc.cache.GetString(ctx, cacheKey)
		if err != nil {
			uc.logger.Warn("view cache read failed", zap.String("key", cacheKey), zap.Error(err))
		} else if ok {
			var products []model.Product
			if err := json.Unmarshal([]byte(val), &products); err == nil {
				return products, nil
			}
		}
	}

	products, _, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}

	if cached {
		if data, err := json.Marshal(products); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, data, viewCacheTTL); err != nil {
				uc.logger.Warn("view cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	return products, nil
}

// viewKey returns the cache key of view under the current generation. It reports false
// when the cache is off or the generation cannot be read.
func (uc *productUseCase) viewKey(ctx context.Context, view string) (string, bool) {
	if uc.cache == nil {
		return "", false
	}
	gen, ok, err := uc.cache.GetString(ctx, viewGeneration)
	if err != nil {
		uc.logger.Warn("view generation read failed", zap.Error(err))
		return "", false
	}
	if !ok {
		gen = "0"
	}
	return viewPrefix + gen + ":" + view, true
}

func (uc *productUseCase) farmerNames(ctx context.Context, products []model.Product) (map[string]string, error) {
	seen := map[string]bool{}
	ids := []string{}
	for _, p := range products {
		if !seen[p.FarmerID] {
			seen[p.FarmerID] = true
			ids = append(ids, p.FarmerID)
		}
	}

	farmers, err := uc.stakeholders.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(farmers))
	for _, f := range farmers {
		names[f.ID] = f.Name
	}
	return names, nil
}

func (uc *productUseCase) ProductsChanged(ctx context.Context, products ...*model.Product) {
	// the write is already committed; detach from the request
	ctx = context.WithoutCancel(ctx)

	if uc.cache != nil {
		if _, err := uc.cache.Incr(ctx, viewGeneration); err != nil {
			uc.logger.Warn("view generation bump failed", zap.Error(err))
		}
		// drop views of older generations
		if err := uc.cache.DeletePattern(ctx, viewPrefix+"*"); err != nil {
			uc.logger.Warn("view cache invalidation failed", zap.Error(err))
		}
	}

	if uc.es != nil && len(products) > 0 {
		go uc.syncToElastic(ctx, products)
	}
}

type productDocument struct {
	Name         string          `json:"name"`
	Variety      string          `json:"variety"`
	FarmLocation string          `json:"farm_location"`
	FarmerName   string          `json:"farmer_name"`
	OwnerID      string          `json:"owner_id"`
	Status       string          `json:"status"`
	Quantity     decimal.Decimal `json:"quantity"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (uc *productUseCase) syncToElastic(ctx context.Context, products []*model.Product) {
	if err := uc.es.CreateIndex(ctx, indexName, indexMapping); err != nil {
		uc.logger.Warn("failed to ensure product index", zap.String("index", indexName), zap.Error(err))
	}

	list := make([]model.Product, len(products))
	for i, p := range products {
		list[i] = *p
	}
	names, err := uc.farmerNames(ctx, list)
	if err != nil {
		uc.logger.Error("failed to load farmer names for indexing", zap.Error(err))
		return
	}

	for _, p := range products {
		doc := productDocument{
			Name:         p.Name,
			Variety:      p.Variety,
			FarmLocation: p.FarmLocation,
			FarmerName:   names[p.FarmerID],
			OwnerID:      p.OwnerID,
			Status:       p.Status.String(),
			Quantity:     p.Quantity,
			CreatedAt:    p.CreatedAt,
		}
		if err := uc.es.Index(ctx, indexName, p.ID, doc); err != nil {
			uc.logger.Error("failed to index product", zap.String("product_id", p.ID), zap.Error(err))
		}
	}
}
