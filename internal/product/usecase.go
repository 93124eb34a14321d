package product

import (
	"context"
	"time"

	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/product/dto"
	"github.com/fekuna/agritrace-service/pkg/search"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)

	// Dashboard views
	ProductsAvailableTo(ctx context.Context, role lifecycle.Role) ([]model.Product, error)
	ProductsOwnedBy(ctx context.Context, stakeholderID string) ([]model.Product, error)
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)

	// ProductsChanged refreshes caches and the search index after a committed write.
	ProductsChanged(ctx context.Context, products ...*model.Product)
}

// Cache is the view cache. *cache.RedisClient implements it.
type Cache interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	DeletePattern(ctx context.Context, pattern string) error
}

// SearchIndex is the product search index. *search.Client implements it.
type SearchIndex interface {
	CreateIndex(ctx context.Context, index, mapping string) error
	Index(ctx context.Context, index, id string, doc interface{}) error
	Search(ctx context.Context, index string, query map[string]interface{}) (*search.SearchResponse, error)
	Delete(ctx context.Context, index, id string) error
}
