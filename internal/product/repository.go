package product

import (
	"context"

	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	// FindByID returns nil, nil when the product does not exist.
	FindByID(ctx context.Context, id string) (*model.Product, error)
	// FindAll returns committed rows ordered by created_at, id.
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
}
