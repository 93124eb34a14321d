package handler

import (
	"context"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/auth"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/product"
	"github.com/fekuna/agritrace-service/internal/product/dto"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type ProductHandler struct {
	agritracev1.UnimplementedProductServiceServer

	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

// CreateProduct registers a harvested batch owned by the calling farmer.
func (h *ProductHandler) CreateProduct(ctx context.Context, req *agritracev1.CreateProductRequest) (*agritracev1.Product, error) {
	caller, err := auth.RequireStakeholder(ctx)
	if err != nil {
		return nil, err
	}

	grade, err := model.ParseQualityGrade(req.QualityGrade)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "unknown quality grade %q", req.QualityGrade)
	}

	quantity, err := parseDecimal("quantity", req.Quantity, apperr.KindInvalidQuantity)
	if err != nil {
		return nil, err
	}
	price, err := parseDecimal("price", req.Price, apperr.KindInvalidPrice)
	if err != nil {
		return nil, err
	}

	p, err := h.uc.CreateProduct(ctx, &dto.CreateProductInput{
		FarmerID:     caller.StakeholderID,
		Name:         req.Name,
		Variety:      req.Variety,
		FarmLocation: req.FarmLocation,
		Quantity:     quantity,
		QualityGrade: grade,
		IsOrganic:    req.IsOrganic,
		Price:        price,
	})
	if err != nil {
		return nil, h.fail(err, "failed to create product", zap.String("farmer_id", caller.StakeholderID))
	}
	return mapProduct(p), nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *agritracev1.GetProductRequest) (*agritracev1.Product, error) {
	p, err := h.uc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, h.fail(err, "failed to get product", zap.String("product_id", req.Id))
	}
	return mapProduct(p), nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *agritracev1.ListProductsRequest) (*agritracev1.ProductList, error) {
	filters := &dto.ProductFilters{
		OwnerID:    req.OwnerId,
		FarmerID:   req.FarmerId,
		ActiveOnly: req.ActiveOnly,
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	}
	for _, s := range req.Statuses {
		st, err := lifecycle.ParseStatus(s)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "unknown status %q", s)
		}
		filters.Statuses = append(filters.Statuses, st)
	}

	items, total, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		return nil, h.fail(err, "failed to list products")
	}
	return &agritracev1.ProductList{Products: mapProducts(items), Total: int32(total)}, nil
}

// ProductsAvailableTo defaults to the caller's role.
func (h *ProductHandler) ProductsAvailableTo(ctx context.Context, req *agritracev1.ProductsAvailableToRequest) (*agritracev1.ProductList, error) {
	var role lifecycle.Role
	if req.Role != "" {
		r, err := lifecycle.ParseRole(req.Role)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "unknown role %q", req.Role)
		}
		role = r
	} else {
		caller, err := auth.RequireStakeholder(ctx)
		if err != nil {
			return nil, err
		}
		role = caller.Role
	}

	items, err := h.uc.ProductsAvailableTo(ctx, role)
	if err != nil {
		return nil, h.fail(err, "failed to load available products", zap.String("role", role.String()))
	}
	return &agritracev1.ProductList{Products: mapProducts(items), Total: int32(len(items))}, nil
}

// ProductsOwnedBy defaults to the caller.
func (h *ProductHandler) ProductsOwnedBy(ctx context.Context, req *agritracev1.ProductsOwnedByRequest) (*agritracev1.ProductList, error) {
	owner := req.StakeholderId
	if owner == "" {
		caller, err := auth.RequireStakeholder(ctx)
		if err != nil {
			return nil, err
		}
		owner = caller.StakeholderID
	}

	items, err := h.uc.ProductsOwnedBy(ctx, owner)
	if err != nil {
		return nil, h.fail(err, "failed to load owned products", zap.String("stakeholder_id", owner))
	}
	return &agritracev1.ProductList{Products: mapProducts(items), Total: int32(len(items))}, nil
}

func (h *ProductHandler) SearchProducts(ctx context.Context, req *agritracev1.SearchProductsRequest) (*agritracev1.ProductList, error) {
	items, err := h.uc.SearchProducts(ctx, req.Term)
	if err != nil {
		return nil, h.fail(err, "failed to search products")
	}
	return &agritracev1.ProductList{Products: mapProducts(items), Total: int32(len(items))}, nil
}

// parseDecimal reads a decimal string field. Empty means zero.
func parseDecimal(field, v string, kind apperr.Kind) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, apperr.Wrap(kind, err, "%s %q is not a decimal", field, v)
	}
	return d, nil
}

func (h *ProductHandler) fail(err error, msg string, fields ...zap.Field) error {
	if apperr.KindOf(err) != apperr.KindInternal {
		return err
	}
	h.logger.Error(msg, append(fields, zap.Error(err))...)
	return apperr.Wrap(apperr.KindInternal, err, "internal error")
}

func mapProduct(p *model.Product) *agritracev1.Product {
	return &agritracev1.Product{
		Id:           p.ID,
		OriginId:     p.OriginID,
		ParentId:     deref(p.ParentID),
		Name:         p.Name,
		Variety:      p.Variety,
		FarmLocation: p.FarmLocation,
		Quantity:     p.Quantity.String(),
		QualityGrade: string(p.QualityGrade),
		IsOrganic:    p.IsOrganic,
		Price:        p.Price.String(),
		Status:       p.Status.String(),
		OwnerId:      p.OwnerID,
		FarmerId:     p.FarmerID,
		BlockchainId: deref(p.BlockchainID),
		CreatedAt:    timestamppb.New(p.CreatedAt),
		UpdatedAt:    timestamppb.New(p.UpdatedAt),
	}
}

func mapProducts(items []model.Product) []*agritracev1.Product {
	out := make([]*agritracev1.Product, 0, len(items))
	for i := range items {
		out = append(out, mapProduct(&items[i]))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
