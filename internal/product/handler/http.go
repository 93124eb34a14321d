package handler

import (
	"net/http"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/response"
	"github.com/labstack/echo/v4"
)

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/products", h.httpCreate)
	g.GET("/products", h.httpList)
	g.GET("/products/available", h.httpAvailable)
	g.GET("/products/owned", h.httpOwned)
	g.GET("/products/search", h.httpSearch)
	g.GET("/products/:id", h.httpGet)
}

func (h *ProductHandler) httpCreate(c echo.Context) error {
	var req agritracev1.CreateProductRequest
	if err := response.Bind(c, &req); err != nil {
		return response.Error(c, err)
	}
	res, err := h.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusCreated, res)
}

func (h *ProductHandler) httpGet(c echo.Context) error {
	res, err := h.GetProduct(c.Request().Context(), &agritracev1.GetProductRequest{Id: c.Param("id")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *ProductHandler) httpList(c echo.Context) error {
	var req agritracev1.ListProductsRequest
	err := echo.QueryParamsBinder(c).
		String("owner_id", &req.OwnerId).
		String("farmer_id", &req.FarmerId).
		Strings("status", &req.Statuses).
		Bool("active_only", &req.ActiveOnly).
		Int32("page", &req.Page).
		Int32("page_size", &req.PageSize).
		BindError()
	if err != nil {
		return response.Error(c, apperr.Wrap(apperr.KindInvalidArgument, err, "invalid query"))
	}
	res, err := h.ListProducts(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *ProductHandler) httpAvailable(c echo.Context) error {
	res, err := h.ProductsAvailableTo(c.Request().Context(), &agritracev1.ProductsAvailableToRequest{Role: c.QueryParam("role")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *ProductHandler) httpOwned(c echo.Context) error {
	res, err := h.ProductsOwnedBy(c.Request().Context(), &agritracev1.ProductsOwnedByRequest{StakeholderId: c.QueryParam("stakeholder_id")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *ProductHandler) httpSearch(c echo.Context) error {
	res, err := h.SearchProducts(c.Request().Context(), &agritracev1.SearchProductsRequest{Term: c.QueryParam("q")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}
