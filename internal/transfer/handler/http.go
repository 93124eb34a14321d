package handler

import (
	"net/http"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/response"
	"github.com/labstack/echo/v4"
)

func (h *TransferHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/transfers", h.httpTransfer)
	g.GET("/transfers", h.httpList)
	g.GET("/transfers/:id", h.httpGet)
	g.POST("/products/:id/mark-sold", h.httpMarkSold)
	g.GET("/products/:id/history", h.httpHistory)
}

func (h *TransferHandler) httpTransfer(c echo.Context) error {
	var req agritracev1.TransferRequest
	if err := response.Bind(c, &req); err != nil {
		return response.Error(c, err)
	}
	res, err := h.Transfer(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusCreated, res)
}

func (h *TransferHandler) httpMarkSold(c echo.Context) error {
	var req agritracev1.MarkSoldRequest
	if err := response.Bind(c, &req); err != nil {
		return response.Error(c, err)
	}
	req.ProductId = c.Param("id")
	res, err := h.MarkSold(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusCreated, res)
}

func (h *TransferHandler) httpGet(c echo.Context) error {
	res, err := h.GetTransfer(c.Request().Context(), &agritracev1.GetTransferRequest{Id: c.Param("id")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *TransferHandler) httpHistory(c echo.Context) error {
	res, err := h.ProductHistory(c.Request().Context(), &agritracev1.ProductHistoryRequest{ProductId: c.Param("id")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *TransferHandler) httpList(c echo.Context) error {
	var req agritracev1.ListTransfersRequest
	err := echo.QueryParamsBinder(c).
		String("product_id", &req.ProductId).
		String("stakeholder_id", &req.StakeholderId).
		Strings("sync_status", &req.SyncStatuses).
		Int32("page", &req.Page).
		Int32("page_size", &req.PageSize).
		BindError()
	if err != nil {
		return response.Error(c, apperr.Wrap(apperr.KindInvalidArgument, err, "invalid query"))
	}
	res, err := h.ListTransfers(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}
