package handler

import (
	"net/http"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/response"
	"github.com/labstack/echo/v4"
)

// PublicRoutes are reachable without a token, as "METHOD path" relative to the api prefix.
var PublicRoutes = []string{
	"POST /stakeholders",
	"POST /sessions",
}

// RegisterRoutes mounts the REST counterpart of the grpc service.
func (h *StakeholderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/stakeholders", h.httpRegister)
	g.POST("/sessions", h.httpLogin)
	g.GET("/stakeholders", h.httpList)
	g.GET("/stakeholders/:id", h.httpGet)
	g.POST("/stakeholders/:id/verify", h.httpVerify)
	g.GET("/me/transfer-targets", h.httpTransferTargets)
}

func (h *StakeholderHandler) httpRegister(c echo.Context) error {
	var req agritracev1.RegisterRequest
	if err := response.Bind(c, &req); err != nil {
		return response.Error(c, err)
	}
	res, err := h.Register(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusCreated, res)
}

func (h *StakeholderHandler) httpLogin(c echo.Context) error {
	var req agritracev1.LoginRequest
	if err := response.Bind(c, &req); err != nil {
		return response.Error(c, err)
	}
	res, err := h.Login(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *StakeholderHandler) httpList(c echo.Context) error {
	var req agritracev1.ListStakeholdersRequest
	err := echo.QueryParamsBinder(c).
		String("role", &req.Role).
		Bool("verified_only", &req.VerifiedOnly).
		Int32("page", &req.Page).
		Int32("page_size", &req.PageSize).
		BindError()
	if err != nil {
		return response.Error(c, apperr.Wrap(apperr.KindInvalidArgument, err, "invalid query"))
	}
	res, err := h.ListStakeholders(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *StakeholderHandler) httpGet(c echo.Context) error {
	res, err := h.GetStakeholder(c.Request().Context(), &agritracev1.GetStakeholderRequest{Id: c.Param("id")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *StakeholderHandler) httpVerify(c echo.Context) error {
	res, err := h.VerifyStakeholder(c.Request().Context(), &agritracev1.VerifyStakeholderRequest{Id: c.Param("id")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}

func (h *StakeholderHandler) httpTransferTargets(c echo.Context) error {
	res, err := h.ListTransferTargets(c.Request().Context(), &agritracev1.ListTransferTargetsRequest{})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Proto(c, http.StatusOK, res)
}
