// Package server assembles the grpc and http front ends over the domain handlers.
package server

import (
	"net/http"
	"strings"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/auth"
	productH "github.com/fekuna/agritrace-service/internal/product/handler"
	stakeholderH "github.com/fekuna/agritrace-service/internal/stakeholder/handler"
	transferH "github.com/fekuna/agritrace-service/internal/transfer/handler"
	"github.com/fekuna/agritrace-service/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	ServiceName = "agritrace-service"
	APIPrefix   = "/api/v1"
)

type Handlers struct {
	Stakeholders *stakeholderH.StakeholderHandler
	Products     *productH.ProductHandler
	Transfers    *transferH.TransferHandler
}

type Auth struct {
	Tokens   *auth.TokenManager
	AdminKey string
}

// NewGRPCServer registers every service behind the auth interceptor. The returned health
// server starts out SERVING.
func NewGRPCServer(a Auth, h Handlers, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	authn := auth.NewAuthenticator(a.Tokens, a.AdminKey, stakeholderH.PublicMethods...)

	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(authn.UnaryInterceptor())}, opts...)
	srv := grpc.NewServer(opts...)

	agritracev1.RegisterStakeholderServiceServer(srv, h.Stakeholders)
	agritracev1.RegisterProductServiceServer(srv, h.Products)
	agritracev1.RegisterTransferServiceServer(srv, h.Transfers)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	for _, name := range []string{
		agritracev1.StakeholderService_ServiceDesc.ServiceName,
		agritracev1.ProductService_ServiceDesc.ServiceName,
		agritracev1.TransferService_ServiceDesc.ServiceName,
	} {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)
	return srv, hs
}

// NewHTTPServer mounts the REST routes under APIPrefix next to /healthz and /metrics.
func NewHTTPServer(a Auth, h Handlers) *echo.Echo {
	public := make([]string, 0, len(stakeholderH.PublicRoutes))
	for _, r := range stakeholderH.PublicRoutes {
		method, path, _ := strings.Cut(r, " ")
		public = append(public, method+" "+APIPrefix+path)
	}
	authn := auth.NewAuthenticator(a.Tokens, a.AdminKey, public...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(metrics.HTTPMiddleware(ServiceName))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group(APIPrefix, authn.EchoMiddleware())
	h.Stakeholders.RegisterRoutes(api)
	h.Products.RegisterRoutes(api)
	h.Transfers.RegisterRoutes(api)
	return e
}
