package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/auth"
	"github.com/fekuna/agritrace-service/internal/memstore"
	productH "github.com/fekuna/agritrace-service/internal/product/handler"
	productUC "github.com/fekuna/agritrace-service/internal/product/usecase"
	stakeholderH "github.com/fekuna/agritrace-service/internal/stakeholder/handler"
	stakeholderUC "github.com/fekuna/agritrace-service/internal/stakeholder/usecase"
	transferH "github.com/fekuna/agritrace-service/internal/transfer/handler"
	transferUC "github.com/fekuna/agritrace-service/internal/transfer/usecase"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
)

const adminKey = "test-admin-key"

func newHandlers(t *testing.T) (Handlers, Auth) {
	t.Helper()
	log := logger.NewNopLogger()
	store := memstore.New()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	stakeholders := stakeholderUC.NewStakeholderUseCase(store.Stakeholders(), auth.Argon2{}, tokens, log)
	products := productUC.NewProductUseCase(store.Products(), store.Stakeholders(), nil, nil, log)
	transfers := transferUC.NewTransferUseCase(
		store.Transfers(),
		store.Products(),
		store.Stakeholders(),
		auth.Argon2{},
		memstore.NewLocker(),
		nil,
		products,
		log,
		transferUC.Options{},
	)

	return Handlers{
		Stakeholders: stakeholderH.NewStakeholderHandler(stakeholders, log),
		Products:     productH.NewProductHandler(products, log),
		Transfers:    transferH.NewTransferHandler(transfers, log),
	}, Auth{Tokens: tokens, AdminKey: adminKey}
}

type grpcClients struct {
	conn         *grpc.ClientConn
	stakeholders agritracev1.StakeholderServiceClient
	products     agritracev1.ProductServiceClient
	transfers    agritracev1.TransferServiceClient
}

func startGRPC(t *testing.T) *grpcClients {
	t.Helper()
	h, a := newHandlers(t)
	srv, _ := NewGRPCServer(a, h)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &grpcClients{
		conn:         conn,
		stakeholders: agritracev1.NewStakeholderServiceClient(conn),
		products:     agritracev1.NewProductServiceClient(conn),
		transfers:    agritracev1.NewTransferServiceClient(conn),
	}
}

func asAdmin(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "x-admin-key", adminKey)
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

// onboard registers, verifies and logs in a stakeholder, returning its id and token.
func (c *grpcClients) onboard(t *testing.T, name, role, credential string) (string, string) {
	t.Helper()
	ctx := context.Background()

	s, err := c.stakeholders.Register(ctx, &agritracev1.RegisterRequest{Name: name, Role: role, Credential: credential})
	require.NoError(t, err)
	assert.False(t, s.IsVerified)

	v, err := c.stakeholders.VerifyStakeholder(asAdmin(ctx), &agritracev1.VerifyStakeholderRequest{Id: s.Id})
	require.NoError(t, err)
	require.True(t, v.IsVerified)

	session, err := c.stakeholders.Login(ctx, &agritracev1.LoginRequest{StakeholderId: s.Id, Credential: credential})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	return s.Id, session.Token
}

func TestGRPCCustodyFlow(t *testing.T) {
	c := startGRPC(t)
	ctx := context.Background()

	farmerID, farmerToken := c.onboard(t, "Asha Patil", "farmer", "farmer-secret")
	distributorID, distributorToken := c.onboard(t, "Pune Fresh", "distributor", "distributor-secret")

	p, err := c.products.CreateProduct(withToken(ctx, farmerToken), &agritracev1.CreateProductRequest{
		Name:         "Tomato",
		Variety:      "Roma",
		FarmLocation: "Nashik",
		Quantity:     "100",
		QualityGrade: "grade_a",
		Price:        "50",
	})
	require.NoError(t, err)
	assert.Equal(t, farmerID, p.OwnerId)
	assert.Equal(t, "harvested", p.Status)

	rec, err := c.transfers.Transfer(withToken(ctx, farmerToken), &agritracev1.TransferRequest{
		ProductId:       p.Id,
		ToStakeholderId: distributorID,
		Quantity:        "40",
		Price:           "55",
		Location:        "Pune",
		CredentialProof: "farmer-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "at_distributor", rec.StatusAfter)
	assert.Equal(t, "transfer", rec.TxType)
	assert.Equal(t, "skipped", rec.SyncStatus)
	assert.Equal(t, "40", rec.Quantity)
	assert.Equal(t, "55", rec.Price)
	require.NotEmpty(t, rec.DestinationProductId)
	assert.Empty(t, rec.ConfirmationId)
	assert.True(t, rec.Timestamp.IsValid())

	src, err := c.products.GetProduct(withToken(ctx, farmerToken), &agritracev1.GetProductRequest{Id: p.Id})
	require.NoError(t, err)
	assert.Equal(t, "60", src.Quantity)
	assert.Equal(t, "50", src.Price)
	assert.Empty(t, src.ParentId)

	owned, err := c.products.ProductsOwnedBy(withToken(ctx, distributorToken), &agritracev1.ProductsOwnedByRequest{})
	require.NoError(t, err)
	require.Len(t, owned.Products, 1)
	assert.Equal(t, rec.DestinationProductId, owned.Products[0].Id)
	assert.Equal(t, p.Id, owned.Products[0].OriginId)
	assert.Equal(t, p.Id, owned.Products[0].ParentId)
	assert.Equal(t, "55", owned.Products[0].Price)
	assert.Equal(t, int32(1), owned.Total)

	history, err := c.transfers.ProductHistory(withToken(ctx, distributorToken), &agritracev1.ProductHistoryRequest{ProductId: owned.Products[0].Id})
	require.NoError(t, err)
	require.Len(t, history.Transfers, 1)
	assert.Equal(t, rec.Id, history.Transfers[0].Id)
}

func TestGRPCErrorCodes(t *testing.T) {
	c := startGRPC(t)
	ctx := context.Background()

	farmerID, farmerToken := c.onboard(t, "Asha Patil", "farmer", "farmer-secret")
	distributorID, _ := c.onboard(t, "Pune Fresh", "distributor", "distributor-secret")

	p, err := c.products.CreateProduct(withToken(ctx, farmerToken), &agritracev1.CreateProductRequest{
		Name:     "Onion",
		Quantity: "10",
		Price:    "20",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		ctx  context.Context
		req  *agritracev1.TransferRequest
		code codes.Code
	}{
		{
			name: "no credentials",
			ctx:  ctx,
			req:  &agritracev1.TransferRequest{ProductId: p.Id},
			code: codes.Unauthenticated,
		},
		{
			name: "unknown product",
			ctx:  withToken(ctx, farmerToken),
			req:  &agritracev1.TransferRequest{ProductId: "missing", ToStakeholderId: distributorID, Quantity: "1"},
			code: codes.NotFound,
		},
		{
			name: "zero quantity",
			ctx:  withToken(ctx, farmerToken),
			req:  &agritracev1.TransferRequest{ProductId: p.Id, ToStakeholderId: distributorID, CredentialProof: "farmer-secret"},
			code: codes.InvalidArgument,
		},
		{
			name: "quantity that is not a decimal",
			ctx:  withToken(ctx, farmerToken),
			req:  &agritracev1.TransferRequest{ProductId: p.Id, ToStakeholderId: distributorID, Quantity: "forty", CredentialProof: "farmer-secret"},
			code: codes.InvalidArgument,
		},
		{
			name: "price that is not a decimal",
			ctx:  withToken(ctx, farmerToken),
			req:  &agritracev1.TransferRequest{ProductId: p.Id, ToStakeholderId: distributorID, Quantity: "1", Price: "1,5", CredentialProof: "farmer-secret"},
			code: codes.InvalidArgument,
		},
		{
			name: "recipient of the wrong role",
			ctx:  withToken(ctx, farmerToken),
			req:  &agritracev1.TransferRequest{ProductId: p.Id, ToStakeholderId: farmerID, Quantity: "1"},
			code: codes.FailedPrecondition,
		},
		{
			name: "wrong credential proof",
			ctx:  withToken(ctx, farmerToken),
			req:  &agritracev1.TransferRequest{ProductId: p.Id, ToStakeholderId: distributorID, Quantity: "1", CredentialProof: "guess"},
			code: codes.Unauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.transfers.Transfer(tt.ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}

	t.Run("verify needs the admin key", func(t *testing.T) {
		_, err := c.stakeholders.VerifyStakeholder(withToken(ctx, farmerToken), &agritracev1.VerifyStakeholderRequest{Id: farmerID})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestGRPCHealth(t *testing.T) {
	c := startGRPC(t)

	res, err := healthpb.NewHealthClient(c.conn).Check(context.Background(), &healthpb.HealthCheckRequest{
		Service: agritracev1.TransferService_ServiceDesc.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, res.Status)
}

func TestGRPCUnverifiedStakeholderHasNoVerifiedAt(t *testing.T) {
	c := startGRPC(t)
	ctx := context.Background()

	// an unset verified_at must survive the wire as unset, not as the zero time
	s, err := c.stakeholders.Register(ctx, &agritracev1.RegisterRequest{Name: "Ravi Kumar", Role: "retailer", Credential: "retailer-secret"})
	require.NoError(t, err)
	assert.Nil(t, s.VerifiedAt)
	assert.True(t, s.CreatedAt.IsValid())
}

func doJSON(t *testing.T, e http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHTTPRoutes(t *testing.T) {
	h, a := newHandlers(t)
	e := NewHTTPServer(a, h)

	rec := doJSON(t, e, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, APIPrefix+"/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, e, http.MethodPost, APIPrefix+"/stakeholders",
		`{"name":"Asha Patil","role":"farmer","credential":"farmer-secret"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var farmer agritracev1.Stakeholder
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &farmer))

	rec = doJSON(t, e, http.MethodPost, APIPrefix+"/stakeholders/"+farmer.Id+"/verify", "", map[string]string{"X-Admin-Key": adminKey})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, e, http.MethodPost, APIPrefix+"/sessions",
		`{"stakeholder_id":"`+farmer.Id+`","credential":"farmer-secret"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session agritracev1.LoginResponse
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &session))
	bearer := map[string]string{"Authorization": "Bearer " + session.Token}

	rec = doJSON(t, e, http.MethodPost, APIPrefix+"/products",
		`{"name":"Grapes","farm_location":"Nashik","quantity":"25","price":"80"}`, bearer)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p agritracev1.Product
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &p))

	rec = doJSON(t, e, http.MethodGet, APIPrefix+"/products/search?q=nash", "", bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	var found agritracev1.ProductList
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found.Products, 1)
	assert.Equal(t, p.Id, found.Products[0].Id)
	assert.Equal(t, "25", found.Products[0].Quantity)

	rec = doJSON(t, e, http.MethodPost, APIPrefix+"/transfers",
		`{"product_id":"`+p.Id+`","to_stakeholder_id":"nobody","quantity":"5"}`, bearer)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Kind string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_recipient_role", body.Kind)

	rec = doJSON(t, e, http.MethodGet, APIPrefix+"/transfers?sync_status=bogus", "", bearer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
