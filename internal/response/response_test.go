package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	agritracev1 "github.com/fekuna/agritrace-service/api/agritracev1"
	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorUsesKind(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, Error(c, apperr.New(apperr.KindInvalidQuantity, "quantity 120 exceeds 100")))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperr.KindInvalidQuantity, body.Kind)
	assert.Equal(t, "quantity 120 exceeds 100", body.Error)
}

func TestErrorHidesInternals(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Error(c, errors.New("dial tcp 10.0.0.5:5432: refused")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestBindMalformed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var v agritracev1.LoginRequest
	err := Bind(c, &v)
	assert.ErrorIs(t, err, apperr.InvalidArgument)
}

func TestBindAcceptsProtoAndJSONNames(t *testing.T) {
	e := echo.New()
	for _, body := range []string{
		`{"product_id":"p-1","quantity":"40.5","unknown":true}`,
		`{"productId":"p-1","quantity":"40.5"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c := e.NewContext(req, httptest.NewRecorder())

		var v agritracev1.TransferRequest
		require.NoError(t, Bind(c, &v))
		assert.Equal(t, "p-1", v.GetProductId())
		assert.Equal(t, "40.5", v.GetQuantity())
	}

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	var empty agritracev1.MarkSoldRequest
	assert.NoError(t, Bind(c, &empty))
}

func TestProtoWritesFieldNames(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Proto(c, http.StatusCreated, &agritracev1.Transfer{Id: "t-1", Quantity: "40"}))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "t-1", body["id"])
	assert.Equal(t, "40", body["quantity"])
	assert.Contains(t, body, "confirmation_id", "unset fields are written")
}
