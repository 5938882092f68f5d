package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/generated/servers"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	require.NoError(t, Register(e, NewServer(Handlers{}, slog.New(slog.DiscardHandler))))
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"malformed body", &malformedRequestError{cause: errors.New("eof")}, http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"insufficient stock", inventory.NewInsufficientStockError(nil), http.StatusConflict},
		{"invalid state", order.ErrInvalidState, http.StatusConflict},
		{"referenced", errs.NewObjectIsReferencedError("dealer", "x"), http.StatusConflict},
		{"conflict", errs.NewConcurrencyConflictError("confirm", errors.New("55P03")), http.StatusConflict},
		{"empty order", order.ErrEmptyOrder, http.StatusUnprocessableEntity},
		{"quantity", &order.InvalidQuantityError{Quantity: 0}, http.StatusUnprocessableEntity},
		{"invalid value", errs.NewValueIsInvalidError("email"), http.StatusUnprocessableEntity},
		{"timeout", errs.NewTimeoutError("confirm", errors.New("deadline")), http.StatusServiceUnavailable},
		{"storage", errs.NewStorageError("confirm", errors.New("down")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestFail_InsufficientStock_ListsEveryShortfall(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	server := NewServer(Handlers{}, slog.New(slog.DiscardHandler))

	a, b := kernel.NewUUID(), kernel.NewUUID()
	err := inventory.NewInsufficientStockError([]inventory.Shortfall{
		{ProductID: a, Available: 2, Requested: 5},
		{ProductID: b, Available: 0, Requested: 1},
	})

	require.NoError(t, server.fail(ctx, err))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Shortfalls)
	require.Len(t, *body.Shortfalls, 2)
	assert.Equal(t, a.Bytes(), (*body.Shortfalls)[0].ProductId)
	assert.Equal(t, 5, (*body.Shortfalls)[0].Requested)
	assert.Equal(t, 2, (*body.Shortfalls)[0].Available)
}

func TestFail_HidesInternalErrors(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	server := NewServer(Handlers{}, slog.New(slog.DiscardHandler))

	require.NoError(t, server.fail(ctx, errors.New("pq: secret detail")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRoutes_Health(t *testing.T) {
	rec := serve(newTestEcho(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRoutes_SwaggerDocument(t *testing.T) {
	rec := serve(newTestEcho(t), http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/orders/{orderId}/confirm")
}

func TestRoutes_RejectBeforeReachingHandlers(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"malformed json", http.MethodPost, "/api/v1/orders", `{"dealerId":`, http.StatusBadRequest},
		{"missing dealer", http.MethodPost, "/api/v1/orders", `{}`, http.StatusUnprocessableEntity},
		{"bad path uuid", http.MethodGet, "/api/v1/orders/not-a-uuid", "", http.StatusBadRequest},
		{"zero quantity", http.MethodPost, "/api/v1/orders/" + kernel.NewUUID().String() + "/items",
			`{"productId":"` + kernel.NewUUID().String() + `","quantity":0}`, http.StatusUnprocessableEntity},
		{"limit too large", http.MethodGet, "/api/v1/orders?limit=1000", "", http.StatusUnprocessableEntity},
		{"unknown status", http.MethodGet, "/api/v1/orders?status=shipped", "", http.StatusUnprocessableEntity},
		{"bad price", http.MethodPost, "/api/v1/products",
			`{"sku":"A","name":"A","price":"abc","initialStock":1}`, http.StatusUnprocessableEntity},
		{"bad email", http.MethodPost, "/api/v1/dealers", `{"name":"A","email":"nope"}`, http.StatusBadRequest},
		{"delete order bad uuid", http.MethodDelete, "/api/v1/orders/nope", "", http.StatusBadRequest},
		{"update dealer bad uuid", http.MethodPut, "/api/v1/dealers/nope", `{"name":"A","email":"a@example.com"}`,
			http.StatusBadRequest},
		{"update dealer without name", http.MethodPut, "/api/v1/dealers/" + kernel.NewUUID().String(),
			`{"email":"a@example.com"}`, http.StatusUnprocessableEntity},
		{"products limit too large", http.MethodGet, "/api/v1/products?limit=201", "", http.StatusUnprocessableEntity},
		{"dealers negative offset", http.MethodGet, "/api/v1/dealers?offset=-1", "", http.StatusUnprocessableEntity},
		{"inventory limit not a number", http.MethodGet, "/api/v1/inventory?limit=ten", "", http.StatusBadRequest},
	}

	e := newTestEcho(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
