package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop())
}

func TestGetStockReadsLiveCount(t *testing.T) {
	catalog := NewCatalogClient(newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/p1", r.URL.Path)
		json.NewEncoder(w).Encode(Product{ID: "p1", CountInStock: 4})
	}))

	stock, err := catalog.GetStock(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, stock)
}

func TestListCategories(t *testing.T) {
	catalog := NewCatalogClient(newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/categories", r.URL.Path)
		json.NewEncoder(w).Encode([]string{"Shirts", "Pants"})
	}))

	cats, err := catalog.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Shirts", "Pants"}, cats)
}

func TestCreateOrderSendsBearerAndDecodesID(t *testing.T) {
	var gotAuth string
	var gotPayload OrderPayload
	orders := NewOrderClient(newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode("order-123")
	}))

	payload := OrderPayload{
		OrderItems:    []OrderItem{{Key: "A", Name: "Widget", Price: 20, Quantity: 1}},
		PaymentMethod: "Paypal",
		TotalPrice:    38,
	}
	id, err := orders.Create(context.Background(), payload, "tok")
	require.NoError(t, err)
	assert.Equal(t, "order-123", id)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, payload, gotPayload)
}

func TestCreateOrderAuthFailure(t *testing.T) {
	orders := NewOrderClient(newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Token is not valid"})
	}))

	_, err := orders.Create(context.Background(), OrderPayload{}, "bad")
	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, KindAuthRequired, ge.Kind)
	assert.Equal(t, "Token is not valid", ge.Message)
}

func TestPayOrderNotFound(t *testing.T) {
	orders := NewOrderClient(newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/orders/missing/pay", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Order not found"})
	}))

	err := orders.Pay(context.Background(), "missing", CaptureDetails{ID: "cap"}, "tok")
	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, KindNotFound, ge.Kind)
}

func TestLoginMapsRejectionToAuthInvalid(t *testing.T) {
	auth := NewAuthClient(newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))

	_, err := auth.Login(context.Background(), "jo@example.com", "wrong")
	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, KindAuthInvalid, ge.Kind)
	assert.Equal(t, "Invalid email or password", ge.Message)
}

func TestRegisterMapsRejectionToDuplicateEmail(t *testing.T) {
	auth := NewAuthClient(newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already exists"})
	}))

	_, err := auth.Register(context.Background(), "Jo", "jo@example.com", "pw")
	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, KindDuplicateEmail, ge.Kind)
}

func TestLoginDecodesUser(t *testing.T) {
	auth := NewAuthClient(newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"_id": "u1", "name": "Jo", "email": "jo@example.com",
			"isAdmin": true, "token": "tok",
		})
	}))

	u, err := auth.Login(context.Background(), "jo@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Jo", u.Name)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, "tok", u.Token)
}

func TestNetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	catalog := NewCatalogClient(NewClient(srv.URL, zap.NewNop()))

	_, err := catalog.GetStock(context.Background(), "p1")
	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, KindUnavailable, ge.Kind)
}

func TestMessageFallbacks(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "boom", Message(&Error{Kind: KindUnavailable, Message: "boom"}))
	assert.Equal(t, "plain error", Message(errors.New("plain error")))
}
