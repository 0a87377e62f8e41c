package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arihant/internal/domain"
)

func TestOrders_PlaceListUpdate(t *testing.T) {
	app, store := newApp(t, testConfig())
	wheel := seedProduct(t, store, "Alloy Wheel", 10)

	code, body := do(t, app, http.MethodPost, "/api/orders", orderBody(wheel, "Alloy Wheel", 2), "")
	require.Equal(t, http.StatusOK, code, string(body))
	orderID := decode[string](t, body)
	require.Len(t, orderID, 24)

	id, err := domain.ParseID(wheel)
	require.NoError(t, err)
	p, err := store.Products().Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Stock)

	code, body = do(t, app, http.MethodGet, "/api/orders", nil, testAdminKey)
	require.Equal(t, http.StatusOK, code)
	ords := decode[[]map[string]any](t, body)
	require.Len(t, ords, 1)
	assert.Equal(t, orderID, ords[0]["id"])
	assert.Equal(t, "pending", ords[0]["status"])
	assert.Contains(t, ords[0], "created_at")

	code, body = do(t, app, http.MethodPatch, "/api/orders/"+orderID+"/status", map[string]string{"status": "shipped"}, testAdminKey)
	require.Equal(t, http.StatusOK, code, string(body))
	assert.Equal(t, map[string]string{"id": orderID, "status": "shipped"}, decode[map[string]string](t, body))

	code, body = do(t, app, http.MethodPatch, "/api/orders/"+orderID+"/status", map[string]string{"status": "lost"}, testAdminKey)
	assert.Equal(t, http.StatusUnprocessableEntity, code, string(body))
}

func TestOrders_Rejections(t *testing.T) {
	app, store := newApp(t, testConfig())
	cover := seedProduct(t, store, "Seat Cover", 1)

	code, body := do(t, app, http.MethodPost, "/api/orders", orderBody(cover, "Seat Cover", 3), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Insufficient stock for Seat Cover", detailOf(t, body))

	missing := "65f1a2b3c4d5e6f708192a3b"
	code, body = do(t, app, http.MethodPost, "/api/orders", orderBody(missing, "Ghost", 1), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Product not found: "+missing, detailOf(t, body))

	code, body = do(t, app, http.MethodPost, "/api/orders", orderBody("bogus", "Ghost", 1), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid product id in order", detailOf(t, body))

	bad := orderBody(cover, "Seat Cover", 1)
	bad["customer"].(map[string]any)["email"] = "nope"
	code, body = do(t, app, http.MethodPost, "/api/orders", bad, "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "customer.email: value is not a valid email address", detailOf(t, body))

	empty := orderBody(cover, "Seat Cover", 1)
	empty["items"] = []any{}
	code, _ = do(t, app, http.MethodPost, "/api/orders", empty, "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, body = do(t, app, http.MethodGet, "/api/orders?limit=-2", nil, testAdminKey)
	assert.Equal(t, http.StatusUnprocessableEntity, code, string(body))

	code, body = do(t, app, http.MethodPatch, "/api/orders/"+missing+"/status", map[string]string{"status": "shipped"}, testAdminKey)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Order not found", detailOf(t, body))
}
