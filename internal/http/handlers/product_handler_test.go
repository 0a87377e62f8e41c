package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_CRUD(t *testing.T) {
	app, _ := newApp(t, testConfig())

	code, body := do(t, app, http.MethodPost, "/api/products", map[string]any{
		"title":    "Alloy Wheel",
		"price":    5000,
		"category": "Accessories",
		"stock":    10,
		"featured": true,
	}, testAdminKey)
	require.Equal(t, http.StatusOK, code, string(body))
	id := decode[string](t, body)
	require.Len(t, id, 24)

	code, body = do(t, app, http.MethodGet, "/api/products/"+id, nil, "")
	require.Equal(t, http.StatusOK, code)
	p := decode[map[string]any](t, body)
	assert.Equal(t, id, p["id"])
	assert.Equal(t, "Arihant", p["brand"])
	assert.Equal(t, []any{}, p["images"])
	assert.Equal(t, map[string]any{}, p["specifications"])
	assert.Nil(t, p["description"])
	assert.NotContains(t, p, "created_at")

	code, body = do(t, app, http.MethodPut, "/api/products/"+id, map[string]any{
		"title":    "Alloy Wheel 18",
		"price":    5400,
		"category": "Accessories",
		"stock":    6,
	}, testAdminKey)
	require.Equal(t, http.StatusOK, code, string(body))
	p = decode[map[string]any](t, body)
	assert.Equal(t, "Alloy Wheel 18", p["title"])
	assert.EqualValues(t, 6, p["stock"])
	assert.Equal(t, false, p["featured"])

	code, body = do(t, app, http.MethodDelete, "/api/products/"+id, nil, testAdminKey)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]bool{"deleted": true}, decode[map[string]bool](t, body))

	code, body = do(t, app, http.MethodGet, "/api/products/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product not found", detailOf(t, body))
}

func TestProducts_ListFilters(t *testing.T) {
	app, store := newApp(t, testConfig())
	seedProduct(t, store, "Alloy Wheel", 10)
	seedProduct(t, store, "Seat Cover", 2)
	seedProduct(t, store, "Wheel Cap", 0)

	titles := func(path string) []string {
		code, body := do(t, app, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, code, string(body))
		out := []string{}
		for _, p := range decode[[]map[string]any](t, body) {
			out = append(out, p["title"].(string))
		}
		return out
	}

	assert.Equal(t, []string{"Alloy Wheel", "Seat Cover", "Wheel Cap"}, titles("/api/products"))
	assert.Equal(t, []string{"Alloy Wheel", "Wheel Cap"}, titles("/api/products?q=wheel"))
	assert.Equal(t, []string{"Alloy Wheel"}, titles("/api/products?limit=1"))
	assert.Len(t, titles("/api/products?limit=0"), 3)
	assert.Empty(t, titles("/api/products?featured=true"))
	assert.Empty(t, titles("/api/products?category=Sedan"))
}

func TestProducts_BadInput(t *testing.T) {
	app, _ := newApp(t, testConfig())

	cases := []struct {
		method, path string
		body         any
		code         int
		detail       string
	}{
		{http.MethodGet, "/api/products/123", nil, http.StatusBadRequest, "Invalid product id"},
		{http.MethodGet, "/api/products/65f1a2b3c4d5e6f708192a3b", nil, http.StatusNotFound, "Product not found"},
		{http.MethodGet, "/api/products?limit=-1", nil, http.StatusUnprocessableEntity, "limit: must be a non-negative integer"},
		{http.MethodGet, "/api/products?featured=maybe", nil, http.StatusUnprocessableEntity, "featured: value could not be parsed to a boolean"},
		{http.MethodPost, "/api/products", map[string]any{"title": "X", "category": "Y"}, http.StatusUnprocessableEntity, "price: field required"},
		{http.MethodPost, "/api/products", map[string]any{"title": "X", "category": "Y", "price": -1}, http.StatusUnprocessableEntity, "price: must be a non-negative number"},
		{http.MethodPost, "/api/products", `{"title":`, http.StatusUnprocessableEntity, "body: invalid JSON"},
		{http.MethodPut, "/api/products/65f1a2b3c4d5e6f708192a3b", map[string]any{"title": "X", "category": "Y", "price": 1}, http.StatusNotFound, "Product not found"},
		{http.MethodDelete, "/api/products/nope", nil, http.StatusBadRequest, "Invalid product id"},
	}
	for _, tc := range cases {
		code, body := do(t, app, tc.method, tc.path, tc.body, testAdminKey)
		assert.Equal(t, tc.code, code, "%s %s: %s", tc.method, tc.path, body)
		assert.Equal(t, tc.detail, detailOf(t, body), "%s %s", tc.method, tc.path)
	}
}

func TestAvailability(t *testing.T) {
	app, store := newApp(t, testConfig())
	low := seedProduct(t, store, "Seat Cover", 2)

	code, body := do(t, app, http.MethodGet, "/api/products/"+low+"/availability", nil, "")
	require.Equal(t, http.StatusOK, code)
	got := decode[map[string]any](t, body)
	assert.Equal(t, "LOW_STOCK", got["status"])
	assert.EqualValues(t, 2, got["qty"])

	code, _ = do(t, app, http.MethodGet, "/api/products/65f1a2b3c4d5e6f708192a3b/availability", nil, "")
	assert.Equal(t, http.StatusNotFound, code)
}
