package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"arihant/internal/config"
	"arihant/internal/domain"
	"arihant/internal/http/handlers"
	"arihant/internal/repos"
)

const testAdminKey = "letmein"

func testConfig() config.Config {
	return config.Config{AllowOrigins: "*", AdminKey: testAdminKey}
}

// newApp builds the full app over a fresh in-memory store.
func newApp(t *testing.T, cfg config.Config) (*fiber.App, *repos.SQLStore) {
	t.Helper()
	store, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return handlers.NewApp(cfg, handlers.NewDeps(store, cfg)), store
}

// observeLogs routes the global logger into an in-memory sink for the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(undo)
	return logs
}

func do(t *testing.T, app *fiber.App, method, path string, body any, adminKey string) (int, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			if err != nil {
				t.Fatal(err)
			}
			raw = string(b)
		}
		rdr = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if adminKey != "" {
		req.Header.Set(handlers.AdminKeyHeader, adminKey)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode %s: %v", string(b), err)
	}
	return v
}

func detailOf(t *testing.T, b []byte) string {
	t.Helper()
	return decode[map[string]any](t, b)["detail"].(string)
}

func seedProduct(t *testing.T, store *repos.SQLStore, title string, stock int) string {
	t.Helper()
	id, err := store.Products().Create(context.Background(), domain.Product{
		Title:    title,
		Price:    5000,
		Category: "Accessories",
		Stock:    stock,
		Images:   []string{},
	})
	if err != nil {
		t.Fatal(err)
	}
	return id.Hex()
}

func orderBody(productID, title string, qty int) map[string]any {
	return map[string]any{
		"items": []map[string]any{{
			"product_id": productID,
			"title":      title,
			"price":      5000,
			"quantity":   qty,
		}},
		"customer": map[string]any{
			"name":    "Asha",
			"email":   "asha@example.com",
			"address": "12 MG Road",
		},
		"subtotal": 5000 * qty,
		"total":    5000 * qty,
	}
}
