package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDeniedAdminAccessIsLogged(t *testing.T) {
	app, _ := newApp(t, testConfig())
	logs := observeLogs(t)

	code, _ := do(t, app, http.MethodGet, "/api/orders", nil, "wrong")
	require.Equal(t, http.StatusUnauthorized, code)

	denied := logs.FilterMessage("access.denied.admin").All()
	require.Len(t, denied, 1)
	e := denied[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	ctx := e.ContextMap()
	assert.Equal(t, "security", ctx["kind"])
	assert.Equal(t, "/api/orders", ctx["path"])
	assert.NotEmpty(t, ctx["req_id"])
	assert.Equal(t, map[string]any{"key_present": true}, ctx["fields"])
}

func TestOrderEventsAreLogged(t *testing.T) {
	app, store := newApp(t, testConfig())
	wheel := seedProduct(t, store, "Alloy Wheel", 1)
	logs := observeLogs(t)

	code, _ := do(t, app, http.MethodPost, "/api/orders", orderBody(wheel, "Alloy Wheel", 1), "")
	require.Equal(t, http.StatusOK, code)
	placed := logs.FilterMessage("order.place").All()
	require.Len(t, placed, 1)
	assert.Equal(t, "audit", placed[0].ContextMap()["kind"])

	code, _ = do(t, app, http.MethodPost, "/api/orders", orderBody(wheel, "Alloy Wheel", 1), "")
	require.Equal(t, http.StatusBadRequest, code)
	failed := logs.FilterMessage("order.place.fail").All()
	require.Len(t, failed, 1)
	assert.Equal(t, map[string]any{"error": "Insufficient stock for Alloy Wheel"}, failed[0].ContextMap()["fields"])
}
