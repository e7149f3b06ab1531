package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	"github.com/BruksfildServices01/salon-api/internal/config"
	"github.com/BruksfildServices01/salon-api/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/testutil"
)

type api struct {
	t  *testing.T
	r  *gin.Engine
	d  *audit.Dispatcher
	db *gorm.DB
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())
	t.Cleanup(dispatcher.Close)

	cfg := &config.Config{
		RateLimitPerMinute:    120,
		PointsPerVisit:        loyalty.DefaultPointsPerVisit,
		PointsPerReferral:     loyalty.DefaultPointsPerReferral,
		PointsToCurrencyRatio: loyalty.DefaultPointsToCurrencyRatio,
	}

	r := gin.New()
	RegisterRoutes(r, Deps{DB: db, Config: cfg, Log: zap.NewNop(), Audit: dispatcher})

	return &api{t: t, r: r, d: dispatcher, db: db}
}

func (a *api) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func id(m map[string]any) uint {
	return uint(m["id"].(float64))
}

func TestHealth(t *testing.T) {
	a := newAPI(t)

	w, body := a.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAPI_SchedulingScenario(t *testing.T) {
	a := newAPI(t)
	t0 := testutil.BaseTime()

	w, cat := a.do(http.MethodPost, "/api/service-categories", map[string]any{"title": "Hair"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, svc := a.do(http.MethodPost, "/api/services", map[string]any{
		"title":            "Cut",
		"description":      "Classic cut",
		"price":            50,
		"duration_minutes": 30,
		"category_id":      id(cat),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Hair", svc["category_title"])
	assert.Equal(t, true, svc["is_active"])

	w, jane := a.do(http.MethodPost, "/api/customers", map[string]any{
		"first_name":     "Jane",
		"last_name":      "Doe",
		"email":          "jane@example.com",
		"phone_number":   "555-0101",
		"loyalty_points": 999,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(0), jane["loyalty_points"])

	w, first := a.do(http.MethodPost, "/api/appointments", map[string]any{
		"customer_id": id(jane),
		"service_id":  id(svc),
		"start_time":  t0.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Scheduled", first["status"])
	assert.Equal(t, "Jane Doe", first["customer_name"])
	assert.Equal(t, t0.Add(30*time.Minute).Format(time.RFC3339), first["end_time"])

	w, conflict := a.do(http.MethodPost, "/api/appointments", map[string]any{
		"customer_id": id(jane),
		"service_id":  id(svc),
		"start_time":  t0.Add(15 * time.Minute).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "time_conflict", conflict["error_code"])

	w, _ = a.do(http.MethodPost, "/api/appointments", map[string]any{
		"customer_id": id(jane),
		"service_id":  id(svc),
		"start_time":  t0.Add(30 * time.Minute).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, list := a.do(http.MethodGet, "/api/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), list["total"])

	w, missing := a.do(http.MethodPost, "/api/appointments", map[string]any{
		"customer_id": id(jane),
		"service_id":  999,
		"start_time":  t0.Add(5 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service_not_found", missing["error_code"])

	w, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/customers/%d", id(jane)), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/service-categories/%d", id(cat)), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// eventos são gravados em background
	a.d.Close()

	var actions []string
	require.NoError(t, a.db.Model(&models.AuditLog{}).Order("id").Pluck("action", &actions).Error)
	assert.Contains(t, actions, "appointment_created")
	assert.Contains(t, actions, "appointment_conflict")
	assert.Contains(t, actions, "customer_created")
}

func TestAPI_LoyaltyFlow(t *testing.T) {
	a := newAPI(t)

	_, c := a.do(http.MethodPost, "/api/customers", map[string]any{
		"first_name":   "Jane",
		"last_name":    "Doe",
		"email":        "jane@example.com",
		"phone_number": "555-0101",
	})
	base := fmt.Sprintf("/api/customers/%d", id(c))

	w, visit := a.do(http.MethodPost, base+"/loyalty/visit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(10), visit["loyalty_points"])

	w, discount := a.do(http.MethodGet, base+"/loyalty/discount", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0.10", discount["available_discount"])

	w, _ = a.do(http.MethodPost, base+"/loyalty/referral", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, spend := a.do(http.MethodPost, base+"/loyalty/spend", map[string]any{"points_to_use": 100})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "insufficient_balance", spend["error_code"])

	w, spend = a.do(http.MethodPost, base+"/loyalty/spend", map[string]any{"points_to_use": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_points", spend["error_code"])

	w, spend = a.do(http.MethodPost, base+"/loyalty/spend", map[string]any{"points_to_use": 50})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(10), spend["remaining_points"])
	assert.Equal(t, "0.50", spend["discount_amount"])

	// update com loyalty_points no payload não altera o saldo
	w, updated := a.do(http.MethodPut, base, map[string]any{
		"first_name":     "Janet",
		"last_name":      "Doe",
		"email":          "janet@example.com",
		"phone_number":   "555-0101",
		"loyalty_points": 5000,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(10), updated["loyalty_points"])

	w, _ = a.do(http.MethodPost, "/api/customers/999/loyalty/visit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_ServicePromotionAndQueries(t *testing.T) {
	a := newAPI(t)

	_, cat := a.do(http.MethodPost, "/api/service-categories", map[string]any{"title": "Hair"})
	_, svc := a.do(http.MethodPost, "/api/services", map[string]any{
		"title":            "Color",
		"description":      "Full color",
		"price":            "120.00",
		"duration_minutes": 90,
		"category_id":      id(cat),
	})
	base := fmt.Sprintf("/api/services/%d", id(svc))

	w, bad := a.do(http.MethodPatch, base+"/promotional-price", map[string]any{"promotional_price": 120})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_promotional_price", bad["error_code"])

	w, promo := a.do(http.MethodPatch, base+"/promotional-price", map[string]any{"promotional_price": 80})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "80", promo["effective_price"])

	w, promos := a.do(http.MethodGet, "/api/services/promotions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), promos["total"])

	w, ranged := a.do(http.MethodGet, "/api/services/price-range?min=70&max=90", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), ranged["total"])

	w, _ = a.do(http.MethodGet, "/api/services/price-range?min=abc&max=90", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, found := a.do(http.MethodGet, "/api/services/search?q=hair", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), found["total"])

	w, _ = a.do(http.MethodPatch, base+"/deactivate", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, byCat := a.do(http.MethodGet, fmt.Sprintf("/api/services/category/%d", id(cat)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), byCat["total"])

	w, _ = a.do(http.MethodGet, "/api/services/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = a.do(http.MethodGet, "/api/services/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = a.do(http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/service-categories/%d", id(cat)), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAPI_AuditLogs(t *testing.T) {
	a := newAPI(t)

	a.do(http.MethodPost, "/api/service-categories", map[string]any{"title": "Hair"})
	a.do(http.MethodPost, "/api/service-categories", map[string]any{"title": "Nails"})
	a.d.Close()

	w, body := a.do(http.MethodGet, "/api/audit-logs?entity=service_category&limit=1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["logs"], 1)
}

func (a *api) seedAuditLog(action, entity string, entityID uint, at time.Time) {
	a.t.Helper()

	row := models.AuditLog{Action: action, Entity: entity, EntityID: &entityID, CreatedAt: at}
	require.NoError(a.t, a.db.Create(&row).Error)
}

func logActions(t *testing.T, body map[string]any) []string {
	t.Helper()

	logs, ok := body["logs"].([]any)
	require.True(t, ok, "logs must be a list")

	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.(map[string]any)["action"].(string))
	}
	return out
}

func TestAPI_AuditLogs_Filters(t *testing.T) {
	a := newAPI(t)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	a.seedAuditLog("customer_created", "customer", 1, day.Add(-time.Second))
	a.seedAuditLog("customer_updated", "customer", 1, day.Add(9*time.Hour))
	a.seedAuditLog("customer_created", "customer", 2, day.Add(24*time.Hour-time.Second))
	a.seedAuditLog("customer_deleted", "customer", 2, day.Add(24*time.Hour))

	cases := map[string]struct {
		query string
		total int
		want  []string
	}{
		"newest first": {"", 4, []string{"customer_deleted", "customer_created", "customer_updated", "customer_created"}},
		"action":       {"action=customer_created", 2, []string{"customer_created", "customer_created"}},
		"entity id":    {"entity=customer&entity_id=2", 2, []string{"customer_deleted", "customer_created"}},
		"single day":   {"from=2026-03-10&to=2026-03-10", 2, []string{"customer_created", "customer_updated"}},
		"to inclusive": {"to=2026-03-10", 3, []string{"customer_created", "customer_updated", "customer_created"}},
		"from future":  {"from=2099-01-01", 0, []string{}},
		"page 2":       {"limit=1&page=2", 4, []string{"customer_created"}},
		"page 3":       {"limit=1&page=3", 4, []string{"customer_updated"}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w, body := a.do(http.MethodGet, "/api/audit-logs?"+tc.query, nil)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, float64(tc.total), body["total"])
			assert.Equal(t, tc.want, logActions(t, body))
		})
	}
}

func TestAPI_AuditLogs_TodayIncludesFreshRows(t *testing.T) {
	a := newAPI(t)

	a.do(http.MethodPost, "/api/service-categories", map[string]any{"title": "Hair"})
	a.d.Close()

	today := time.Now().UTC().Format("2006-01-02")
	w, body := a.do(http.MethodGet, "/api/audit-logs?from="+today+"&to="+today, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, []string{"service_category_created"}, logActions(t, body))
}
