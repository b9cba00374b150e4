package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/h809829-coder/agrosmart/config"
	"github.com/h809829-coder/agrosmart/pkg/ai"
	"github.com/h809829-coder/agrosmart/pkg/app"
	authSvcImp "github.com/h809829-coder/agrosmart/pkg/auth/serviceImp"
	"github.com/h809829-coder/agrosmart/pkg/middleware"
	"github.com/h809829-coder/agrosmart/pkg/report"
	"github.com/h809829-coder/agrosmart/pkg/testutil"
	"github.com/h809829-coder/agrosmart/pkg/weather"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	core, _, err := app.NewCore(ctx, db)
	require.NoError(t, err)

	cfg := config.AppConfig{
		AuthSecret:        "router-test-secret",
		SessionTTL:        time.Hour,
		KBMaxBytesPerPage: 1 << 20,
	}
	e, err := app.NewHTTP(ctx, cfg, db, core,
		app.WithLLM(ai.NewMock()),
		app.WithWeather(weather.NewMock()),
		app.WithAuthOptions(authSvcImp.WithBcryptCost(bcrypt.MinCost)),
	)
	require.NoError(t, err)
	return e
}

type call struct {
	method string
	path   string
	body   any
	token  string
}

func do(t *testing.T, e *echo.Echo, c call) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if c.body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(c.body))
	}
	req := httptest.NewRequest(c.method, c.path, &buf)
	if c.body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func login(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := do(t, e, call{method: http.MethodPost, path: "/api/auth/register", body: map[string]string{
		"name": "Ravi", "email": "ravi@example.com", "password": "harvest-2025", "confirm_password": "harvest-2025",
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	rec = do(t, e, call{method: http.MethodPost, path: "/api/auth/login", body: map[string]string{
		"email": "ravi@example.com", "password": "harvest-2025",
	}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookie := rec.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, middleware.SessionCookie+"=")
	assert.Contains(t, cookie, "HttpOnly")

	return decode[struct {
		Token string `json:"token"`
	}](t, rec).Token
}

func TestRecommendAndHistory(t *testing.T) {
	e := newServer(t)

	for _, prefix := range []string{"", "/api"} {
		rec := do(t, e, call{method: http.MethodPost, path: prefix + "/recommend", body: map[string]string{
			"location": "Warangal", "soilType": "Clay", "season": "Kharif", "waterAvailability": "High", "budget": "Medium",
		}})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		out := decode[struct {
			Success        bool           `json:"success"`
			Recommendation map[string]any `json:"recommendation"`
			Match          string         `json:"match"`
		}](t, rec)
		assert.True(t, out.Success)
		assert.Equal(t, "Rice", out.Recommendation["name"])
		assert.Equal(t, "Every 2-3 days", out.Recommendation["irrigation_schedule"])
		assert.Equal(t, "exact", out.Match)
	}

	rec := do(t, e, call{method: http.MethodPost, path: "/recommend", body: map[string]string{"soilType": "Peat", "season": "Winter"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"General Mixed Crops"`)
	assert.Contains(t, rec.Body.String(), `"match":"fallback"`)

	rec = do(t, e, call{method: http.MethodGet, path: "/api/history"})
	require.Equal(t, http.StatusOK, rec.Code)
	hist := decode[[]map[string]any](t, rec)
	require.Len(t, hist, 2)
	assert.Equal(t, "Rice", hist[0]["recommended_crop"])
	assert.Equal(t, "Warangal", hist[0]["location"])

	rec = do(t, e, call{method: http.MethodGet, path: "/history?limit=1"})
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = do(t, e, call{method: http.MethodGet, path: "/history?limit=lots"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"limit must be an integer"}`, rec.Body.String())
}

func TestCrops(t *testing.T) {
	e := newServer(t)

	rec := do(t, e, call{method: http.MethodGet, path: "/api/crop/Moong%20Dal"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Phosphorus", decode[map[string]any](t, rec)["fertilizer"])

	rec = do(t, e, call{method: http.MethodGet, path: "/crop/Quinoa"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"crop not found"}`, rec.Body.String())

	rec = do(t, e, call{method: http.MethodGet, path: "/crops"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 8)
}

func TestWeather(t *testing.T) {
	e := newServer(t)

	rec := do(t, e, call{method: http.MethodGet, path: "/api/weather"})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[weather.Report](t, rec)
	assert.Equal(t, 28.0, out.Main.Temp)
	assert.Equal(t, []string{weather.AlertMock}, out.Alerts)

	rec = do(t, e, call{method: http.MethodGet, path: "/weather?lat=100"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthFlowAndProtectedRoutes(t *testing.T) {
	e := newServer(t)

	for _, c := range []call{
		{method: http.MethodPost, path: "/chat", body: map[string]string{"message": "hi"}},
		{method: http.MethodGet, path: "/api/auth/me"},
		{method: http.MethodGet, path: "/history/export"},
		{method: http.MethodPost, path: "/kb/ingest", body: map[string]string{"title": "t", "text": "x"}},
		{method: http.MethodPost, path: "/chat", body: map[string]string{"message": "hi"}, token: "forged"},
	} {
		rec := do(t, e, c)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, c.path)
	}

	token := login(t, e)

	rec := do(t, e, call{method: http.MethodGet, path: "/auth/me", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ravi@example.com", decode[map[string]any](t, rec)["email"])

	rec = do(t, e, call{method: http.MethodPost, path: "/api/chat", body: map[string]string{"message": "how should I irrigate?"}, token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	chat := decode[struct {
		Reply    string `json:"reply"`
		Degraded bool   `json:"degraded"`
	}](t, rec)
	assert.Contains(t, chat.Reply, "Irrigate")
	assert.False(t, chat.Degraded)

	rec = do(t, e, call{method: http.MethodPost, path: "/chat", body: map[string]string{"message": "  "}, token: token})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, call{method: http.MethodPost, path: "/auth/logout", token: token})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, call{method: http.MethodGet, path: "/auth/me", token: token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	e := newServer(t)
	_ = login(t, e)

	cases := []struct {
		body map[string]string
		code int
	}{
		{map[string]string{"name": "A", "email": "bad", "password": "harvest-2025", "confirm_password": "harvest-2025"}, http.StatusBadRequest},
		{map[string]string{"name": "A", "email": "a@example.com", "password": "short", "confirm_password": "short"}, http.StatusBadRequest},
		{map[string]string{"name": "A", "email": "a@example.com", "password": "harvest-2025", "confirm_password": "harvest-2026"}, http.StatusBadRequest},
		{map[string]string{"name": "A", "email": "RAVI@example.com", "password": "harvest-2025", "confirm_password": "harvest-2025"}, http.StatusConflict},
	}
	for _, tc := range cases {
		rec := do(t, e, call{method: http.MethodPost, path: "/auth/register", body: tc.body})
		assert.Equal(t, tc.code, rec.Code, rec.Body.String())
	}

	rec := do(t, e, call{method: http.MethodPost, path: "/auth/login", body: map[string]string{"email": "ravi@example.com", "password": "wrong-password"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
}

func TestExport(t *testing.T) {
	e := newServer(t)
	token := login(t, e)

	rec := do(t, e, call{method: http.MethodPost, path: "/recommend", body: map[string]string{"soilType": "Loamy", "season": "Rabi", "waterAvailability": "Medium", "budget": "Medium"}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, call{method: http.MethodGet, path: "/api/history/export", token: token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), report.HistoryFilename)

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.HistorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Wheat", rows[1][6])
}

func TestKnowledgeBase(t *testing.T) {
	e := newServer(t)
	token := login(t, e)

	rec := do(t, e, call{method: http.MethodPost, path: "/kb/ingest", token: token, body: map[string]string{
		"title": "Mulching", "tags": "water", "text": "Mulching reduces evaporation from sandy soil.",
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode[map[string]any](t, rec)["chunks"])

	rec = do(t, e, call{method: http.MethodPost, path: "/kb/ingest", token: token, body: map[string]string{"title": "Empty"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, call{method: http.MethodPost, path: "/kb/ingest/url", token: token, body: map[string]string{"url": "https://not-allowed.example.com/page"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"domain not allowed"}`, rec.Body.String())

	rec = do(t, e, call{method: http.MethodGet, path: "/api/kb/search?q=sandy+evaporation"})
	require.Equal(t, http.StatusOK, rec.Code)
	hits := decode[[]map[string]any](t, rec)
	require.Len(t, hits, 1)
	assert.Equal(t, "Mulching", hits[0]["doc_title"])

	rec = do(t, e, call{method: http.MethodGet, path: "/kb/search"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, call{method: http.MethodPost, path: "/chat", token: token, body: map[string]string{"message": "does mulching help sandy soil?"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sources":[{"title":"Mulching"}]`)
}

func TestHealthAndUnknownRoute(t *testing.T) {
	e := newServer(t)

	rec := do(t, e, call{method: http.MethodGet, path: "/health"})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[map[string]any](t, rec)
	assert.Equal(t, map[string]any{"ok": true}, out["status"])
	assert.Contains(t, out, "uptime_sec")

	rec = do(t, e, call{method: http.MethodGet, path: "/nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
