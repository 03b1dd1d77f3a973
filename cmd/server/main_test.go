package main

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tyzox-be/internal/auth"
	"tyzox-be/internal/config"
	"tyzox-be/internal/handler/dto"
	"tyzox-be/internal/idempotency"
	"tyzox-be/internal/middleware"
	"tyzox-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		AppPort:        "8080",
		AppEnv:         "test",
		JWTSecret:      "test-secret",
		CORSOrigins:    []string{"http://localhost:3000"},
		IdempotencyTTL: time.Minute,
	}
}

func newTestServer(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()

	db, err := sql.Open("mock_driver_main", "")
	require.NoError(t, err)

	keys := idempotency.NewMemoryStore(time.Minute)
	limiter := middleware.NewRateLimiter(middleware.LimiterOptions{StrictRoutes: strictRoutes})
	t.Cleanup(func() {
		limiter.Close()
		_ = keys.Close()
		_ = db.Close()
	})

	cfg := testConfig()
	return newServer(cfg, db, keys, limiter), cfg
}

func TestSetupRouter(t *testing.T) {
	router, cfg := newTestServer(t)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("Health Check", func(t *testing.T) {
		rr := serve(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK", rr.Body.String())
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/cart/items", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := serve(req)

		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Cart requires login", func(t *testing.T) {
		rr := serve(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
	})

	issuer := auth.NewIssuer(cfg.JWTSecret, time.Hour)

	t.Run("Admin routes reject customers", func(t *testing.T) {
		token, err := issuer.Generate(5, "c@x.io", "USER")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := serve(req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Admin stats", func(t *testing.T) {
		token, err := issuer.Generate(1, "a@x.io", utils.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := serve(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"checkouts":0`)
	})

	t.Run("Prometheus metrics", func(t *testing.T) {
		rr := serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "tyzox_checkouts_total 0")
	})

	t.Run("Bad path id", func(t *testing.T) {
		token, err := issuer.Generate(5, "c@x.io", "USER")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/abc", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := serve(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSetupRouter_ThrottlesBadTokensOnLogin(t *testing.T) {
	router, _ := newTestServer(t)

	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "203.0.113.9:5000"
		req.Header.Set("Authorization", "Bearer forged.jwt.token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusUnauthorized, login())
	}
	assert.Equal(t, http.StatusTooManyRequests, login())
}

func TestNewIdempotencyStore_Memory(t *testing.T) {
	cfg := testConfig()

	store, err := newIdempotencyStore(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*idempotency.MemoryStore)
	assert.True(t, ok)
}

// --- Mock Driver for Testing ---
type mockDriver struct{}

func (m *mockDriver) Open(name string) (driver.Conn, error)         { return &mockConn{}, nil }
func (c *mockConn) Prepare(query string) (driver.Stmt, error)       { return &mockStmt{}, nil }
func (c *mockConn) Close() error                                    { return nil }
func (c *mockConn) Begin() (driver.Tx, error)                       { return nil, nil }
func (s *mockStmt) Close() error                                    { return nil }
func (s *mockStmt) NumInput() int                                   { return 0 }
func (s *mockStmt) Exec(args []driver.Value) (driver.Result, error) { return nil, nil }
func (s *mockStmt) Query(args []driver.Value) (driver.Rows, error)  { return nil, nil }

type mockConn struct{}
type mockStmt struct{}

func init() {
	sql.Register("mock_driver_main", &mockDriver{})
}

func TestRun(t *testing.T) {
	origInitDB := initDBFunc
	defer func() { initDBFunc = origInitDB }()
	initDBFunc = func(cfg *config.Config) *sql.DB {
		db, _ := sql.Open("mock_driver_main", "")
		return db
	}

	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()

	var gotAddr string
	startServerFunc = func(addr string, handler http.Handler) error {
		gotAddr = addr
		return nil
	}

	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_NAME", "db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REDIS_ADDR", "")

	assert.NoError(t, run())
	assert.Equal(t, ":8080", gotAddr)
}
