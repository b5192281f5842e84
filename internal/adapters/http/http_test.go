package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/speech-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/speech-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/speech-service/internal/adapters/persistence/sqlstore"
	"github.com/jsamuelsen/speech-service/internal/app"
	"github.com/jsamuelsen/speech-service/internal/platform/config"
	"github.com/jsamuelsen/speech-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig(port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxRequestSize:  1 << 20,
	}
}

// newStack wires the full router to a temporary SQLite database.
func newStack(t *testing.T, cfg *config.ServerConfig) *Server {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "speeches.db") + "?_pragma=busy_timeout(5000)"

	db, err := sqlstore.Open(context.Background(), sqlstore.Config{
		Driver:      sqlstore.DriverSQLite,
		DSN:         dsn,
		AutoMigrate: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(db))

	svc := app.NewSpeechService(app.SpeechServiceConfig{
		Repository: sqlstore.NewRepository(db),
		Logger:     discardLogger(),
		Registerer: prometheus.NewRegistry(),
	})

	srv := New(cfg, discardLogger())
	SetupRouter(srv.Engine(), RouterConfig{
		Logger:        discardLogger(),
		AppConfig:     &config.AppConfig{Name: "speech-service", Version: "test", Environment: "test"},
		HealthHandler: handlers.NewHealthHandler(registry, handlers.BuildInfo{Version: "test"}, prometheus.NewRegistry()),
		SpeechHandler: handlers.NewSpeechHandler(svc),
		Timeout:       5 * time.Second,
	})

	return srv
}

func serve(engine *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	engine.ServeHTTP(w, req)

	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

const speechPayload = `{"content":"We shall fight on the beaches","author":"Winston Churchill",` +
	`"keywords":["war","resolve"],"speechDate":"1940-06-04T00:00:00Z"}`

func TestServerNew(t *testing.T) {
	cfg := testServerConfig(8080)
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.engine)
	assert.NotNil(t, srv.httpServer)
	assert.Equal(t, cfg, srv.config)
	assert.Equal(t, logger, srv.logger)
	assert.Equal(t, cfg.ReadTimeout, srv.httpServer.ReadTimeout)
	assert.Equal(t, cfg.WriteTimeout, srv.httpServer.WriteTimeout)
	assert.Equal(t, cfg.IdleTimeout, srv.httpServer.IdleTimeout)
}

func TestServerEngine(t *testing.T) {
	srv := New(testServerConfig(0), discardLogger())

	engine := srv.Engine()

	require.NotNil(t, engine)
	assert.IsType(t, &gin.Engine{}, engine)
	assert.True(t, engine.HandleMethodNotAllowed)
}

func TestServerConfig(t *testing.T) {
	cfg := testServerConfig(3000)
	cfg.Host = "0.0.0.0"

	srv := New(cfg, discardLogger())

	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, 3000, srv.Config().Port)
	assert.Equal(t, "0.0.0.0", srv.Config().Host)
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		port         int
		expectedAddr string
	}{
		{name: "localhost with port 8080", host: "localhost", port: 8080, expectedAddr: "localhost:8080"},
		{name: "all interfaces", host: "0.0.0.0", port: 3000, expectedAddr: "0.0.0.0:3000"},
		{name: "dynamic port", host: "127.0.0.1", port: 0, expectedAddr: "127.0.0.1:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testServerConfig(tt.port)
			cfg.Host = tt.host

			assert.Equal(t, tt.expectedAddr, New(cfg, discardLogger()).Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(0), discardLogger())

	errCh := srv.Start()

	time.Sleep(100 * time.Millisecond)

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("server start error: %v", err)
		}
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")
}

func TestServerStartError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	t.Cleanup(func() { _ = busy.Close() })

	cfg := testServerConfig(busy.Addr().(*net.TCPAddr).Port)

	select {
	case err := <-New(cfg, discardLogger()).Start():
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http server error")
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for listen error")
	}
}

func TestNewDefaultRouterConfig(t *testing.T) {
	logger := discardLogger()
	appCfg := &config.AppConfig{Name: "speech-service", Environment: "test", Version: "1.0.0"}
	healthHandler := handlers.NewHealthHandler(nil, handlers.BuildInfo{}, nil)

	cfg := NewDefaultRouterConfig(logger, appCfg, healthHandler, nil)

	assert.Equal(t, logger, cfg.Logger)
	assert.Equal(t, appCfg, cfg.AppConfig)
	assert.Equal(t, healthHandler, cfg.HealthHandler)
	assert.Nil(t, cfg.SpeechHandler)
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout)
}

func TestSetupRouter_Routes(t *testing.T) {
	srv := newStack(t, testServerConfig(0))

	routes := make(map[string]bool)
	for _, r := range srv.Engine().Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/build",
		"GET /-/metrics",
	}
	for _, base := range []string{APIBasePath, APIAliasBasePath} {
		expected = append(expected,
			"GET "+base+"/speeches",
			"GET "+base+"/speeches/search",
			"GET "+base+"/speeches/:id",
			"POST "+base+"/speeches",
			"PUT "+base+"/speeches/:id",
			"DELETE "+base+"/speeches/:id",
		)
	}

	for _, route := range expected {
		assert.True(t, routes[route], "missing route: %s", route)
	}
}

func TestSetupRouter_WithoutOptionalParts(t *testing.T) {
	tests := []struct {
		name string
		cfg  RouterConfig
	}{
		{name: "zero timeout", cfg: RouterConfig{Logger: discardLogger(), AppConfig: &config.AppConfig{Name: "svc"}}},
		{name: "nil logger and app config", cfg: RouterConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()

			require.NotPanics(t, func() {
				SetupRouter(engine, tt.cfg)
			})

			w := serve(engine, http.MethodGet, "/api/v1/speeches", nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestSetupRouter_SpeechLifecycleAcrossBasePaths(t *testing.T) {
	engine := newStack(t, testServerConfig(0)).Engine()

	w := serve(engine, http.MethodPost, "/api/speeches", strings.NewReader(speechPayload))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeResponse(t, w)
	data, ok := created.Data.(map[string]any)
	require.True(t, ok)
	id := int64(data["id"].(float64))
	require.Positive(t, id)

	w = serve(engine, http.MethodGet, "/api/v1/speeches/"+strconv.FormatInt(id, 10), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Speech retrieved successfully", decodeResponse(t, w).Message)

	w = serve(engine, http.MethodGet, "/api/v1/speeches/search?author=winston%20churchill", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w).Data, 1)

	w = serve(engine, http.MethodDelete, "/api/speeches/"+strconv.FormatInt(id, 10), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, "/api/v1/speeches/"+strconv.FormatInt(id, 10), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRouter_TraceIDMatchesRequestID(t *testing.T) {
	engine := newStack(t, testServerConfig(0)).Engine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/speeches/42", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "req-abc", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-abc", decodeResponse(t, w).TraceID)
}

func TestSetupRouter_GeneratedRequestIDIsTraceID(t *testing.T) {
	engine := newStack(t, testServerConfig(0)).Engine()

	w := serve(engine, http.MethodGet, "/api/v1/speeches/abc", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	requestID := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, requestID)
	assert.Equal(t, requestID, decodeResponse(t, w).TraceID)
}

func TestSetupRouter_UnknownRouteAndMethod(t *testing.T) {
	engine := newStack(t, testServerConfig(0)).Engine()

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unknown path",
			method:      http.MethodGet,
			path:        "/api/v1/talks",
			wantStatus:  http.StatusNotFound,
			wantMessage: MessageRouteNotFound,
		},
		{
			name:        "unsupported method",
			method:      http.MethodPatch,
			path:        "/api/v1/speeches/1",
			wantStatus:  http.StatusMethodNotAllowed,
			wantMessage: MessageMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path, nil)

			assert.Equal(t, tt.wantStatus, w.Code)

			resp := decodeResponse(t, w)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestSetupRouter_Probes(t *testing.T) {
	engine := newStack(t, testServerConfig(0)).Engine()

	w := serve(engine, http.MethodGet, "/-/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database"`)

	w = serve(engine, http.MethodGet, "/-/build", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"test"`)
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	cfg := testServerConfig(0)
	cfg.MaxRequestSize = 100

	srv := New(cfg, discardLogger())
	srv.Engine().POST("/test", func(c *gin.Context) {
		var payload map[string]any
		if err := dto.BindAndValidate(c, &payload); err != nil {
			dto.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": len(payload)})
	})

	t.Run("body under limit", func(t *testing.T) {
		w := serve(srv.Engine(), http.MethodPost, "/test", strings.NewReader(`{"a":1}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("declared length over limit", func(t *testing.T) {
		body := `{"content":"` + strings.Repeat("x", 200) + `"}`
		w := serve(srv.Engine(), http.MethodPost, "/test", strings.NewReader(body))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, dto.MessageBodyTooLarge, resp.Message)
		assert.Equal(t, []string{"body: must not exceed 100 bytes"}, resp.Errors)
	})

	t.Run("chunked body over limit", func(t *testing.T) {
		body := `{"content":"` + strings.Repeat("x", 200) + `"}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/test", io.MultiReader(bytes.NewBufferString(body)))
		req.ContentLength = -1
		req.Header.Set("Content-Type", "application/json")
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, dto.MessageBodyTooLarge, decodeResponse(t, w).Message)
	})
}

