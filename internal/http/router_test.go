package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/warewise/packaging-service/internal/mocks"
)

func newTestHandler() *Handler {
	return NewHandler(
		new(mocks.MockCatalogService),
		new(mocks.MockStockService),
		new(mocks.MockCompositionService),
	)
}

func TestNewRouter(t *testing.T) {
	handler := newTestHandler()
	healthHandler := NewHealthHandler()

	tests := []struct {
		name string
		cfg  RouterConfig
		test func(*testing.T, *gin.Engine)
	}{
		{
			name: "creates router with default config",
			cfg:  DefaultRouterConfig(),
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with custom CORS origins",
			cfg: RouterConfig{
				RateLimit:   100,
				RateWindow:  time.Minute,
				CORSOrigins: []string{"https://warehouse.example.com"},
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with rate limiting",
			cfg: RouterConfig{
				RateLimit:  5,
				RateWindow: time.Second,
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with swagger basic auth",
			cfg: RouterConfig{
				RateLimit:   100,
				RateWindow:  time.Minute,
				SwaggerUser: "docs",
				SwaggerPass: "secret",
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(handler, healthHandler, tt.cfg)
			if tt.test != nil {
				tt.test(t, router)
			}
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	handler := newTestHandler()
	healthHandler := NewHealthHandler()
	router := NewRouter(handler, healthHandler, DefaultRouterConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "healthz endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readyz endpoint",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "swagger endpoint",
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "pickplan endpoint rejects empty body",
			method:         http.MethodPost,
			path:           "/api/pickplan",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "select endpoint rejects empty body",
			method:         http.MethodPost,
			path:           "/api/compositions/select",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_NilHandler(t *testing.T) {
	router := NewRouter(nil, NewHealthHandler(), DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/pickplan", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
