package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/autocare-api/internal/config"
	"github.com/sangkips/autocare-api/internal/presentation/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{App: config.AppConfig{Name: "autocare-api"}}
	router := Setup(&Handlers{Analytics: handler.NewAnalyticsHandler(nil)}, &Deps{Cfg: cfg, Logger: zap.NewNop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"autocare-api"}`, w.Body.String())
}

func TestSetup_OverviewRouteValidates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{App: config.AppConfig{Name: "autocare-api"}}
	router := Setup(&Handlers{Analytics: handler.NewAnalyticsHandler(nil)}, &Deps{Cfg: cfg, Logger: zap.NewNop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview", nil))

	// validation fails before the service is touched
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
