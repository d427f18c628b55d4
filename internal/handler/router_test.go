//go:build unit

package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"lease-market/internal/handler"
	"lease-market/internal/handler/api"
	"lease-market/internal/handler/middleware"
	"lease-market/internal/pkg/config"
	"lease-market/tests/common/builder"
	"lease-market/tests/common/httptest"
	"lease-market/tests/common/testutil"
	leasingmock "lease-market/tests/mock/leasing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	leaseHandler := api.NewLeaseHandler(leasingmock.NewMockCommands(ctrl), leasingmock.NewMockQueries(ctrl))

	engine := gin.New()
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log), leaseHandler)
	return engine
}

func TestRouter(t *testing.T) {
	cfg := config.NewTestConfig()
	router := newTestRouter(t, cfg)

	t.Run("health", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("lease route enforces the configured body limit", func(t *testing.T) {
		body := testutil.DtoMap(t, builder.NewLeaseRequestBuilder().BuildRequestDTO(),
			testutil.Field("padding", strings.Repeat("x", int(cfg.Server.MaxBodyBytes))))

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/leases", body, "")

		httptest.AssertErrorResponse(t, rec, http.StatusRequestEntityTooLarge, "Request body too large")
	})

	t.Run("lookup routes are registered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/masters/abc", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid master ID")
	})
}
