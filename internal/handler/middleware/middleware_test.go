//go:build unit

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lease-market/internal/handler/httperr"
	"lease-market/internal/pkg/config"
	"lease-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := NewLogger(config.NewTestConfig().Log)

	engine := gin.New()
	engine.Use(CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(ErrorHandler())
	engine.GET("/probe", handler)
	return engine
}

func serve(engine *gin.Engine, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if requestID != "" {
		req.Header.Set(headerRequestID, requestID)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLoggingMiddlewareRequestID(t *testing.T) {
	var seen string
	engine := newTestEngine(func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("echoes incoming id", func(t *testing.T) {
		w := serve(engine, "req-42")
		assert.Equal(t, "req-42", w.Header().Get(headerRequestID))
		assert.Equal(t, "req-42", seen)
	})

	t.Run("generates id when missing", func(t *testing.T) {
		w := serve(engine, "")
		id := w.Header().Get(headerRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, seen)
	})
}

func TestErrorHandlerRendersPublicError(t *testing.T) {
	engine := newTestEngine(func(c *gin.Context) {
		resp := httperr.New(http.StatusConflict, "taken", nil)
		_ = c.Error(&gin.Error{Err: errs.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
		c.Abort()
	})

	w := serve(engine, "")

	require.Equal(t, http.StatusConflict, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "taken", body["error"].(map[string]any)["message"])
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	engine := newTestEngine(func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("bad"), "Invalid request format", nil)
	})

	w := serve(engine, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request format")
}

func TestCustomRecovery(t *testing.T) {
	engine := newTestEngine(func(c *gin.Context) {
		panic("boom")
	})

	w := serve(engine, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("WARN").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("verbose").String())
}
