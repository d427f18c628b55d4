//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lease-market/internal/handler/httperr"
	"lease-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records a public error carrying the response", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		cause := errs.New("hour taken")

		httperr.AbortWithError(c, http.StatusConflict, cause, "taken", map[string]string{"kind": "HourConflict"})

		last := c.Errors.Last()
		require.NotNil(t, last)
		assert.True(t, last.IsType(gin.ErrorTypePublic))
		assert.True(t, errs.Is(last.Err, cause))

		resp, ok := last.Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.Equal(t, "taken", resp.Error.Message)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"taken"},"detail":{"kind":"HourConflict"}}`, w.Body.String())
	})

	t.Run("nil error panics", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
		})
	})
}
