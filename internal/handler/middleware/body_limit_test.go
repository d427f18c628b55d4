//go:build unit

package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	read := func(limit int64, body string) error {
		var readErr error
		engine := gin.New()
		engine.POST("/", BodyLimit(limit), func(c *gin.Context) {
			_, readErr = io.ReadAll(c.Request.Body)
			c.Status(http.StatusNoContent)
		})
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		return readErr
	}

	t.Run("within limit", func(t *testing.T) {
		assert.NoError(t, read(8, "12345678"))
	})

	t.Run("over limit", func(t *testing.T) {
		err := read(8, "123456789")
		require.Error(t, err)
		var tooLarge *http.MaxBytesError
		assert.True(t, errors.As(err, &tooLarge))
	})

	t.Run("zero disables the limit", func(t *testing.T) {
		assert.NoError(t, read(0, strings.Repeat("x", 1<<16)))
	})
}
