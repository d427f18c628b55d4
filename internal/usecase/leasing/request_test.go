//go:build unit

package leasing_test

import (
	"testing"
	"time"

	"lease-market/internal/pkg/errs"
	"lease-market/internal/usecase/leasing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRange(t *testing.T) {
	t.Run("truncates to the hour in UTC", func(t *testing.T) {
		from, to, err := leasing.Request{TimeFrom: "2024-05-01 10:59:59", TimeTo: "2024-05-01 12:00:01"}.Range()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), to)
	})

	t.Run("same hour is allowed", func(t *testing.T) {
		_, _, err := leasing.Request{TimeFrom: "2024-05-01 10:05:00", TimeTo: "2024-05-01 10:55:00"}.Range()
		assert.NoError(t, err)
	})

	t.Run("malformed timestamps", func(t *testing.T) {
		for _, bad := range []string{"", "2024-05-01", "2024-05-01T10:00:00", "2024-13-01 10:00:00"} {
			_, _, err := leasing.Request{TimeFrom: bad, TimeTo: "2024-05-01 10:00:00"}.Range()
			assert.True(t, errs.Is(err, leasing.ErrMalformedTimestamp), "input %q", bad)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		_, _, err := leasing.Request{TimeFrom: "2024-05-01 11:00:00", TimeTo: "2024-05-01 10:00:00"}.Range()
		assert.True(t, errs.Is(err, leasing.ErrInvertedRange))
	})
}
