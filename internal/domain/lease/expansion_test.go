//go:build unit

package lease_test

import (
	"testing"
	"time"

	"lease-market/internal/domain/lease"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpand(t *testing.T) {
	t.Run("single hour when from equals to", func(t *testing.T) {
		exp := lease.Expand(at("2024-05-01 10:00"), at("2024-05-01 10:00"))

		require.Equal(t, 1, exp.Len())
		assert.Equal(t, lease.HourKey("2024-05-01 10"), exp.Hours[0].Key())
		assert.Equal(t, []lease.DayKey{"2024-05-01"}, exp.Days)
	})

	t.Run("both ends included across midnight", func(t *testing.T) {
		exp := lease.Expand(at("2024-05-01 22:00"), at("2024-05-02 01:00"))

		want := map[lease.DayKey][]lease.HourKey{
			"2024-05-01": {"2024-05-01 22", "2024-05-01 23"},
			"2024-05-02": {"2024-05-02 00", "2024-05-02 01"},
		}
		if diff := cmp.Diff(want, exp.HoursInDay); diff != "" {
			t.Errorf("HoursInDay mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []lease.DayKey{"2024-05-01", "2024-05-02"}, exp.Days)
		assert.Len(t, exp.ByKey, 4)
	})

	t.Run("minutes are truncated before expansion", func(t *testing.T) {
		exp := lease.Expand(at("2024-05-01 10:59"), at("2024-05-01 11:01"))

		assert.Equal(t, 2, exp.Len())
		assert.Contains(t, exp.ByKey, lease.HourKey("2024-05-01 10"))
		assert.Contains(t, exp.ByKey, lease.HourKey("2024-05-01 11"))
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		exp := lease.Expand(at("2024-05-02 10:00"), at("2024-05-01 10:00"))

		assert.Zero(t, exp.Len())
		assert.Empty(t, exp.Days)
	})

	t.Run("hour count is elapsed hours plus one", func(t *testing.T) {
		ranges := []struct{ from, to string }{
			{"2024-05-01 00:00", "2024-05-01 23:00"},
			{"2024-05-01 05:00", "2024-05-03 04:00"},
			{"2024-02-28 12:00", "2024-03-01 12:00"},
			{"2024-12-31 23:00", "2025-01-01 00:00"},
		}
		for _, r := range ranges {
			from, to := at(r.from), at(r.to)
			want := int(to.Sub(from)/time.Hour) + 1
			assert.Equal(t, want, lease.Expand(from, to).Len(), "%s .. %s", r.from, r.to)
		}
	})

	t.Run("non UTC input lands on UTC keys", func(t *testing.T) {
		zone := time.FixedZone("UTC+3", 3*60*60)
		from := time.Date(2024, 5, 1, 2, 30, 0, 0, zone)

		exp := lease.Expand(from, from)

		require.Equal(t, 1, exp.Len())
		assert.Equal(t, lease.HourKey("2024-04-30 23"), exp.Hours[0].Key())
		assert.Equal(t, lease.DayKey("2024-04-30"), exp.Hours[0].Day())
	})
}

func TestParseHourKey(t *testing.T) {
	h, err := lease.ParseHourKey("2024-05-01 13")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC), h.Time())

	_, err = lease.ParseHourKey("2024-05-01T13")
	assert.Error(t, err)
}
