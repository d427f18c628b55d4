//go:build unit

package lease_test

import (
	"testing"
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

// hours expands n consecutive hours starting at midnight of day.
func hours(day string, n int) lease.Expansion {
	from := at(day + " 00:00")
	return lease.Expand(from, from.Add(time.Duration(n-1)*time.Hour))
}

func TestFindOvertimeDays(t *testing.T) {
	const dailyCap = 16

	cases := []struct {
		name  string
		hours int
		want  []lease.DayKey
	}{
		{name: "one below the cap", hours: 15, want: nil},
		{name: "exactly the cap", hours: 16, want: []lease.DayKey{"2024-05-01"}},
		{name: "one below a full day", hours: 23, want: []lease.DayKey{"2024-05-01"}},
		{name: "full day is exempt", hours: 24, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := lease.FindOvertimeDays(hours("2024-05-01", tc.hours), dailyCap)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("offending days are listed in order", func(t *testing.T) {
		// 2024-05-01 08:00 .. 2024-05-03 18:00: 16h, 24h, 19h.
		exp := lease.Expand(at("2024-05-01 08:00"), at("2024-05-03 18:00"))

		got := lease.FindOvertimeDays(exp, dailyCap)

		assert.Equal(t, []lease.DayKey{"2024-05-01", "2024-05-03"}, got)
	})
}

func TestPayableHours(t *testing.T) {
	const dailyCap = 16

	t.Run("partial day counts literally", func(t *testing.T) {
		assert.Equal(t, 10, lease.PayableHours(hours("2024-05-01", 10), dailyCap))
	})

	t.Run("full day is billed at the cap", func(t *testing.T) {
		assert.Equal(t, 16, lease.PayableHours(hours("2024-05-01", 24), dailyCap))
	})

	t.Run("ten hours plus a full day at 5.00 costs 130.00", func(t *testing.T) {
		// 2024-05-01 14:00 .. 2024-05-02 23:00: 10h then 24h.
		exp := lease.Expand(at("2024-05-01 14:00"), at("2024-05-02 23:00"))
		res := builder.NewResourceBuilder().With(func(b *builder.ResourceBuilder) {
			b.PricePerHour = "5.00"
		}).BuildDomain()

		payable := lease.PayableHours(exp, dailyCap)

		assert.Equal(t, 26, payable)
		assert.Equal(t, "130.00", res.LeasePrice(payable).StringFixed(2))
	})
}
