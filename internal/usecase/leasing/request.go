package leasing

import (
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/pkg/errs"
)

const TimestampLayout = "2006-01-02 15:04:05"

var (
	ErrMalformedTimestamp = errs.New("malformed timestamp")
	ErrInvertedRange      = errs.New("time_from is after time_to")
)

type Request struct {
	MasterID   int64
	ResourceID int64
	TimeFrom   string
	TimeTo     string
}

// Range parses both timestamps in UTC and truncates them to the hour.
func (r Request) Range() (from, to time.Time, err error) {
	from, err = parseHour(r.TimeFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = parseHour(r.TimeTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}
	return from, to, nil
}

func parseHour(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "parse "+s), ErrMalformedTimestamp)
	}
	return lease.TruncateHour(t), nil
}
