package lease

import (
	"time"
)

const (
	HourLayout = "2006-01-02 15"
	DayLayout  = "2006-01-02"

	HoursInDay = 24
)

// HourKey identifies one calendar hour, e.g. "2024-05-01 13".
type HourKey string

// DayKey identifies one calendar day, e.g. "2024-05-01".
type DayKey string

func (k HourKey) String() string { return string(k) }
func (k DayKey) String() string  { return string(k) }

type HourUnit struct {
	key HourKey
}

// NewHourUnit truncates t to the hour in UTC.
func NewHourUnit(t time.Time) HourUnit {
	return HourUnit{key: HourKey(TruncateHour(t).Format(HourLayout))}
}

func ParseHourKey(s string) (HourUnit, error) {
	t, err := time.ParseInLocation(HourLayout, s, time.UTC)
	if err != nil {
		return HourUnit{}, err
	}
	return NewHourUnit(t), nil
}

func (h HourUnit) Key() HourKey { return h.key }

func (h HourUnit) Day() DayKey {
	return DayKey(h.key[:len(DayLayout)])
}

func (h HourUnit) Time() time.Time {
	t, _ := time.ParseInLocation(HourLayout, string(h.key), time.UTC)
	return t
}

func TruncateHour(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}

func DayOf(t time.Time) DayKey {
	return DayKey(t.UTC().Format(DayLayout))
}
