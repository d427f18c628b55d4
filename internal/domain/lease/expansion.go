package lease

import (
	"time"
)

type Expansion struct {
	Hours      []HourUnit
	ByKey      map[HourKey]HourUnit
	Days       []DayKey
	HoursInDay map[DayKey][]HourKey
}

// Expand covers every hour from from to to, both ends included.
// Inputs are truncated to the hour first; from after to yields an empty expansion.
func Expand(from, to time.Time) Expansion {
	from, to = TruncateHour(from), TruncateHour(to)

	exp := Expansion{
		ByKey:      make(map[HourKey]HourUnit),
		HoursInDay: make(map[DayKey][]HourKey),
	}
	if from.After(to) {
		return exp
	}

	for cur := from; !cur.After(to); cur = cur.Add(time.Hour) {
		unit := NewHourUnit(cur)
		day := unit.Day()

		if _, seen := exp.HoursInDay[day]; !seen {
			exp.Days = append(exp.Days, day)
		}
		exp.Hours = append(exp.Hours, unit)
		exp.ByKey[unit.Key()] = unit
		exp.HoursInDay[day] = append(exp.HoursInDay[day], unit.Key())
	}

	return exp
}

func (e Expansion) Len() int {
	return len(e.Hours)
}
