package lease

// FindOvertimeDays returns the days whose requested hour count reaches dailyCap
// without covering the whole day. Full days are billed at the cap instead.
func FindOvertimeDays(exp Expansion, dailyCap int) []DayKey {
	var days []DayKey

	for _, day := range exp.Days {
		n := len(exp.HoursInDay[day])
		if n >= dailyCap && n < HoursInDay {
			days = append(days, day)
		}
	}

	return days
}

// PayableHours bills a full 24-hour day as dailyCap hours and any other day by
// its literal hour count.
func PayableHours(exp Expansion, dailyCap int) int {
	total := 0

	for _, day := range exp.Days {
		n := len(exp.HoursInDay[day])
		if n == HoursInDay {
			total += dailyCap
			continue
		}
		total += n
	}

	return total
}
