package lease

type RejectionKind string

const (
	KindMasterNotFound     RejectionKind = "MASTER_NOT_FOUND"
	KindResourceNotFound   RejectionKind = "RESOURCE_NOT_FOUND"
	KindHourConflict       RejectionKind = "HOUR_CONFLICT"
	KindDailyOvertimeLimit RejectionKind = "DAILY_OVERTIME_LIMIT"
	KindGenericFailure     RejectionKind = "GENERIC_FAILURE"
)

func (k RejectionKind) String() string {
	return string(k)
}

// Rejection is the structured reason a lease request was refused.
// Only the payload fields relevant to Kind are set.
type Rejection struct {
	Kind  RejectionKind
	Hours []HourKey
	Days  []DayKey
	Cap   int
	// Cause is kept for the host; it is never rendered into the message.
	Cause error
}

func MasterNotFound() Rejection {
	return Rejection{Kind: KindMasterNotFound}
}

func ResourceNotFound() Rejection {
	return Rejection{Kind: KindResourceNotFound}
}

func HourConflict(hours []HourKey) Rejection {
	return Rejection{Kind: KindHourConflict, Hours: hours}
}

func DailyOvertimeLimit(dailyCap int, days []DayKey) Rejection {
	return Rejection{Kind: KindDailyOvertimeLimit, Days: days, Cap: dailyCap}
}

func GenericFailure(cause error) Rejection {
	return Rejection{Kind: KindGenericFailure, Cause: cause}
}

func (r Rejection) HourStrings() []string {
	out := make([]string, len(r.Hours))
	for i, h := range r.Hours {
		out[i] = string(h)
	}
	return out
}

func (r Rejection) DayStrings() []string {
	out := make([]string, len(r.Days))
	for i, d := range r.Days {
		out[i] = string(d)
	}
	return out
}
