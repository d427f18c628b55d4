package leasing

import (
	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/resource"
)

const (
	MessageMasterNotFound   = "master not found"
	MessageResourceNotFound = "resource not found"
	MessageGenericFailure   = "Error"
)

// Render turns a rejection into its user-facing message. res may be nil for
// rejections raised before the resource is resolved.
func Render(rej lease.Rejection, res *resource.Resource) string {
	switch rej.Kind {
	case lease.KindMasterNotFound:
		return MessageMasterNotFound
	case lease.KindResourceNotFound:
		return MessageResourceNotFound
	case lease.KindHourConflict:
		if res != nil {
			return res.ConflictMessage(rej.HourStrings())
		}
	case lease.KindDailyOvertimeLimit:
		if res != nil {
			return res.OvertimeMessage(rej.Cap, rej.DayStrings())
		}
	}
	return MessageGenericFailure
}
