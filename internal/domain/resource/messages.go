package resource

import (
	"fmt"
	"strings"
)

const (
	busyHoursTemplate      = `Error. Resource #%d "%s" is busy. Busy hours: %s`
	overloadedDaysTemplate = `Error. Resource #%d "%s" cannot work more than %d hours a day. Overloaded days: %s`
)

// ConflictMessage renders the busy-hours rejection for this resource.
func (r *Resource) ConflictMessage(hours []string) string {
	return fmt.Sprintf(busyHoursTemplate, r.id, r.name, quoteJoin(hours))
}

// OvertimeMessage renders the overloaded-days rejection for this resource.
func (r *Resource) OvertimeMessage(dailyCap int, days []string) string {
	return fmt.Sprintf(overloadedDaysTemplate, r.id, r.name, dailyCap, quoteJoin(days))
}

// quoteJoin renders ["a", "b"] as `"a", "b"`.
func quoteJoin(items []string) string {
	return `"` + strings.Join(items, `", "`) + `"`
}
