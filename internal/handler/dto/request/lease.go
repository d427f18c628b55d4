package request

import (
	"fmt"
	"strings"
	"time"

	"lease-market/internal/pkg/errs"
	"lease-market/internal/usecase/leasing"
)

// MaxLeaseHours bounds how many hour units one request may expand to.
const MaxLeaseHours = 366 * 24

var ErrLeaseSpanTooLong = errs.New("lease span too long")

type CreateLeaseRequest struct {
	MasterID   int64  `json:"master_id" binding:"required,gt=0"`
	ResourceID int64  `json:"resource_id" binding:"required,gt=0"`
	TimeFrom   string `json:"time_from" binding:"required"`
	TimeTo     string `json:"time_to" binding:"required"`
}

// ToCommand leaves timestamp parsing to the engine.
func (r CreateLeaseRequest) ToCommand() leasing.Request {
	return leasing.Request{
		MasterID:   r.MasterID,
		ResourceID: r.ResourceID,
		TimeFrom:   strings.TrimSpace(r.TimeFrom),
		TimeTo:     strings.TrimSpace(r.TimeTo),
	}
}

// Validate rejects spans longer than MaxLeaseHours before the engine expands them.
// Unparsable or inverted ranges pass through; the engine reports those.
func (r CreateLeaseRequest) Validate() error {
	from, to, err := r.ToCommand().Range()
	if err != nil {
		return nil
	}
	if hours := int64(to.Sub(from)/time.Hour) + 1; hours > MaxLeaseHours {
		return errs.Wrap(ErrLeaseSpanTooLong, fmt.Sprintf("%d hours requested", hours))
	}
	return nil
}

type ContractsQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}
