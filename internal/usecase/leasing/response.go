package leasing

import (
	"lease-market/internal/domain/lease"
)

// Response carries either a contract or a non-empty list of errors, never both.
type Response struct {
	contract  *lease.Contract
	rejection *lease.Rejection
	errors    []string
}

func Accepted(c *lease.Contract) *Response {
	return &Response{contract: c}
}

func Rejected(rej lease.Rejection, message string) *Response {
	return &Response{rejection: &rej, errors: []string{message}}
}

func (r *Response) OK() bool {
	return r.contract != nil
}

func (r *Response) Contract() *lease.Contract {
	return r.contract
}

// Rejection is nil on success.
func (r *Response) Rejection() *lease.Rejection {
	return r.rejection
}

func (r *Response) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}
