package master

import (
	"strings"

	"lease-market/internal/pkg/errs"
)

var (
	ErrInvalidMasterID   = errs.New("master id must be positive")
	ErrMasterNameTooLong = errs.New("master name is too long (max 255 characters)")
)

const MaxMasterNameLength = 255

// Master leases resources. VIP masters may override hours held by non-VIP masters.
type Master struct {
	id   int64
	name string
	vip  bool
}

func NewMaster(id int64, name string, vip bool) (*Master, error) {
	if id <= 0 {
		return nil, ErrInvalidMasterID
	}
	name = strings.TrimSpace(name)
	if len(name) > MaxMasterNameLength {
		return nil, ErrMasterNameTooLong
	}

	return &Master{
		id:   id,
		name: name,
		vip:  vip,
	}, nil
}

func (m *Master) ID() int64    { return m.id }
func (m *Master) Name() string { return m.name }
func (m *Master) IsVIP() bool  { return m.vip }
