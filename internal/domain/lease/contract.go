package lease

import (
	"time"

	"lease-market/internal/domain/master"
	"lease-market/internal/domain/resource"
	"lease-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNilMaster     = errs.New("contract requires a master")
	ErrNilResource   = errs.New("contract requires a resource")
	ErrNegativePrice = errs.New("price cannot be negative")
)

// Contract is immutable once built. hourIndex always mirrors hours.
type Contract struct {
	id        uuid.UUID
	master    *master.Master
	resource  *resource.Resource
	price     decimal.Decimal
	hours     []HourUnit
	hourIndex map[HourKey]HourUnit
	createdAt time.Time
}

func NewContract(m *master.Master, r *resource.Resource, price decimal.Decimal, hours []HourUnit) (*Contract, error) {
	if m == nil {
		return nil, ErrNilMaster
	}
	if r == nil {
		return nil, ErrNilResource
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return newContract(uuid.Nil, m, r, price, hours, time.Time{}), nil
}

func ReconstructContract(
	id uuid.UUID,
	m *master.Master,
	r *resource.Resource,
	price decimal.Decimal,
	hours []HourUnit,
	createdAt time.Time,
) *Contract {
	return newContract(id, m, r, price, hours, createdAt)
}

func newContract(
	id uuid.UUID,
	m *master.Master,
	r *resource.Resource,
	price decimal.Decimal,
	hours []HourUnit,
	createdAt time.Time,
) *Contract {
	owned := make([]HourUnit, len(hours))
	copy(owned, hours)

	index := make(map[HourKey]HourUnit, len(owned))
	for _, h := range owned {
		index[h.Key()] = h
	}

	return &Contract{
		id:        id,
		master:    m,
		resource:  r,
		price:     price,
		hours:     owned,
		hourIndex: index,
		createdAt: createdAt,
	}
}

func (c *Contract) Holds(key HourKey) bool {
	_, ok := c.hourIndex[key]
	return ok
}

func (c *Contract) Hours() []HourUnit {
	out := make([]HourUnit, len(c.hours))
	copy(out, c.hours)
	return out
}

func (c *Contract) HourIndex() map[HourKey]HourUnit {
	out := make(map[HourKey]HourUnit, len(c.hourIndex))
	for k, v := range c.hourIndex {
		out[k] = v
	}
	return out
}

func (c *Contract) HourKeys() []HourKey {
	keys := make([]HourKey, len(c.hours))
	for i, h := range c.hours {
		keys[i] = h.Key()
	}
	return keys
}

// Span returns the first and last leased hour. ok is false for an empty contract.
func (c *Contract) Span() (first, last HourUnit, ok bool) {
	if len(c.hours) == 0 {
		return HourUnit{}, HourUnit{}, false
	}
	return c.hours[0], c.hours[len(c.hours)-1], true
}

func (c *Contract) ID() uuid.UUID                { return c.id }
func (c *Contract) Master() *master.Master       { return c.master }
func (c *Contract) Resource() *resource.Resource { return c.resource }
func (c *Contract) Price() decimal.Decimal       { return c.price }
func (c *Contract) CreatedAt() time.Time         { return c.createdAt }
