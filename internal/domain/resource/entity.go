package resource

import (
	"strings"

	"lease-market/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidResourceID   = errs.New("resource id must be positive")
	ErrEmptyResourceName   = errs.New("resource name cannot be empty")
	ErrResourceNameTooLong = errs.New("resource name is too long (max 255 characters)")
	ErrNegativeRate        = errs.New("price per hour cannot be negative")
	ErrInvalidDailyCap     = errs.New("daily hour cap must be between 1 and 23")
)

const (
	MaxResourceNameLength = 255

	// DefaultDailyHourCap is the number of hours a resource may work per day.
	// A full 24-hour lease is billed at this many hours.
	DefaultDailyHourCap = 16

	priceScale = 2
)

type Resource struct {
	id           int64
	name         string
	pricePerHour decimal.Decimal
	dailyHourCap int
}

type Option func(*Resource)

func WithDailyHourCap(hours int) Option {
	return func(r *Resource) {
		r.dailyHourCap = hours
	}
}

func NewResource(id int64, name string, pricePerHour decimal.Decimal, opts ...Option) (*Resource, error) {
	if id <= 0 {
		return nil, ErrInvalidResourceID
	}
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if pricePerHour.IsNegative() {
		return nil, ErrNegativeRate
	}

	r := &Resource{
		id:           id,
		name:         strings.TrimSpace(name),
		pricePerHour: pricePerHour,
		dailyHourCap: DefaultDailyHourCap,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.dailyHourCap < 1 || r.dailyHourCap >= 24 {
		return nil, ErrInvalidDailyCap
	}

	return r, nil
}

// LeasePrice is pricePerHour * payableHours rounded to cents.
func (r *Resource) LeasePrice(payableHours int) decimal.Decimal {
	return r.pricePerHour.Mul(decimal.NewFromInt(int64(payableHours))).Round(priceScale)
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() int64                     { return r.id }
func (r *Resource) Name() string                  { return r.name }
func (r *Resource) PricePerHour() decimal.Decimal { return r.pricePerHour }
func (r *Resource) DailyHourCap() int             { return r.dailyHourCap }
