// Package catalog loads masters and resources from a TOML file into a backend.
//
//	[[masters]]
//	id = 1
//	name = "Lord Vader"
//	vip = true
//
//	[[resources]]
//	id = 1
//	name = "Uncle Tom"
//	price_per_hour = "10.00"
//	daily_hour_cap = 16
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"lease-market/internal/domain/master"
	"lease-market/internal/domain/resource"
	"lease-market/internal/pkg/errs"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

type File struct {
	Masters   []MasterEntry   `toml:"masters"`
	Resources []ResourceEntry `toml:"resources"`
}

type MasterEntry struct {
	ID   int64  `toml:"id"`
	Name string `toml:"name"`
	VIP  bool   `toml:"vip"`
}

type ResourceEntry struct {
	ID           int64  `toml:"id"`
	Name         string `toml:"name"`
	PricePerHour string `toml:"price_per_hour"`
	DailyHourCap int    `toml:"daily_hour_cap"`
}

type MasterWriter interface {
	Upsert(ctx context.Context, m *master.Master) error
}

type ResourceWriter interface {
	Upsert(ctx context.Context, r *resource.Resource) error
}

func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open catalog")
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*File, error) {
	var file File
	meta, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode catalog")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(fmt.Sprintf("unknown catalog keys: %v", undecoded))
	}
	return &file, nil
}

// Build validates every entry and converts it to domain entities.
func (f *File) Build() ([]*master.Master, []*resource.Resource, error) {
	masters := make([]*master.Master, 0, len(f.Masters))
	for _, e := range f.Masters {
		m, err := master.NewMaster(e.ID, e.Name, e.VIP)
		if err != nil {
			return nil, nil, errs.Wrap(err, fmt.Sprintf("master %d", e.ID))
		}
		masters = append(masters, m)
	}

	resources := make([]*resource.Resource, 0, len(f.Resources))
	for _, e := range f.Resources {
		rate, err := decimal.NewFromString(e.PricePerHour)
		if err != nil {
			return nil, nil, errs.Wrap(err, fmt.Sprintf("resource %d: price_per_hour", e.ID))
		}
		var opts []resource.Option
		if e.DailyHourCap != 0 {
			opts = append(opts, resource.WithDailyHourCap(e.DailyHourCap))
		}
		r, err := resource.NewResource(e.ID, e.Name, rate, opts...)
		if err != nil {
			return nil, nil, errs.Wrap(err, fmt.Sprintf("resource %d", e.ID))
		}
		resources = append(resources, r)
	}

	return masters, resources, nil
}

type Loader struct {
	masters   MasterWriter
	resources ResourceWriter
	logger    *slog.Logger
}

func NewLoader(masters MasterWriter, resources ResourceWriter, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{masters: masters, resources: resources, logger: logger}
}

// Load validates the whole file before writing anything.
func (l *Loader) Load(ctx context.Context, f *File) error {
	masters, resources, err := f.Build()
	if err != nil {
		return err
	}

	for _, m := range masters {
		if err := l.masters.Upsert(ctx, m); err != nil {
			return errs.Wrap(err, fmt.Sprintf("failed to store master %d", m.ID()))
		}
	}
	for _, r := range resources {
		if err := l.resources.Upsert(ctx, r); err != nil {
			return errs.Wrap(err, fmt.Sprintf("failed to store resource %d", r.ID()))
		}
	}

	l.logger.Info("catalog loaded", slog.Int("masters", len(masters)), slog.Int("resources", len(resources)))
	return nil
}
