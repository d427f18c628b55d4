//go:build unit

package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lease-market/internal/catalog"
	"lease-market/internal/domain/master"
	"lease-market/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[[masters]]
id = 1
name = "Lord Vader"
vip = true

[[masters]]
id = 2
name = "Luke"

[[resources]]
id = 1
name = "Uncle Tom"
price_per_hour = "10.00"

[[resources]]
id = 2
name = "R2"
price_per_hour = "2.5"
daily_hour_cap = 8
`

type memWriter struct {
	masters   []*master.Master
	resources []*resource.Resource
	failOn    int64
}

func (w *memWriter) Upsert(_ context.Context, m *master.Master) error {
	if m.ID() == w.failOn {
		return errors.New("write failed")
	}
	w.masters = append(w.masters, m)
	return nil
}

type memResourceWriter struct{ w *memWriter }

func (r memResourceWriter) Upsert(_ context.Context, res *resource.Resource) error {
	r.w.resources = append(r.w.resources, res)
	return nil
}

func TestDecode(t *testing.T) {
	t.Run("reads masters and resources", func(t *testing.T) {
		f, err := catalog.Decode(strings.NewReader(sample))
		require.NoError(t, err)

		require.Len(t, f.Masters, 2)
		require.Len(t, f.Resources, 2)
		assert.True(t, f.Masters[0].VIP)
		assert.Equal(t, 8, f.Resources[1].DailyHourCap)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader("[[masters]]\nid = 1\nname = \"x\"\nrank = 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rank")
	})

	t.Run("syntax errors surface", func(t *testing.T) {
		_, err := catalog.Decode(strings.NewReader("[[masters]\n"))
		assert.Error(t, err)
	})
}

func TestBuild(t *testing.T) {
	t.Run("default cap applies when omitted", func(t *testing.T) {
		f, err := catalog.Decode(strings.NewReader(sample))
		require.NoError(t, err)

		_, resources, err := f.Build()
		require.NoError(t, err)

		assert.Equal(t, resource.DefaultDailyHourCap, resources[0].DailyHourCap())
		assert.Equal(t, 8, resources[1].DailyHourCap())
		assert.Equal(t, "2.50", resources[1].PricePerHour().StringFixed(2))
	})

	t.Run("invalid entries fail the whole file", func(t *testing.T) {
		f := &catalog.File{Resources: []catalog.ResourceEntry{{ID: 1, Name: "x", PricePerHour: "ten"}}}
		_, _, err := f.Build()
		assert.Error(t, err)

		f = &catalog.File{Masters: []catalog.MasterEntry{{ID: 0, Name: "x"}}}
		_, _, err = f.Build()
		assert.ErrorIs(t, err, master.ErrInvalidMasterID)
	})
}

func TestLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("writes every entry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.toml")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

		f, err := catalog.ReadFile(path)
		require.NoError(t, err)

		w := &memWriter{}
		require.NoError(t, catalog.NewLoader(w, memResourceWriter{w}, nil).Load(ctx, f))

		assert.Len(t, w.masters, 2)
		assert.Len(t, w.resources, 2)
	})

	t.Run("write failure stops the load", func(t *testing.T) {
		f, err := catalog.Decode(strings.NewReader(sample))
		require.NoError(t, err)

		w := &memWriter{failOn: 1}
		err = catalog.NewLoader(w, memResourceWriter{w}, nil).Load(ctx, f)

		assert.Error(t, err)
		assert.Empty(t, w.resources)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.ReadFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
