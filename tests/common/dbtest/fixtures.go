//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestMaster(t *testing.T, db DBLike, id int64, name string, vip bool) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO masters (id, name, is_vip) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, is_vip = EXCLUDED.is_vip",
		id, name, vip)
	require.NoError(t, err)
}

func CreateTestResource(t *testing.T, db DBLike, id int64, name, pricePerHour string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, name, price_per_hour) VALUES ($1, $2, $3::numeric) ON CONFLICT (id) DO NOTHING",
		id, name, pricePerHour)
	require.NoError(t, err)
}

func CountContracts(t *testing.T, db DBLike, resourceID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM lease_contracts WHERE resource_id = $1", resourceID).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the masters and resource every e2e test starts from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO masters (id, name, is_vip) VALUES
		    (1, 'Lord Vader', false),
		    (2, 'Luke', false),
		    (3, 'Emperor', true)
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO resources (id, name, price_per_hour) VALUES
		    (1, 'Uncle Tom', 10.00)
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
