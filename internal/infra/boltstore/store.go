// Package boltstore keeps masters, resources and lease contracts in a single
// BoltDB file. It implements the same repository ports as the postgres backend
// and suits single-node deployments and tests.
//
// Contracts are keyed by resource id followed by a bucket sequence number, so a
// prefix scan returns one resource's contracts in creation order.
package boltstore

import (
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"lease-market/internal/pkg/clock"
	"lease-market/internal/pkg/errs"

	bolt "github.com/boltdb/bolt"
)

var (
	bucketMasters   = []byte("masters")
	bucketResources = []byte("resources")
	bucketContracts = []byte("contracts")
)

type Store struct {
	db     *bolt.DB
	clock  clock.Clock
	logger *slog.Logger
}

// Open opens (or creates) the database at path and ensures every bucket exists.
func Open(path string, timeout time.Duration, clk clock.Clock, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errs.Wrap(err, "failed to create bolt directory")
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, errs.Wrap(err, "failed to open bolt database")
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketMasters, bucketResources, bucketContracts} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "failed to create bolt buckets")
	}

	if clk == nil {
		clk = clock.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{db: db, clock: clk, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Masters() *MasterRepository {
	return &MasterRepository{store: s}
}

func (s *Store) Resources() *ResourceRepository {
	return &ResourceRepository{store: s}
}

func (s *Store) Contracts() *ContractRepository {
	return &ContractRepository{store: s}
}

func idKey(id int64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

func contractKey(resourceID int64, seq uint64) []byte {
	k := make([]byte, 16)
	binary.BigEndian.PutUint64(k[:8], uint64(resourceID))
	binary.BigEndian.PutUint64(k[8:], seq)
	return k
}
