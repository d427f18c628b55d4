package boltstore

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/infra"
	"lease-market/internal/pkg/errs"

	bolt "github.com/boltdb/bolt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errEmptyContract = errs.New("contract has no hours")

type contractRecord struct {
	ID         uuid.UUID `json:"id"`
	MasterID   int64     `json:"master_id"`
	ResourceID int64     `json:"resource_id"`
	Price      string    `json:"price"`
	FirstDay   string    `json:"first_day"`
	LastDay    string    `json:"last_day"`
	Hours      []string  `json:"hours"`
	CreatedAt  time.Time `json:"created_at"`
}

type ContractRepository struct {
	store *Store
}

// FindForResource returns the resource's contracts touching any day in
// [fromDay, toDay], in the order they were saved.
func (r *ContractRepository) FindForResource(_ context.Context, resourceID int64, fromDay, toDay lease.DayKey) ([]*lease.Contract, error) {
	contracts := []*lease.Contract{}
	prefix := idKey(resourceID)

	err := r.store.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketContracts).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var rec contractRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return errDecode(err)
			}
			if rec.LastDay < fromDay.String() || rec.FirstDay > toDay.String() {
				continue
			}
			contract, err := rec.toDomain(tx)
			if err != nil {
				return err
			}
			contracts = append(contracts, contract)
		}
		return nil
	})
	if err != nil {
		return nil, r.store.wrap(err, "failed to find contracts for resource")
	}
	return contracts, nil
}

func (r *ContractRepository) Save(_ context.Context, contract *lease.Contract) (*lease.Contract, error) {
	first, last, ok := contract.Span()
	if !ok {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindDecodeFailure, "refusing to save contract", errEmptyContract)
	}

	keys := contract.HourKeys()
	hours := make([]string, len(keys))
	for i, k := range keys {
		hours[i] = k.String()
	}

	rec := contractRecord{
		ID:         uuid.New(),
		MasterID:   contract.Master().ID(),
		ResourceID: contract.Resource().ID(),
		Price:      contract.Price().String(),
		FirstDay:   first.Day().String(),
		LastDay:    last.Day().String(),
		Hours:      hours,
		CreatedAt:  r.store.clock.Now(),
	}

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketContracts)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put(contractKey(rec.ResourceID, seq), data)
	})
	if err != nil {
		return nil, r.store.wrap(err, "failed to save contract")
	}

	return lease.ReconstructContract(rec.ID, contract.Master(), contract.Resource(), contract.Price(), contract.Hours(), rec.CreatedAt), nil
}

func (rec contractRecord) toDomain(tx *bolt.Tx) (*lease.Contract, error) {
	// A dangling reference is corruption, not a miss.
	m, err := getMaster(tx, rec.MasterID)
	if err != nil {
		return nil, errDecode(err)
	}
	res, err := getResource(tx, rec.ResourceID)
	if err != nil {
		return nil, errDecode(err)
	}
	price, err := decimal.NewFromString(rec.Price)
	if err != nil {
		return nil, errDecode(err)
	}

	hours := make([]lease.HourUnit, len(rec.Hours))
	for i, h := range rec.Hours {
		unit, err := lease.ParseHourKey(h)
		if err != nil {
			return nil, errDecode(err)
		}
		hours[i] = unit
	}

	return lease.ReconstructContract(rec.ID, m, res, price, hours, rec.CreatedAt), nil
}
