package boltstore

import (
	"context"
	"encoding/json"

	"lease-market/internal/domain/master"
	"lease-market/internal/domain/resource"
	"lease-market/internal/infra"

	bolt "github.com/boltdb/bolt"
	"github.com/shopspring/decimal"
)

type masterRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	VIP  bool   `json:"vip"`
}

type resourceRecord struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PricePerHour string `json:"price_per_hour"`
	DailyHourCap int    `json:"daily_hour_cap"`
}

func (r masterRecord) toDomain() (*master.Master, error) {
	return master.NewMaster(r.ID, r.Name, r.VIP)
}

func (r resourceRecord) toDomain() (*resource.Resource, error) {
	rate, err := decimal.NewFromString(r.PricePerHour)
	if err != nil {
		return nil, err
	}
	return resource.NewResource(r.ID, r.Name, rate, resource.WithDailyHourCap(r.DailyHourCap))
}

type MasterRepository struct {
	store *Store
}

func (r *MasterRepository) FindByID(_ context.Context, id int64) (*master.Master, error) {
	var m *master.Master
	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		m, err = getMaster(tx, id)
		return err
	})
	if err != nil {
		return nil, r.store.wrap(err, "failed to find master by ID")
	}
	return m, nil
}

func (r *MasterRepository) Upsert(_ context.Context, m *master.Master) error {
	rec := masterRecord{ID: m.ID(), Name: m.Name(), VIP: m.IsVIP()}
	return r.store.put(bucketMasters, idKey(m.ID()), rec, "failed to upsert master")
}

type ResourceRepository struct {
	store *Store
}

func (r *ResourceRepository) FindByID(_ context.Context, id int64) (*resource.Resource, error) {
	var res *resource.Resource
	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		res, err = getResource(tx, id)
		return err
	})
	if err != nil {
		return nil, r.store.wrap(err, "failed to find resource by ID")
	}
	return res, nil
}

func (r *ResourceRepository) Upsert(_ context.Context, res *resource.Resource) error {
	rec := resourceRecord{
		ID:           res.ID(),
		Name:         res.Name(),
		PricePerHour: res.PricePerHour().String(),
		DailyHourCap: res.DailyHourCap(),
	}
	return r.store.put(bucketResources, idKey(res.ID()), rec, "failed to upsert resource")
}

func getMaster(tx *bolt.Tx, id int64) (*master.Master, error) {
	v := tx.Bucket(bucketMasters).Get(idKey(id))
	if v == nil {
		return nil, errNotFound("master not found")
	}
	var rec masterRecord
	if err := json.Unmarshal(v, &rec); err != nil {
		return nil, errDecode(err)
	}
	m, err := rec.toDomain()
	if err != nil {
		return nil, errDecode(err)
	}
	return m, nil
}

func getResource(tx *bolt.Tx, id int64) (*resource.Resource, error) {
	v := tx.Bucket(bucketResources).Get(idKey(id))
	if v == nil {
		return nil, errNotFound("resource not found")
	}
	var rec resourceRecord
	if err := json.Unmarshal(v, &rec); err != nil {
		return nil, errDecode(err)
	}
	res, err := rec.toDomain()
	if err != nil {
		return nil, errDecode(err)
	}
	return res, nil
}

func (s *Store) put(bucket, key []byte, v any, msg string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, msg, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, data)
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, msg, err)
	}
	return nil
}
