package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	keyPrefix = "hvac:datapoint:"
	genPrefix = "hvac:datapoint-gen:"
)

// errStale aborts a cache fill that raced with a write to the same path.
var errStale = errors.New("datapoint changed while it was being read")

// DataPointStore is the durable side of the cache.
type DataPointStore interface {
	GetDataPoint(ctx context.Context, path string) (*domain.DataPoint, error)
	UpsertDataPoint(ctx context.Context, dp *domain.DataPoint) error
	DeleteDataPoint(ctx context.Context, path string) error
}

// DataPoints is a read-through Redis cache in front of the DataPoints table.
// Redis being unavailable degrades to reading the store directly.
//
// Every write bumps a per-path generation counter. A read only fills the cache
// if the generation it saw before reading the store is still current, so a
// read that overlaps a Put or Delete can never put the old row back.
type DataPoints struct {
	store DataPointStore
	rdb   *redis.Client
	ttl   time.Duration
}

func NewRedisClient(addr string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, DB: db})
}

func NewDataPoints(store DataPointStore, rdb *redis.Client, ttl time.Duration) *DataPoints {
	return &DataPoints{store: store, rdb: rdb, ttl: ttl}
}

func key(path string) string    { return keyPrefix + path }
func genKey(path string) string { return genPrefix + path }

func (c *DataPoints) Get(ctx context.Context, path string) (*domain.DataPoint, error) {
	raw, err := c.rdb.Get(ctx, key(path)).Bytes()
	switch {
	case err == nil:
		var dp domain.DataPoint
		if err := json.Unmarshal(raw, &dp); err == nil {
			return &dp, nil
		}
		log.Warn().Str("path", path).Msg("dropping undecodable cached datapoint")
	case err != redis.Nil:
		log.Warn().Err(err).Str("path", path).Msg("datapoint cache read failed")
	}

	gen, genErr := c.generation(ctx, path)
	dp, err := c.store.GetDataPoint(ctx, path)
	if err != nil {
		return nil, err
	}
	if genErr == nil {
		c.fill(ctx, path, gen, dp)
	}
	return dp, nil
}

func (c *DataPoints) generation(ctx context.Context, path string) (int64, error) {
	gen, err := c.rdb.Get(ctx, genKey(path)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// fill caches dp unless the path was written after generation gen was read.
func (c *DataPoints) fill(ctx context.Context, path string, gen int64, dp *domain.DataPoint) {
	raw, err := json.Marshal(dp)
	if err != nil {
		return
	}
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey(path)).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key(path), raw, c.ttl)
			return nil
		})
		return err
	}, genKey(path))
	switch {
	case err == nil:
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		log.Debug().Str("path", path).Msg("skipping cache fill for rewritten datapoint")
	default:
		log.Warn().Err(err).Str("path", path).Msg("datapoint cache write failed")
	}
}

// Put writes dp through to the store and evicts the cached copy.
func (c *DataPoints) Put(ctx context.Context, dp *domain.DataPoint) error {
	if err := c.store.UpsertDataPoint(ctx, dp); err != nil {
		return err
	}
	c.evict(ctx, dp.Path)
	return nil
}

func (c *DataPoints) Delete(ctx context.Context, path string) error {
	if err := c.store.DeleteDataPoint(ctx, path); err != nil {
		return err
	}
	c.evict(ctx, path)
	return nil
}

func (c *DataPoints) evict(ctx context.Context, path string) {
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, genKey(path))
		p.Del(ctx, key(path))
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("datapoint cache evict failed")
	}
}
