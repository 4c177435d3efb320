// Package cache wraps an optional Redis instance used to keep the hot
// reference lists (customers, products, vehicles) out of the database on
// every auto-fill keystroke. When Redis is unavailable the whole package
// degrades to no-ops and callers fall through to Postgres.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Reference list cache keys.
const (
	CustomersKey = "ref:customers"
	ProductsKey  = "ref:products"
	VehiclesKey  = "ref:vehicles"

	referenceTTL = 10 * time.Minute
)

var client *redis.Client

// Init connects to Redis at the given address. An empty address or a
// failed ping leaves the package in pass-through mode.
func Init(addr, password string) error {
	if addr == "" {
		return redis.ErrClosed
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCached returns cached data for a key.
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetReference stores a serialized reference list.
func SetReference(ctx context.Context, key string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, referenceTTL)
}

// InvalidateReferences drops the reference list caches. Called after any
// manual save, learner write or backup import.
func InvalidateReferences(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, CustomersKey, ProductsKey, VehiclesKey)
}

// IsHealthy returns true if the Redis connection is working.
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
