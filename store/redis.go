// Package store provides production SessionStore backends.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	salescoach "github.com/vertriebslab/salescoach-sdk-go"
)

// RedisSessionStore implements salescoach.SessionStore using Redis.
// Snapshots are stored as "{prefix}:{sessionID}" string values.
type RedisSessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	ctx    context.Context
}

// RedisStoreConfig configures the Redis store.
type RedisStoreConfig struct {
	Prefix string        // key prefix, default "salescoach:session"
	TTL    time.Duration // per-session expiry, 0 = no expiry
}

// NewRedisSessionStore creates a SessionStore backed by Redis.
// Works with a go-redis Client, ClusterClient or Ring.
func NewRedisSessionStore(client redis.UniversalClient, config ...RedisStoreConfig) *RedisSessionStore {
	cfg := RedisStoreConfig{Prefix: "salescoach:session"}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "salescoach:session"
	}
	return &RedisSessionStore{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		ctx:    context.Background(),
	}
}

func (r *RedisSessionStore) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, sessionID)
}

func (r *RedisSessionStore) Get(sessionID string) (string, error) {
	val, err := r.client.Get(r.ctx, r.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *RedisSessionStore) Put(sessionID, snapshot string) error {
	return r.client.Set(r.ctx, r.key(sessionID), snapshot, r.ttl).Err()
}

func (r *RedisSessionStore) Delete(sessionID string) error {
	return r.client.Del(r.ctx, r.key(sessionID)).Err()
}

func (r *RedisSessionStore) List() ([]string, error) {
	pattern := r.prefix + ":*"
	keys, err := r.client.Keys(r.ctx, pattern).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, r.prefix+":"))
	}
	return ids, nil
}

func (r *RedisSessionStore) Close() error {
	return r.client.Close()
}

// Compile-time interface check.
var _ salescoach.SessionStore = (*RedisSessionStore)(nil)
