package aclcache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// DefaultCacheKey is the redis key used when none is configured.
const DefaultCacheKey = "acl"

// RedisStore shares the compiled table across processes through a redis key.
// The table is stored as a single JSON value with no TTL; invalidation is
// explicit via Clear.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore creates a store over the given client and key. An empty key
// falls back to DefaultCacheKey. A nil client fails fast; a missing backend
// is a deployment misconfiguration.
func NewRedisStore(client redis.UniversalClient, key string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == "" {
		key = DefaultCacheKey
	}
	return &RedisStore{client: client, key: key}, nil
}

// Get fetches and decodes the cached table. A missing key is a miss, not an
// error; a corrupt payload is surfaced so the caller can recompile.
func (s *RedisStore) Get(ctx context.Context) (acl.AccessTable, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrReadFailed, err)
	}

	var table acl.AccessTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, false, errors.Join(ErrDecodeFailed, err)
	}
	return table, true, nil
}

// Set encodes and stores the table.
func (s *RedisStore) Set(ctx context.Context, table acl.AccessTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Clear deletes the cached table.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
