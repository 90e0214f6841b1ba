package replication

import (
	"context"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// MemoryCursors keeps cursors in process memory.
type MemoryCursors struct {
	mu      sync.Mutex
	cursors map[string]uint64
}

// NewMemoryCursors returns an empty cursor store.
func NewMemoryCursors() *MemoryCursors {
	return &MemoryCursors{cursors: make(map[string]uint64)}
}

// Load returns the cursor, zero when unset.
func (m *MemoryCursors) Load(_ context.Context, name string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursors[name], nil
}

// Save records the cursor.
func (m *MemoryCursors) Save(_ context.Context, name string, version uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursors[name] = version
	return nil
}

// RedisCursors keeps cursors as plain Redis strings under a key prefix.
type RedisCursors struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCursors stores cursors at prefix+name.
func NewRedisCursors(client redis.UniversalClient, prefix string) *RedisCursors {
	return &RedisCursors{client: client, prefix: prefix}
}

// Load returns the cursor, zero when the key is missing.
func (r *RedisCursors) Load(ctx context.Context, name string) (uint64, error) {
	raw, err := r.client.Get(ctx, r.prefix+name).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "get cursor")
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse cursor %q", raw)
	}
	return v, nil
}

// Save records the cursor without expiry.
func (r *RedisCursors) Save(ctx context.Context, name string, version uint64) error {
	if err := r.client.Set(ctx, r.prefix+name, strconv.FormatUint(version, 10), 0).Err(); err != nil {
		return errors.Wrap(err, "set cursor")
	}
	return nil
}
