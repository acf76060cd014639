// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultRedisPrefix namespaces snapshot keys in a shared database.
	defaultRedisPrefix = "ugcprompt:"
	// redisDialTimeout bounds connection setup.
	redisDialTimeout = 5 * time.Second
)

// RedisOptions configures RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// TTL expires snapshots after the last save; zero keeps them forever.
	TTL time.Duration
	// Prefix is prepended to every key; empty selects "ugcprompt:".
	Prefix string
}

// RedisStore keeps snapshots in Redis.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

// NewRedisStore connects to the configured server. The connection is lazy;
// the first command reports an unreachable server.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, errors.New("redis snapshot store: missing address")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: redisDialTimeout,
	})

	return NewRedisStoreWithClient(client, opts.TTL, opts.Prefix), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client redis.UniversalClient, ttl time.Duration, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	if ttl < 0 {
		ttl = 0
	}

	return &RedisStore{client: client, ttl: ttl, prefix: prefix}
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", s.redisKey(key), err)
	}

	return data, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.redisKey(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", s.redisKey(key), err)
	}

	return nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", s.redisKey(key), err)
	}

	return nil
}

// Ping checks server reachability.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client connections.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) redisKey(key string) string {
	return s.prefix + key
}
