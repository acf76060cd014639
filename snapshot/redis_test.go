// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package snapshot

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/woozymasta/ugcprompt"
)

// mapRedisClient serves GET, SET and DEL from a map; other commands are not implemented.
type mapRedisClient struct {
	redis.UniversalClient

	values map[string][]byte
	ttls   map[string]time.Duration
}

func newMapRedisClient() *mapRedisClient {
	return &mapRedisClient{
		values: map[string][]byte{},
		ttls:   map[string]time.Duration{},
	}
}

func (c *mapRedisClient) Get(_ context.Context, key string) *redis.StringCmd {
	value, ok := c.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(string(value), nil)
}

func (c *mapRedisClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	data, ok := value.([]byte)
	if !ok {
		return redis.NewStatusResult("", errors.New("unexpected value type"))
	}

	c.values[key] = append([]byte(nil), data...)
	c.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (c *mapRedisClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := c.values[key]; ok {
			delete(c.values, key)
			delete(c.ttls, key)
			removed++
		}
	}

	return redis.NewIntResult(removed, nil)
}

func TestRedisStoreCommands(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newMapRedisClient()
	store := NewRedisStoreWithClient(client, time.Hour, "")

	if _, err := store.Load(ctx, DefaultKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load missing: expected ErrNotFound, got %v", err)
	}

	if err := store.Save(ctx, DefaultKey, []byte("payload")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	redisKey := "ugcprompt:" + DefaultKey
	if string(client.values[redisKey]) != "payload" || client.ttls[redisKey] != time.Hour {
		t.Fatalf("unexpected stored entry: %q ttl=%s", client.values[redisKey], client.ttls[redisKey])
	}

	data, err := store.Load(ctx, DefaultKey)
	if err != nil || string(data) != "payload" {
		t.Fatalf("Load = %q, %v", data, err)
	}

	if err := store.Delete(ctx, DefaultKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := store.Delete(ctx, DefaultKey); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}

	if _, err := store.Load(ctx, DefaultKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load deleted: expected ErrNotFound, got %v", err)
	}

	if err := store.Save(ctx, "", nil); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Save blank key: expected ErrInvalidKey, got %v", err)
	}
}

func TestRedisStoreWithManager(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := &Manager{Store: NewRedisStoreWithClient(newMapRedisClient(), 0, "test:")}

	restored := manager.Restore(ctx)
	if restored.Source != SourceDefault || restored.Warning != nil {
		t.Fatalf("missing redis snapshot must restore default silently: %+v", restored)
	}

	if err := manager.Save(ctx, ugcprompt.PresetState("talking-head-studio")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if restored = manager.Restore(ctx); restored.Source != SourceSnapshot || restored.State.Device != ugcprompt.DeviceDSLR {
		t.Fatalf("unexpected restore result: %+v", restored)
	}
}

func TestRedisStoreKeyPrefix(t *testing.T) {
	t.Parallel()

	store, err := NewRedisStore(RedisOptions{Addr: "127.0.0.1:6379", TTL: -time.Second})
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	if got := store.redisKey(DefaultKey); got != "ugcprompt:"+DefaultKey {
		t.Fatalf("redisKey = %q", got)
	}

	if store.ttl != 0 {
		t.Fatalf("negative ttl not clamped: %s", store.ttl)
	}
}

func TestRedisStoreUnreachable(t *testing.T) {
	t.Parallel()

	store, err := NewRedisStore(RedisOptions{Addr: "127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = store.Load(ctx, DefaultKey)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

// TestRedisStoreIntegration runs against a live server named by
// UGCPROMPT_TEST_REDIS_ADDR.
func TestRedisStoreIntegration(t *testing.T) {
	addr := os.Getenv("UGCPROMPT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("UGCPROMPT_TEST_REDIS_ADDR is not set")
	}

	store, err := NewRedisStore(RedisOptions{Addr: addr, TTL: time.Minute, Prefix: "ugcprompt-test:"})
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	ctx := context.Background()
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	key := "integration-" + time.Now().Format("150405.000000")
	if err := store.Save(ctx, key, []byte("payload")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := store.Load(ctx, key)
	if err != nil || string(data) != "payload" {
		t.Fatalf("Load = %q, %v", data, err)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := store.Load(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
