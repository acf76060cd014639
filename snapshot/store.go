// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

// Package snapshot persists builder state between sessions.
//
// A Store keeps opaque snapshot blobs by key; Manager encodes builder state
// into them and restores it with fallbacks, so a corrupt or outdated snapshot
// never blocks the builder.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultKey is the snapshot key used by the builder.
const DefaultKey = "ugc-sora-builder-state"

var (
	// ErrNotFound is returned by Store.Load when no snapshot exists for the key.
	ErrNotFound = errors.New("snapshot not found")
	// ErrInvalidKey is returned for empty keys or keys a backend cannot address.
	ErrInvalidKey = errors.New("invalid snapshot key")
	// ErrUnknownBackend is returned by Open for unsupported backend names.
	ErrUnknownBackend = errors.New("unknown snapshot backend")
)

// Store is a key/value blob store for snapshots.
type Store interface {
	// Load returns the stored blob or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes the blob; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config selects and configures a Store backend.
type Config struct {
	// Backend is one of BackendFile, BackendMemory, BackendRedis.
	Backend string
	// Dir is the FileStore directory.
	Dir string
	// Redis configures RedisStore.
	Redis RedisOptions
}

// Open builds the store selected by cfg.Backend. The returned close func
// releases backend resources and is never nil.
func Open(cfg Config) (Store, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendFile:
		return NewFileStore(cfg.Dir), noop, nil
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendRedis:
		store, err := NewRedisStore(cfg.Redis)
		if err != nil {
			return nil, noop, err
		}

		return store, store.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w %q", ErrUnknownBackend, cfg.Backend)
	}
}

// checkKey rejects blank keys.
func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	return nil
}
