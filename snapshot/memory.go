// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package snapshot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps snapshots in process memory. Entries never expire.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := checkKey(key); err != nil {
		return nil, err
	}

	value, ok := s.cache.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return bytes.Clone(data), nil
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := checkKey(key); err != nil {
		return err
	}

	s.cache.Set(key, bytes.Clone(data), cache.NoExpiration)
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := checkKey(key); err != nil {
		return err
	}

	s.cache.Delete(key)
	return nil
}

// Len returns the number of stored snapshots.
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}
