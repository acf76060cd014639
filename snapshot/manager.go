// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/woozymasta/ugcprompt"
)

// Source tells where a restored state came from.
type Source string

const (
	// SourceSnapshot marks a state decoded from the store.
	SourceSnapshot Source = "snapshot"
	// SourceDefault marks the blank default state.
	SourceDefault Source = "default"
)

// Restored is the outcome of Manager.Restore.
type Restored struct {
	// State is always usable as builder input.
	State ugcprompt.State
	// Source tells whether State came from the store or is the default.
	Source Source
	// Normalized lists fields whose unknown values were replaced by defaults.
	Normalized []string
	// Validation holds advisory validation results for State.
	Validation ugcprompt.ValidationResult
	// Warning is the load or decode failure that forced the default state.
	Warning error
}

// Manager saves and restores builder state through a Store.
type Manager struct {
	Store Store
	// Key selects the snapshot; empty means DefaultKey.
	Key string
	// Strict discards snapshots that fail validation.
	Strict bool
	// Log receives restore diagnostics; nil discards them.
	Log logrus.FieldLogger
}

// Save encodes state as JSON and writes it to the store. State is saved as
// is; invalid drafts are persisted too.
func (m *Manager) Save(ctx context.Context, state ugcprompt.State) error {
	data, err := ugcprompt.EncodeState(state, ugcprompt.StateFormatJSON)
	if err != nil {
		return err
	}

	if err := m.Store.Save(ctx, m.key(), data); err != nil {
		return fmt.Errorf("save snapshot %q: %w", m.key(), err)
	}

	m.logger().Debug("snapshot saved")
	return nil
}

// Restore loads the snapshot. It never fails: missing, unreadable or
// undecodable snapshots yield the default state.
func (m *Manager) Restore(ctx context.Context) Restored {
	log := m.logger()

	data, err := m.Store.Load(ctx, m.key())
	if errors.Is(err, ErrNotFound) {
		log.Debug("no snapshot, using default state")
		return defaultRestored(nil)
	}

	if err != nil {
		log.WithError(err).Warn("snapshot load failed, using default state")
		return defaultRestored(err)
	}

	state, err := ugcprompt.DecodeState(data, ugcprompt.StateFormatJSON)
	if err != nil {
		log.WithError(err).Warn("snapshot is corrupt, using default state")
		return defaultRestored(err)
	}

	normalized := state.Normalize()
	if len(normalized) > 0 {
		log.WithField("fields", strings.Join(normalized, ",")).Info("snapshot values replaced by defaults")
	}

	validation := ugcprompt.Validate(state)
	if !validation.Valid() {
		entry := log.WithField("errors", len(validation.Errors))
		if m.Strict {
			entry.Warn("snapshot is invalid, using default state")
			return defaultRestored(validation.Err())
		}

		entry.Info("snapshot restored with validation errors")
	}

	return Restored{
		State:      state,
		Source:     SourceSnapshot,
		Normalized: normalized,
		Validation: validation,
	}
}

// Reset deletes the snapshot.
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.Store.Delete(ctx, m.key()); err != nil {
		return fmt.Errorf("reset snapshot %q: %w", m.key(), err)
	}

	m.logger().Debug("snapshot removed")
	return nil
}

func (m *Manager) key() string {
	if key := strings.TrimSpace(m.Key); key != "" {
		return key
	}

	return DefaultKey
}

func (m *Manager) logger() logrus.FieldLogger {
	log := m.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return log.WithFields(logrus.Fields{
		"key":     m.key(),
		"backend": backendName(m.Store),
	})
}

// backendName names the store type for log fields.
func backendName(store Store) string {
	switch store.(type) {
	case *FileStore:
		return BackendFile
	case *MemoryStore:
		return BackendMemory
	case *RedisStore:
		return BackendRedis
	default:
		return fmt.Sprintf("%T", store)
	}
}

func defaultRestored(warning error) Restored {
	state := ugcprompt.DefaultState()
	return Restored{
		State:      state,
		Source:     SourceDefault,
		Validation: ugcprompt.Validate(state),
		Warning:    warning,
	}
}
