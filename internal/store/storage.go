// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Collection keys. The key names are part of the persisted layout and
// must not change.
const (
	KeyAdmins       = "eventhub_admins"
	KeyEvents       = "eventhub_events"
	KeyParticipants = "eventhub_participants"
)

// Storage reads and writes whole JSON collections keyed by name.
//
// There are no partial updates: every mutation reads the full
// collection, modifies it in memory, and writes the full collection
// back. Concurrent writers racing on read-modify-write can lose
// updates (last write wins, no merge). The shared *sql.DB serializes
// writes in practice, but the contract deliberately matches the
// original local-storage layout.
type Storage struct {
	db      *sql.DB
	watcher *Watcher
}

// New creates a Storage over the given database.
func New(db *sql.DB) *Storage {
	return &Storage{
		db:      db,
		watcher: NewWatcher(),
	}
}

// DB exposes the underlying database handle for collaborators that
// share the connection (sessions, audit log).
func (s *Storage) DB() *sql.DB {
	return s.db
}

// Read deserializes the collection stored under key into v.
//
// A missing key or corrupted JSON leaves v untouched, so callers that
// pass an empty container of the right shape observe the fail-safe
// empty collection. Corruption is logged, never surfaced.
func (s *Storage) Read(ctx context.Context, key string, v any) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM storage WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	if err != nil {
		slog.Warn("storage read failed, treating as empty", "key", key, "error", err)
		return
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("storage value corrupted, treating as empty", "key", key, "error", err)
	}
}

// Write serializes v and persists it under key, replacing any previous
// value, then notifies watchers of the key.
func (s *Storage) Write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	s.watcher.Notify(key)
	return nil
}

// Watch subscribes to change notifications for the given collection
// keys. The returned cancel function must be called to release the
// subscription.
func (s *Storage) Watch(keys ...string) (<-chan string, func()) {
	return s.watcher.Subscribe(keys...)
}
