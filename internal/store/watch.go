// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"sync"
)

// Watcher fans out collection-write notifications to subscribers.
//
// It replaces the browser storage event of the original layout with an
// explicit in-process pub/sub: every write is observed, including
// writes made by the same process. Notifications are best-effort — a
// subscriber that is not draining its channel misses intermediate
// signals, which is fine because receivers re-read the collection
// anyway.
type Watcher struct {
	mu   sync.Mutex
	subs map[int]*subscription
	next int
}

type subscription struct {
	keys map[string]bool
	ch   chan string
}

// NewWatcher creates an empty Watcher.
func NewWatcher() *Watcher {
	return &Watcher{subs: make(map[int]*subscription)}
}

// Subscribe registers interest in the given keys. No keys means all
// keys. The cancel function releases the subscription and closes the
// channel.
func (w *Watcher) Subscribe(keys ...string) (<-chan string, func()) {
	sub := &subscription{
		keys: make(map[string]bool, len(keys)),
		ch:   make(chan string, 8),
	}
	for _, k := range keys {
		sub.keys[k] = true
	}

	w.mu.Lock()
	id := w.next
	w.next++
	w.subs[id] = sub
	w.mu.Unlock()

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if _, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub.ch)
		}
	}

	return sub.ch, cancel
}

// Notify signals all subscribers interested in key. Never blocks.
func (w *Watcher) Notify(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, sub := range w.subs {
		if len(sub.keys) > 0 && !sub.keys[key] {
			continue
		}
		select {
		case sub.ch <- key:
		default:
			// Subscriber is behind; it will re-read on the next signal.
		}
	}
}
