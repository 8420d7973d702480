// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import "sync"

// Navigator is the navigation surface views depend on.
type Navigator interface {
	// Push appends path to the history and makes it current.
	Push(path string)
	// GoBack drops the current entry. It is a no-op on the first entry.
	GoBack()
	// Current returns the current path.
	Current() string
}

// History is an in-memory [Navigator].
type History struct {
	mu      sync.RWMutex
	entries []string
}

// NewHistory returns a history positioned at start.
func NewHistory(start string) *History {
	return &History{entries: []string{start}}
}

// Push implements [Navigator]. Pushing the current path again is ignored.
func (h *History) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == path {
		return
	}
	h.entries = append(h.entries, path)
}

// GoBack implements [Navigator].
func (h *History) GoBack() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) <= 1 {
		return
	}
	h.entries = h.entries[:len(h.entries)-1]
}

// Current implements [Navigator].
func (h *History) Current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
