// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package processors projects decrypted journal entries into the item maps
// the journal views render.
//
// Entries are replayed in order: ADD and CHANGE upsert by item UID, DELETE
// removes it. Entries whose content cannot be parsed are skipped. The
// functions are pure and safe to call from any goroutine.
package processors
