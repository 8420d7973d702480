// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated state of one logged-in user. It is built by
// the auth service and handed to every component that needs it.
type Session struct {
	UserID    int64
	Login     string
	Token     string
	ExpiresAt time.Time

	// Key is the plaintext DEK. It never leaves the process.
	Key []byte
}

// Expired reports whether the session token is past its expiry. A zero
// ExpiresAt never expires.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
