// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks collection payloads before they are encrypted
// and stored locally.
package validators

import "context"

// Validator checks a value. When fields are given only those fields are
// checked, otherwise the whole value is.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
