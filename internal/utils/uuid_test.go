// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	if a == b {
		t.Fatal("expected unique identifiers")
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", a, err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("version = %d, want 7", parsed.Version())
	}
}
