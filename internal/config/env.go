// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the process environment into cfg through the `env` and
// `envPrefix` struct tags.
func parseEnv(cfg *StructuredConfig) error {
	opts := env.Options{Environment: env.ToMap(os.Environ())}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("%w: %w", ErrReadEnv, err)
	}
	return nil
}
