// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects config layers in precedence order. A failing
// layer is skipped and its error reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

// build folds the layers into one config. mergo fills only zero fields, so
// the earliest layer setting a field wins.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	if err := parseEnv(cfg); err != nil {
		return b.add(nil, err)
	}
	return b.add(cfg, nil)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.withArgs(os.Args[1:])
}

func (b *configBuilder) withArgs(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withJSON loads the file named by the first layer that sets a path.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

func (b *configBuilder) jsonPath() string {
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			return cfg.JSONFilePath
		}
	}
	return ""
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig(), nil)
}
