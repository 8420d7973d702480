// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pim-keeper/internal/config"
	"github.com/MKhiriev/go-pim-keeper/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo
}

// NewAppInfoService returns an [AppInfoService]. The configured version
// takes precedence over the one linked into the binary.
func NewAppInfoService(cfg config.ClientApp, build models.AppBuildInfo) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		build:      build,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Describe() string {
	return fmt.Sprintf("go-pim-keeper %s (built %s, commit %s)",
		s.appVersion, orNA(s.build.BuildDate()), orNA(s.build.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
