// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pim-keeper/models"
)

func renderBuildInfoWindow(version string, info models.AppBuildInfo) string {
	rows := []string{
		"Application: go-pim-keeper",
		"Version: " + valueOrNA(version),
		"Date: " + valueOrNA(info.BuildDate()),
		"Commit: " + valueOrNA(info.BuildCommit()),
	}
	if !info.IsRelease() {
		rows = append(rows, "", helpStyle.Render("development build"))
	}
	return renderPage("ABOUT", strings.Join(rows, "\n"), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
