// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo is the linker-injected identity of a pim-keeper binary.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo wraps the -ldflags values of a build.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// IsRelease reports whether the binary was built with a version stamp.
func (a AppBuildInfo) IsRelease() bool {
	return a.version != "" && a.version != "N/A"
}

// String formats the build as "version (commit, date)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orNA(a.version), orNA(a.commit), orNA(a.date))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
