// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the login / session loop of pim-keeper: one terminal
// session per login with background sync workers bound to it.
package client
