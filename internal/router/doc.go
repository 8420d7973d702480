// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router names the client's view routes, matches paths against them
// and keeps the navigation history the views push to and pop from.
package router
