// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors mapped from HTTP status codes. The server's response body
// is appended after ": " so the service layer can refine them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerUnreachable wraps connection-level failures (refused, DNS,
	// timeout) where no HTTP response was received.
	ErrServerUnreachable = errors.New("server unreachable")
)
