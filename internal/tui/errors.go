// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pim-keeper/internal/adapter"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
)

// ErrUserQuit is returned by the login flow when the user leaves it.
var ErrUserQuit = errors.New("user quit")

const msgServerUnavailable = "No network connection or the server is unavailable"

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrServerUnreachable) {
		return msgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

// humanizeError turns service errors into overlay text.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrDeleteNotUploaded):
		cause := strings.TrimPrefix(humanizeServerUnavailableError(err), service.ErrDeleteNotUploaded.Error()+": ")
		return "Deleted locally, but the deletion was not uploaded: " + cause
	case errors.Is(err, service.ErrVersionConflict):
		return "The collection was changed on another device. Sync and try again."
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired. Log in again (L)."
	case errors.Is(err, service.ErrDecryptCollection):
		return "Could not decrypt collections: " + err.Error() + "\n\nPress r to retry."
	}
	return humanizeServerUnavailableError(err)
}
