// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pim-keeper/internal/adapter"
	"github.com/MKhiriev/go-pim-keeper/internal/app"
)

// serverReasons maps a transport sentinel and the server's reason text to
// a service error.
var serverReasons = []struct {
	sentinel error
	reasons  map[string]error
}{
	{adapter.ErrBadRequest, map[string]error{
		app.MsgInvalidDataProvided:        ErrInvalidDataProvided,
		app.MsgNoCollectionsProvided:      ErrValidationNoCollectionsProvided,
		app.MsgNoDownloadRequestsProvided: ErrValidationNoDownloadRequestsProvided,
		app.MsgHashMismatch:               ErrHashMismatch,
	}},
	{adapter.ErrUnauthorized, map[string]error{
		app.MsgInvalidLoginPassword:    ErrWrongPassword,
		app.MsgTokenIsExpired:          ErrTokenIsExpired,
		app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
	}},
	{adapter.ErrConflict, map[string]error{
		app.MsgLoginAlreadyExists: ErrLoginAlreadyExists,
		app.MsgVersionConflict:    ErrVersionConflict,
	}},
	{adapter.ErrBadGateway, map[string]error{
		app.MsgRegistrationFailed: ErrRegisterOnServer,
		app.MsgLoginFailed:        ErrLoginOnServer,
	}},
}

// mapAdapterError turns adapter errors into service errors. Errors with no
// known reason pass through unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapter.ErrNotFound) {
		return ErrCollectionNotFound
	}

	for _, r := range serverReasons {
		if !errors.Is(err, r.sentinel) {
			continue
		}
		if mapped, ok := r.reasons[serverReason(err, r.sentinel)]; ok {
			return mapped
		}
		return err
	}
	return err
}

// serverReason returns the text after "<sentinel>: " in err.
func serverReason(err, sentinel error) string {
	msg := err.Error()
	if _, after, ok := strings.Cut(msg, sentinel.Error()+": "); ok {
		return strings.TrimSpace(after)
	}
	return msg
}
