// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError turns a non-2xx response into a sentinel carrying the body.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if !resp.IsError() && code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	reason := strings.TrimSpace(resp.String())
	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, reason)
	}
	if reason == "" {
		reason = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, reason)
}

// mapTransportError marks failures where no response arrived at all.
func mapTransportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrServerUnreachable, err)
}
