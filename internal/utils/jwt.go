// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// TokenClaims are the session-relevant claims of a bearer token.
type TokenClaims struct {
	UserID    int64
	ExpiresAt time.Time
}

// GenerateJWTToken signs an HS256 token for userID. The client never signs
// tokens in production; this is used to stand up fake servers.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}
	return signed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer x" value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseTokenClaims reads the subject and expiry of tokenString without
// verifying its signature. The server is the only party able to verify it;
// the client uses the claims for display and expiry checks only.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" {
		return TokenClaims{}, errors.New("empty subject error")
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return TokenClaims{}, fmt.Errorf("parse subject: %w", err)
	}

	out := TokenClaims{UserID: id}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
