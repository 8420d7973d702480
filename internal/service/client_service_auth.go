// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-pim-keeper/internal/adapter"
	"github.com/MKhiriev/go-pim-keeper/internal/crypto"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/utils"
	"github.com/MKhiriev/go-pim-keeper/models"
)

// authSalt is mixed into the auth hash so it differs from any value
// derived from the KEK for encryption.
const authSalt = "go-pim-keeper-auth-v1"

type clientAuthService struct {
	adapter             adapter.ServerAdapter
	crypto              crypto.KeyChainService
	clientCryptoService ClientCryptoService

	logger *logger.Logger
}

// NewClientAuthService returns a [ClientAuthService]. cryptoSvc is keyed
// with the unwrapped DEK after every successful login.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService, cryptoSvc ClientCryptoService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:             serverAdapter,
		crypto:              keyChain,
		clientCryptoService: cryptoSvc,
		logger:              logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	salt, err := a.crypto.GenerateEncryptionSalt()
	if err != nil {
		return fmt.Errorf("error generating salt: %w", err)
	}

	dek, err := a.crypto.GenerateDEK()
	if err != nil {
		return fmt.Errorf("error generating DEK: %w", err)
	}

	kek := a.crypto.GenerateKEK(user.MasterPassword, salt)

	wrappedDEK, err := a.crypto.WrapKey(dek, kek)
	if err != nil {
		return fmt.Errorf("error wrapping DEK: %w", err)
	}

	authHash := a.crypto.GenerateAuthHash(kek, authSalt)

	// byte slices travel base64-encoded
	user.EncryptionSalt = base64.StdEncoding.EncodeToString(salt)
	user.EncryptedMasterKey = base64.StdEncoding.EncodeToString(wrappedDEK)
	user.AuthHash = base64.StdEncoding.EncodeToString(authHash)
	user.MasterPassword = ""

	if _, err = a.adapter.Register(ctx, user); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Str("login", user.Login).Msg("server rejected registration")
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	// 1. соль по логину
	userWithSalt, err := a.adapter.RequestSalt(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	salt, err := base64.StdEncoding.DecodeString(userWithSalt.EncryptionSalt)
	if err != nil {
		return models.Session{}, fmt.Errorf("decode encryption salt: %w", err)
	}

	// 2. KEK из пароля и соли, auth hash вместо пароля
	kek := a.crypto.GenerateKEK(user.MasterPassword, salt)
	user.AuthHash = base64.StdEncoding.EncodeToString(a.crypto.GenerateAuthHash(kek, authSalt))
	user.MasterPassword = ""

	// 3. login + auth hash -> wrapped DEK
	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	wrapped, err := base64.StdEncoding.DecodeString(found.EncryptedMasterKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("decode encrypted master key: %w", err)
	}

	dek, err := a.crypto.UnwrapKey(wrapped, kek)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	a.clientCryptoService.SetEncryptionKey(dek)

	session := models.Session{
		UserID: found.UserID,
		Login:  user.Login,
		Token:  found.Token,
		Key:    dek,
	}

	claims, err := utils.ParseTokenClaims(found.Token)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.Login").Msg("token claims unreadable, session expiry unknown")
		return session, nil
	}

	session.ExpiresAt = claims.ExpiresAt
	if session.UserID == 0 {
		session.UserID = claims.UserID
	}

	return session, nil
}
