// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the account payload exchanged with the server during
// registration and login.
type User struct {
	UserID int64  `json:"user_id,omitempty"`
	Login  string `json:"login"`

	// MasterPassword is only held in memory and cleared before any request.
	MasterPassword string `json:"master_password,omitempty"`

	// EncryptionSalt is the base64 Argon2id salt, public.
	EncryptionSalt string `json:"encryption_salt,omitempty"`

	// EncryptedMasterKey is the base64 DEK wrapped with the KEK.
	EncryptedMasterKey string `json:"encrypted_master_key,omitempty"`

	// AuthHash is the base64 SHA-256(KEK || auth salt) used as the login proof.
	AuthHash string `json:"auth_hash,omitempty"`

	Token string `json:"token,omitempty"`
}
