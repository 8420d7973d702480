// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrInvalidKeyLength   = errors.New("invalid key length")
	ErrDecryptionFailed   = errors.New("decryption failed")
)
