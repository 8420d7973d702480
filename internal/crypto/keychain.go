// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChainService returns a [KeyChainService] with the OWASP Argon2id
// parameters: 1 iteration, 64 MiB, 4 threads, 32-byte key.
func NewKeyChainService() KeyChainService {
	return NewKeyChainServiceWithParams(1, 64*1024, 4)
}

// NewKeyChainServiceWithParams returns a [KeyChainService] with custom
// Argon2id cost. memoryKiB is in kibibytes.
func NewKeyChainServiceWithParams(time, memoryKiB uint32, threads uint8) KeyChainService {
	return &keyChainService{
		argonTime:    time,
		argonMemory:  memoryKiB,
		argonThreads: threads,
	}
}

func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	return randomBytes(saltSize)
}

func (k *keyChainService) GenerateDEK() ([]byte, error) {
	return randomBytes(keySize)
}

func (k *keyChainService) GenerateKEK(masterPassword string, salt []byte) []byte {
	return argon2.IDKey([]byte(masterPassword), salt, k.argonTime, k.argonMemory, k.argonThreads, keySize)
}

func (k *keyChainService) WrapKey(DEK, KEK []byte) ([]byte, error) {
	return seal(DEK, KEK)
}

func (k *keyChainService) UnwrapKey(wrappedDEK, KEK []byte) ([]byte, error) {
	// a failure here almost always means a wrong master password
	return open(wrappedDEK, KEK)
}

func (k *keyChainService) GenerateAuthHash(KEK []byte, authSalt string) []byte {
	h := sha256.New()
	h.Write(KEK)
	h.Write([]byte(authSalt))
	return h.Sum(nil)
}

func (k *keyChainService) Seal(plaintext, DEK []byte) (string, error) {
	blob, err := seal(plaintext, DEK)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (k *keyChainService) Open(encryptedB64 string, DEK []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return open(blob, DEK)
}

func (k *keyChainService) EncryptData(data any, DEK []byte) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}
	return k.Seal(plaintext, DEK)
}

func (k *keyChainService) DecryptData(encryptedB64 string, DEK []byte, target any) error {
	plaintext, err := k.Open(encryptedB64, DEK)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}

// seal encrypts plaintext with AES-256-GCM: blob = nonce || ciphertext.
func seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := gcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
