// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every key operation of the client. It knows nothing
// about the network, the cache or the views.
//
// Registration:
//
//	Salt, DEK = GenerateEncryptionSalt() + GenerateDEK()
//	KEK       = GenerateKEK(password, salt)
//	WrappedDEK = WrapKey(DEK, KEK)
//	AuthHash  = GenerateAuthHash(KEK, authSalt)
//
// Login reverses the wrap with UnwrapKey. All collection metadata and journal
// entries are sealed with the DEK.
type KeyChainService interface {
	// GenerateEncryptionSalt returns 16 random bytes. The salt is public.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK returns a random 256-bit data-encryption key.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives the key-encryption key from the master password
	// with Argon2id. The KEK never leaves client memory.
	GenerateKEK(masterPassword string, salt []byte) []byte

	// WrapKey encrypts DEK with KEK. The result is nonce || ciphertext.
	WrapKey(DEK, KEK []byte) ([]byte, error)

	// UnwrapKey reverses WrapKey. A wrong KEK fails authentication.
	UnwrapKey(wrappedDEK, KEK []byte) ([]byte, error)

	// GenerateAuthHash returns SHA-256(KEK || authSalt), the login proof
	// sent to the server instead of the password.
	GenerateAuthHash(KEK []byte, authSalt string) []byte

	// Seal encrypts plaintext with DEK and returns a base64 blob.
	Seal(plaintext, DEK []byte) (string, error)

	// Open decrypts a base64 blob produced by Seal.
	Open(encryptedB64 string, DEK []byte) ([]byte, error)

	// EncryptData JSON-encodes data and seals it with DEK.
	EncryptData(data any, DEK []byte) (string, error)

	// DecryptData opens a blob and unmarshals it into target.
	DecryptData(encryptedB64 string, DEK []byte, target any) error
}
