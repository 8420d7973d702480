// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-pim-keeper/internal/crypto"
	"github.com/MKhiriev/go-pim-keeper/models"
)

type clientCryptoService struct {
	keyChain crypto.KeyChainService

	mu  sync.RWMutex
	key []byte
}

// NewClientCryptoService returns a [ClientCryptoService] backed by keyChain.
func NewClientCryptoService(keyChain crypto.KeyChainService) ClientCryptoService {
	return &clientCryptoService{keyChain: keyChain}
}

func (c *clientCryptoService) SetEncryptionKey(key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = append([]byte(nil), key...)
}

func (c *clientCryptoService) encryptionKey() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.key) == 0 {
		return nil, ErrNoEncryptionKey
	}
	return c.key, nil
}

func (c *clientCryptoService) EncryptMeta(meta models.CollectionMeta) (models.CipheredMeta, error) {
	key, err := c.encryptionKey()
	if err != nil {
		return "", err
	}

	blob, err := c.keyChain.EncryptData(meta, key)
	if err != nil {
		return "", fmt.Errorf("encrypt meta: %w", err)
	}
	return models.CipheredMeta(blob), nil
}

func (c *clientCryptoService) DecryptMeta(cipher models.CipheredMeta) (models.CollectionMeta, error) {
	key, err := c.encryptionKey()
	if err != nil {
		return models.CollectionMeta{}, err
	}

	var meta models.CollectionMeta
	if err = c.keyChain.DecryptData(string(cipher), key, &meta); err != nil {
		return models.CollectionMeta{}, fmt.Errorf("decrypt meta: %w", err)
	}
	return meta, nil
}

func (c *clientCryptoService) EncryptContent(content string) (string, error) {
	key, err := c.encryptionKey()
	if err != nil {
		return "", err
	}

	blob, err := c.keyChain.Seal([]byte(content), key)
	if err != nil {
		return "", fmt.Errorf("encrypt content: %w", err)
	}
	return blob, nil
}

func (c *clientCryptoService) DecryptContent(cipher string) (string, error) {
	key, err := c.encryptionKey()
	if err != nil {
		return "", err
	}

	plain, err := c.keyChain.Open(cipher, key)
	if err != nil {
		return "", fmt.Errorf("decrypt content: %w", err)
	}
	return string(plain), nil
}

func (c *clientCryptoService) ComputeHash(col models.Collection) string {
	h := sha256.New()
	h.Write([]byte(col.UID))
	h.Write([]byte{0})
	h.Write([]byte(col.Meta))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatBool(col.Deleted)))
	return hex.EncodeToString(h.Sum(nil))
}
