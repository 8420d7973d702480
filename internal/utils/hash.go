// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests, reusing hash instances from a
// pool bound to its key.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a [Hasher] keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash returns the HMAC-SHA256 digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	hs := h.pool.Get().(hash.Hash)
	hs.Reset()

	hs.Write(data)
	sum := hs.Sum(nil)

	hs.Reset()
	h.pool.Put(hs)

	return sum
}

// HashJSON marshals v and returns the hex digest of the JSON bytes. An
// unmarshalable value hashes to an empty string.
func (h *Hasher) HashJSON(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return hex.EncodeToString(h.Hash(payload))
}

// HashString computes a one-off hex HMAC-SHA256 of data without a pool.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
