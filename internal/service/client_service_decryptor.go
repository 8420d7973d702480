// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pim-keeper/models"
)

type collectionDecryptor struct {
	crypto ClientCryptoService
}

// NewCollectionDecryptor returns a [CollectionDecryptor] over cryptoSvc.
func NewCollectionDecryptor(cryptoSvc ClientCryptoService) CollectionDecryptor {
	return &collectionDecryptor{crypto: cryptoSvc}
}

func (d *collectionDecryptor) DecryptCollections(ctx context.Context, collections []models.Collection) ([]models.CachedCollection, error) {
	cache := make([]models.CachedCollection, 0, len(collections))

	for _, col := range collections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		meta, err := d.crypto.DecryptMeta(col.Meta)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecryptCollection, col.UID, err)
		}

		cache = append(cache, models.CachedCollection{Collection: col, Meta: meta})
	}

	return cache, nil
}
