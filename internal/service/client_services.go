// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pim-keeper/internal/adapter"
	"github.com/MKhiriev/go-pim-keeper/internal/crypto"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/store"
	"github.com/MKhiriev/go-pim-keeper/internal/validators"
)

// ClientServices groups every client service sharing one crypto service,
// so a login keys all of them at once.
type ClientServices struct {
	CryptoService     ClientCryptoService
	AuthService       ClientAuthService
	CollectionManager CollectionManager
	Decryptor         CollectionDecryptor
	JournalService    JournalService
	SyncService       ClientSyncService
	SyncJob           ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService, logger *logger.Logger) *ClientServices {
	cryptoSvc := NewClientCryptoService(keyChain)
	manager := NewCollectionManager(storages.CollectionRepository, serverAdapter, cryptoSvc, validators.NewCollectionValidator(), logger)
	syncSvc := NewClientSyncService(storages.CollectionRepository, storages.JournalRepository, serverAdapter, logger)

	return &ClientServices{
		CryptoService:     cryptoSvc,
		AuthService:       NewClientAuthService(serverAdapter, keyChain, cryptoSvc, logger),
		CollectionManager: manager,
		Decryptor:         NewCollectionDecryptor(cryptoSvc),
		JournalService:    NewJournalService(storages.JournalRepository, storages.CollectionRepository, cryptoSvc, logger),
		SyncService:       syncSvc,
		SyncJob:           NewClientSyncJob(syncSvc, manager, logger),
	}
}
