// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pim-keeper/internal/config"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/utils"
	"github.com/MKhiriev/go-pim-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST [ServerAdapter]. The base URL is
// normalised from adapterCfg.HTTPAddress ("host:port" gets "http://").
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, mapTransportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.User{Login: user.Login, Token: token}, nil
}

// RequestSalt implements [ServerAdapter]. POST /api/auth/params.
func (h *httpServerAdapter) RequestSalt(ctx context.Context, user models.User) (models.User, error) {
	var found models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.User{Login: user.Login}).
		SetResult(&found).
		Post("/api/auth/params")
	if err != nil {
		return models.User{}, mapTransportError("request salt", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return models.User{Login: user.Login, EncryptionSalt: found.EncryptionSalt}, nil
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var found models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&found).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, mapTransportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	found.Token = token
	return found, nil
}

// UploadCollections implements [ServerAdapter]. POST /api/collections/.
func (h *httpServerAdapter) UploadCollections(ctx context.Context, req models.UploadRequest) error {
	req.Hash = h.hasher.HashJSON(req.Collections)
	req.Length = len(req.Collections)

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/api/collections/")
	if err != nil {
		return mapTransportError("upload", err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter.UploadCollections").
			Int("count", req.Length).
			Msg("upload rejected by server")
		return err
	}
	return nil
}

// DownloadCollections implements [ServerAdapter]. POST /api/collections/download.
func (h *httpServerAdapter) DownloadCollections(ctx context.Context, req models.DownloadRequest) ([]models.Collection, error) {
	var items []models.Collection

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&items).
		Post("/api/collections/download")
	if err != nil {
		return nil, mapTransportError("download", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// GetCollectionStates implements [ServerAdapter]. GET /api/sync/.
func (h *httpServerAdapter) GetCollectionStates(ctx context.Context) ([]models.CollectionState, error) {
	var sr models.SyncResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&sr).
		Get("/api/sync/")
	if err != nil {
		return nil, mapTransportError("get collection states", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return sr.CollectionStates, nil
}

// GetJournals implements [ServerAdapter]. GET /api/journals/.
func (h *httpServerAdapter) GetJournals(ctx context.Context) ([]models.EncryptedJournal, error) {
	var jr models.JournalsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&jr).
		Get("/api/journals/")
	if err != nil {
		return nil, mapTransportError("get journals", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return jr.Journals, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
