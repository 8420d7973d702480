// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pim-keeper/internal/config"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/utils"
	"github.com/MKhiriev/go-pim-keeper/models"
)

const testHashKey = "testhashkey"

// newTestAdapter creates an httpServerAdapter pointed at the test server
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("test", 1, time.Hour, "k")
	require.NoError(t, err)
	return token
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	token := testToken(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var body models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body.Login)
		assert.Empty(t, body.MasterPassword)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.User{Login: "alice", AuthHash: "h"})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Login)
	assert.Equal(t, token, got.Token)
	assert.Equal(t, token, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "login already exists")
}

func TestRegister_MissingBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrInvalidAuthorizationHeader)
	assert.Empty(t, a.Token())
}

// ── RequestSalt ──────────────────────────────────────────────────────────────

func TestRequestSalt_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/params", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{Login: "alice", EncryptionSalt: "somesalt", EncryptedMasterKey: "leak"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RequestSalt(context.Background(), models.User{Login: "alice", MasterPassword: "secret"})

	require.NoError(t, err)
	assert.Equal(t, models.User{Login: "alice", EncryptionSalt: "somesalt"}, got)
}

func TestRequestSalt_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestSalt(context.Background(), models.User{Login: "alice"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	token := testToken(t)
	want := models.User{UserID: 1, Login: "alice", EncryptedMasterKey: "wrapped"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+token)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", AuthHash: "h"})

	require.NoError(t, err)
	assert.Equal(t, "wrapped", got.EncryptedMasterKey)
	assert.Equal(t, token, got.Token)
	assert.Equal(t, token, a.Token())
}

func TestLogin_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("login on server failed"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice"})

	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── UploadCollections ────────────────────────────────────────────────────────

func TestUploadCollections_SendsHashAndBearer(t *testing.T) {
	cols := []models.Collection{{UID: "a", UserID: 1, Meta: "blob", Version: 2}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/collections/", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		var req models.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.Length)
		assert.Equal(t, utils.NewHasher(testHashKey).HashJSON(req.Collections), req.Hash)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  sometoken ")

	require.NoError(t, a.UploadCollections(context.Background(), models.UploadRequest{UserID: 1, Collections: cols}))
}

func TestUploadCollections_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"conflict", http.StatusConflict, ErrConflict},
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			err := a.UploadCollections(context.Background(), models.UploadRequest{UserID: 1})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUploadCollections_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	err := a.UploadCollections(context.Background(), models.UploadRequest{UserID: 1})

	assert.ErrorIs(t, err, ErrServerUnreachable)
}

// ── DownloadCollections ──────────────────────────────────────────────────────

func TestDownloadCollections_Success(t *testing.T) {
	want := []models.Collection{{UID: "abc-123", UserID: 1, Meta: "m"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collections/download", r.URL.Path)

		var req models.DownloadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"abc-123"}, req.UIDs)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.DownloadCollections(context.Background(), models.DownloadRequest{UserID: 1, UIDs: []string{"abc-123"}})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDownloadCollections_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.DownloadCollections(context.Background(), models.DownloadRequest{UserID: 1})

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetCollectionStates ──────────────────────────────────────────────────────

func TestGetCollectionStates_Success(t *testing.T) {
	want := models.SyncResponse{
		CollectionStates: []models.CollectionState{{UID: "abc-123", Version: 2, Hash: "h"}},
		Length:           1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.GetCollectionStates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want.CollectionStates, got)
}

func TestGetCollectionStates_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token is expired"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCollectionStates(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "token is expired")
}

// ── GetJournals ──────────────────────────────────────────────────────────────

func TestGetJournals_Success(t *testing.T) {
	want := models.JournalsResponse{
		Journals: []models.EncryptedJournal{{
			Journal:    models.Journal{UID: "j1"},
			Collection: models.CollectionInfo{UID: "c1", Type: "CALENDAR"},
			Entries:    []models.EncryptedEntry{{UID: "e1", Action: models.SyncEntryActionAdd, Content: "x"}},
		}},
		Length: 1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/journals/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetJournals(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CALENDAR", got[0].Collection.Type)
	assert.Len(t, got[0].Entries, 1)
}

// ── mapHTTPError / normalizeBaseURL ──────────────────────────────────────────

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetJournals(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
