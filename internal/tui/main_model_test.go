// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pim-keeper/internal/mock"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/models"
)

type mainFixture struct {
	model     *MainModel
	manager   *mock.MockCollectionManager
	decryptor *mock.MockCollectionDecryptor
	journals  *mock.MockJournalService
	syncJob   *mock.MockClientSyncJob
}

func newMainFixture(t *testing.T) *mainFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &mainFixture{
		manager:   mock.NewMockCollectionManager(ctrl),
		decryptor: mock.NewMockCollectionDecryptor(ctrl),
		journals:  mock.NewMockJournalService(ctrl),
		syncJob:   mock.NewMockClientSyncJob(ctrl),
	}

	services := &service.ClientServices{
		CollectionManager: f.manager,
		Decryptor:         f.decryptor,
		JournalService:    f.journals,
		SyncJob:           f.syncJob,
	}
	f.model = NewMainModel(context.Background(), models.Session{UserID: 7, Login: "alice"}, services, "1.2.0")
	f.model.now = func() time.Time { return journalNow }
	return f
}

// collect выполняет команду и раскрывает пакетные сообщения.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliver прогоняет сообщение через модель вместе со всеми порождёнными командами.
func (f *mainFixture) deliver(msg tea.Msg) {
	_, cmd := f.model.Update(msg)
	for _, next := range collect(cmd) {
		f.deliver(next)
	}
}

func (f *mainFixture) loadCollections(t *testing.T, uids ...string) {
	t.Helper()
	source := encrypted(uids...)
	f.manager.EXPECT().List(gomock.Any(), int64(7)).Return(source, nil)
	f.decryptor.EXPECT().DecryptCollections(gomock.Any(), source).Return(decrypted(source), nil)

	f.deliver(f.model.cmdLoadLocal()())
	require.True(t, f.model.collections.Ready())
}

func TestMainModel_SyncEventRefreshesCollectionsAndJournals(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "a")

	fresh := encrypted("a", "b")
	f.decryptor.EXPECT().DecryptCollections(gomock.Any(), fresh).Return(decrypted(fresh), nil)
	f.journals.EXPECT().SyncInfo(gomock.Any(), int64(7)).Return(models.SyncInfo{}, nil)

	f.deliver(syncEventMsg{event: service.SyncEvent{Collections: fresh, At: journalNow.Add(-time.Hour)}})

	assert.Len(t, f.model.collections.Cache(), 2)
	assert.Contains(t, f.model.View(), "last sync: 1 hour ago")
	assert.Contains(t, f.model.View(), "user: alice")
	assert.Contains(t, f.model.View(), "1.2.0")
}

func TestMainModel_SyncEventErrorShownInFooter(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "a")

	f.decryptor.EXPECT().DecryptCollections(gomock.Any(), gomock.Any()).Return(decrypted(encrypted("a")), nil)
	f.journals.EXPECT().SyncInfo(gomock.Any(), int64(7)).Return(models.SyncInfo{}, nil)

	f.deliver(syncEventMsg{event: service.SyncEvent{
		Collections: encrypted("a"),
		Err:         errors.New("dial tcp 127.0.0.1:8080: connection refused"),
		At:          journalNow,
	}})

	assert.Contains(t, f.model.View(), "sync failed: "+msgServerUnavailable)
}

func TestMainModel_FailedSyncWithoutListKeepsCache(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "a")

	f.journals.EXPECT().SyncInfo(gomock.Any(), int64(7)).Return(models.SyncInfo{}, nil)

	f.deliver(syncEventMsg{event: service.SyncEvent{Err: errors.New("db locked"), At: journalNow}})

	require.Len(t, f.model.collections.Cache(), 1, "кэш не сбрасывается")
	assert.Contains(t, f.model.View(), "name-a")
}

func TestMainModel_SyncKeyTriggersJob(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "a")

	f.syncJob.EXPECT().Trigger().Times(1)

	f.deliver(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	assert.Contains(t, f.model.View(), "syncing...")
}

func TestMainModel_LogoutKey(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "a")

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, f.model.Logout())
}

func TestMainModel_LogoutKeyIgnoredInForm(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "a")

	f.deliver(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.Equal(t, "/collections/new", f.model.nav.Current())

	f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})

	assert.False(t, f.model.Logout())
}

func TestMainModel_QuitKey(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "a")

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, f.model.Logout(), "выход без сброса сессии")
}

func TestMainModel_QuitKeyTypedIntoForm(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "a")

	f.deliver(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.Equal(t, "/collections/new", f.model.nav.Current())

	f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, f.model.collections.form)
	assert.Equal(t, "q", f.model.collections.form.meta().Name, "буква попадает в поле формы")
	assert.Equal(t, "/collections/new", f.model.nav.Current())
}

func TestMainModel_OpensJournalOfCollection(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "abc")

	f.journals.EXPECT().SyncInfo(gomock.Any(), int64(7)).Return(models.SyncInfo{
		"abc": {
			Journal:    models.Journal{UID: "abc"},
			Collection: models.CollectionInfo{UID: "abc", Type: "TASKS", DisplayName: "Chores"},
		},
	}, nil)
	f.deliver(f.model.cmdLoadJournals()())

	f.deliver(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

	view := f.model.View()
	assert.Contains(t, view, "Chores")
	assert.Contains(t, view, "Unsupported type")
	assert.Contains(t, view, "Journal Entries")

	f.deliver(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "/collections", f.model.nav.Current())
	assert.Contains(t, f.model.View(), "COLLECTIONS")
}

func TestMainModel_JournalMissing(t *testing.T) {
	f := newMainFixture(t)
	f.loadCollections(t, "abc")

	f.journals.EXPECT().SyncInfo(gomock.Any(), int64(7)).Return(models.SyncInfo{}, nil)
	f.deliver(f.model.cmdLoadJournals()())

	f.deliver(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

	assert.Contains(t, f.model.View(), "Journal not found!")
}
