// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pim-keeper/internal/router"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// CollectionsModel keeps the decrypted collection cache of one user and
// renders the collections routes over it.
//
// Every source change starts a decrypt pass tagged with a sequence number.
// Only the result of the latest pass is committed; older passes that finish
// late are dropped.
type CollectionsModel struct {
	ctx       context.Context
	session   models.Session
	manager   service.CollectionManager
	decryptor service.CollectionDecryptor
	nav       router.Navigator
	routes    *router.Resolver

	now     func() time.Time
	copyUID func(string) error

	source     []models.Collection
	cache      []models.CachedCollection
	hasCache   bool
	decryptSeq uint64
	decrypting bool
	ticking    bool

	cursor   int
	form     *collectionForm
	formPath string
	confirm  *confirmModel
	target   models.Collection
	overlay  *errorOverlayModel
	status   string
	spinner  spinner.Model
	width    int
}

// NewCollectionsModel returns a coordinator in the Loading state.
func NewCollectionsModel(
	ctx context.Context,
	session models.Session,
	manager service.CollectionManager,
	decryptor service.CollectionDecryptor,
	nav router.Navigator,
	routes *router.Resolver,
) *CollectionsModel {
	return &CollectionsModel{
		ctx:       ctx,
		session:   session,
		manager:   manager,
		decryptor: decryptor,
		nav:       nav,
		routes:    routes,
		now:       time.Now,
		copyUID:   clipboard.WriteAll,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		ticking:   true,
		width:     80,
	}
}

func (m *CollectionsModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Ready reports whether a decrypted cache exists.
func (m *CollectionsModel) Ready() bool {
	return m.hasCache
}

// Cache returns the committed decrypted cache.
func (m *CollectionsModel) Cache() []models.CachedCollection {
	return m.cache
}

// Lookup finds a cached collection by UID.
func (m *CollectionsModel) Lookup(uid string) (models.CachedCollection, bool) {
	for _, c := range m.cache {
		if c.UID() == uid {
			return c, true
		}
	}
	return models.CachedCollection{}, false
}

// Capturing reports whether the model consumes every key, so the caller
// must not interpret global hotkeys.
func (m *CollectionsModel) Capturing() bool {
	return m.form != nil || m.confirm != nil || m.overlay != nil
}

// SetSource replaces the encrypted source set. A nil set is ignored. An empty
// set commits an empty cache without a decrypt pass.
func (m *CollectionsModel) SetSource(collections []models.Collection) tea.Cmd {
	if collections == nil {
		return nil
	}
	m.source = collections

	if len(collections) == 0 {
		m.decryptSeq++
		m.decrypting = false
		m.cache = []models.CachedCollection{}
		m.hasCache = true
		m.clampCursor()
		return nil
	}

	return m.startDecrypt()
}

// Save uploads col and navigates to the collections list afterwards.
func (m *CollectionsModel) Save(col models.Collection) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		saved, err := manager.Upload(ctx, col)
		return collectionSavedMsg{col: saved, err: err}
	}
}

// Delete marks col deleted, uploads the tombstone and navigates to the
// collections list afterwards.
func (m *CollectionsModel) Delete(col models.Collection) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		deleted, err := manager.Delete(ctx, col)
		if err != nil {
			return collectionDeletedMsg{col: col, err: err}
		}

		uploaded, err := manager.Upload(ctx, deleted)
		if err != nil {
			return collectionDeletedMsg{col: deleted, err: fmt.Errorf("%w: %w", service.ErrDeleteNotUploaded, err)}
		}
		return collectionDeletedMsg{col: uploaded}
	}
}

// Cancel goes back one step in history.
func (m *CollectionsModel) Cancel() {
	m.nav.GoBack()
}

func (m *CollectionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncForm()
	return m, cmd
}

func (m *CollectionsModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return nil

	case spinner.TickMsg:
		if m.hasCache && !m.decrypting {
			m.ticking = false
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case collectionsChangedMsg:
		return m.SetSource(msg.collections)

	case collectionsReloadedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return nil
		}
		return m.SetSource(msg.collections)

	case collectionsDecryptedMsg:
		if msg.seq != m.decryptSeq {
			return nil
		}
		m.decrypting = false
		if msg.err != nil {
			m.showError(msg.err)
			return nil
		}
		m.cache = msg.cache
		m.hasCache = true
		m.clampCursor()
		return nil

	case collectionSavedMsg:
		if m.form != nil {
			m.form.submitting = false
		}
		if msg.err != nil {
			m.showError(msg.err)
			return m.cmdReload()
		}
		m.form = nil
		m.nav.Push(m.routes.GetRoute(router.Collections))
		return m.cmdReload()

	case collectionDeletedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			if errors.Is(msg.err, service.ErrDeleteNotUploaded) && errors.Is(msg.err, service.ErrUploadToServer) {
				m.nav.Push(m.routes.GetRoute(router.Collections))
			}
			return m.cmdReload()
		}
		m.nav.Push(m.routes.GetRoute(router.Collections))
		return m.cmdReload()

	case copiedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return nil
		}
		return m.setStatus("UID copied: " + msg.uid)

	case clearStatusMsg:
		m.status = ""
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return nil
}

func (m *CollectionsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.overlay != nil {
		switch {
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
			m.overlay = nil
		case key.Matches(msg, keys.retry):
			return m.retry()
		}
		return nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			return m.Delete(m.target)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = nil
		}
		return nil
	}

	if key.Matches(msg, keys.retry) && m.form == nil {
		return m.retry()
	}

	if !m.hasCache {
		if key.Matches(msg, keys.sync) {
			return func() tea.Msg { return syncRequestedMsg{} }
		}
		return nil
	}

	match, ok := m.routes.Match(m.nav.Current())
	if !ok {
		if key.Matches(msg, keys.esc) {
			m.Cancel()
		}
		return nil
	}

	switch match.Name {
	case router.Collections:
		return m.handleListKey(msg)
	case router.CollectionsNew, router.CollectionsEdit:
		return m.handleFormKey(msg)
	case router.CollectionsID:
		return m.handleDetailKey(msg, match)
	default:
		if key.Matches(msg, keys.esc) {
			m.Cancel()
		}
	}
	return nil
}

func (m *CollectionsModel) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.cache)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.newItem):
		m.nav.Push(m.routes.GetRoute(router.CollectionsNew))
	case key.Matches(msg, keys.importIt):
		m.nav.Push(m.routes.GetRoute(router.CollectionsImport))
	case key.Matches(msg, keys.sync):
		return func() tea.Msg { return syncRequestedMsg{} }
	}

	selected, ok := m.selected()
	if !ok {
		return nil
	}
	return m.handleItemKey(msg, selected)
}

func (m *CollectionsModel) handleDetailKey(msg tea.KeyMsg, match router.Match) tea.Cmd {
	if key.Matches(msg, keys.esc) {
		m.Cancel()
		return nil
	}

	uid, _ := match.Param(router.ParamCollectionUID)
	col, ok := m.Lookup(uid)
	if !ok {
		return nil
	}
	if key.Matches(msg, keys.enter) {
		return nil
	}
	return m.handleItemKey(msg, col)
}

// handleItemKey handles keys acting on one collection in the list or detail view.
func (m *CollectionsModel) handleItemKey(msg tea.KeyMsg, col models.CachedCollection) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter):
		m.nav.Push(m.routes.GetRoute(router.CollectionsID, col.UID()))
	case key.Matches(msg, keys.edit):
		m.nav.Push(m.routes.GetRoute(router.CollectionsEdit, col.UID()))
	case key.Matches(msg, keys.members):
		m.nav.Push(m.routes.GetRoute(router.CollectionsMembers, col.UID()))
	case key.Matches(msg, keys.journal):
		m.nav.Push(m.routes.GetRoute(router.JournalsID, col.UID()))
	case key.Matches(msg, keys.delete):
		m.target = col.Collection
		m.confirm = &confirmModel{message: col.Meta.Name}
	case key.Matches(msg, keys.copy):
		return m.cmdCopy(col.UID())
	}
	return nil
}

func (m *CollectionsModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.form == nil {
		if key.Matches(msg, keys.esc) {
			m.Cancel()
		}
		return nil
	}

	action, cmd := m.form.update(msg)
	switch action {
	case formCancel:
		m.form = nil
		m.Cancel()
		return nil
	case formSubmit:
		return m.submitForm()
	}
	return cmd
}

func (m *CollectionsModel) submitForm() tea.Cmd {
	meta := m.form.meta()

	var (
		col models.Collection
		err error
	)
	if m.form.isNew() {
		col, err = m.manager.Create(m.session.UserID, meta)
	} else {
		col, err = m.manager.SetMeta(m.form.existing.Collection, meta)
	}
	if err != nil {
		m.form.errMsg = err.Error()
		return nil
	}

	m.form.errMsg = ""
	m.form.submitting = true
	return m.Save(col)
}

func (m *CollectionsModel) retry() tea.Cmd {
	m.overlay = nil
	if len(m.source) == 0 {
		return nil
	}
	return m.startDecrypt()
}

// startDecrypt starts a decrypt pass over the source and restarts the
// spinner if it went idle.
func (m *CollectionsModel) startDecrypt() tea.Cmd {
	m.decryptSeq++
	m.decrypting = true
	cmd := m.cmdDecrypt(m.decryptSeq, m.source)
	if m.ticking {
		return cmd
	}
	m.ticking = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// syncForm keeps the edit form bound to the current route and to the latest
// cached copy of the edited collection.
func (m *CollectionsModel) syncForm() {
	path := m.nav.Current()
	match, ok := m.routes.Match(path)
	if !m.hasCache || !ok || (match.Name != router.CollectionsNew && match.Name != router.CollectionsEdit) {
		m.form = nil
		m.formPath = ""
		return
	}
	if m.form != nil && m.formPath == path {
		if !m.form.isNew() {
			m.rebindForm(match)
		}
		return
	}

	switch match.Name {
	case router.CollectionsNew:
		m.form = newCollectionForm(nil)
	case router.CollectionsEdit:
		uid, _ := match.Param(router.ParamCollectionUID)
		col, found := m.Lookup(uid)
		if !found {
			m.form = nil
			m.formPath = ""
			return
		}
		m.form = newCollectionForm(&col)
	}
	m.formPath = path
}

// rebindForm points an open edit form at a newer cached copy while keeping
// the user's input.
func (m *CollectionsModel) rebindForm(match router.Match) {
	uid, _ := match.Param(router.ParamCollectionUID)
	col, found := m.Lookup(uid)
	if !found {
		m.form = nil
		m.formPath = ""
		return
	}
	prev := m.form.existing.Collection
	if col.Collection.Version != prev.Version || col.Collection.BaseVersion != prev.BaseVersion {
		m.form.existing = &col
	}
}

func (m *CollectionsModel) selected() (models.CachedCollection, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cache) {
		return models.CachedCollection{}, false
	}
	return m.cache[m.cursor], true
}

func (m *CollectionsModel) clampCursor() {
	if m.cursor >= len(m.cache) {
		m.cursor = len(m.cache) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *CollectionsModel) showError(err error) {
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
}

func (m *CollectionsModel) setStatus(s string) tea.Cmd {
	m.status = s
	return tea.Tick(statusTTL, func(t time.Time) tea.Msg { return clearStatusMsg{at: t} })
}

func (m *CollectionsModel) cmdDecrypt(seq uint64, collections []models.Collection) tea.Cmd {
	ctx, decryptor := m.ctx, m.decryptor
	return func() tea.Msg {
		cache, err := decryptor.DecryptCollections(ctx, collections)
		return collectionsDecryptedMsg{seq: seq, cache: cache, err: err}
	}
}

func (m *CollectionsModel) cmdReload() tea.Cmd {
	ctx, manager, userID := m.ctx, m.manager, m.session.UserID
	return func() tea.Msg {
		collections, err := manager.List(ctx, userID)
		if collections == nil && err == nil {
			collections = []models.Collection{}
		}
		return collectionsReloadedMsg{collections: collections, err: err}
	}
}

func (m *CollectionsModel) cmdCopy(uid string) tea.Cmd {
	copyUID := m.copyUID
	return func() tea.Msg {
		return copiedMsg{uid: uid, err: copyUID(uid)}
	}
}

func (m *CollectionsModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}
	return m.viewRoute()
}

func (m *CollectionsModel) viewRoute() string {
	if !m.hasCache {
		return m.viewLoading()
	}

	match, ok := m.routes.Match(m.nav.Current())
	if !ok {
		return m.viewNotFound()
	}

	switch match.Name {
	case router.Collections:
		return m.viewList()
	case router.CollectionsImport:
		return renderPage("Import", "Importing collections from files is not available yet.", "esc: back")
	case router.CollectionsNew:
		if m.form == nil {
			return m.viewNotFound()
		}
		return renderPage("NEW COLLECTION", m.form.view(), "tab: next field │ ←/→: type │ enter: save │ esc: cancel")
	}

	uid, _ := match.Param(router.ParamCollectionUID)
	col, found := m.Lookup(uid)
	if !found {
		return m.viewNotFound()
	}

	switch match.Name {
	case router.CollectionsID:
		return m.viewDetail(col)
	case router.CollectionsEdit:
		if m.form == nil {
			return m.viewNotFound()
		}
		return renderPage("EDIT "+strings.ToUpper(col.Meta.Name), m.form.view(), "tab: next field │ enter: save │ esc: cancel")
	case router.CollectionsMembers:
		return m.viewMembers(col)
	}
	return m.viewNotFound()
}

func (m *CollectionsModel) viewLoading() string {
	return renderPage("COLLECTIONS", m.spinner.View()+" Loading...", "")
}

func (m *CollectionsModel) viewNotFound() string {
	return renderPage("NOT FOUND", "Collection not found!", "esc: back")
}

func (m *CollectionsModel) viewList() string {
	var b strings.Builder

	if m.decrypting {
		b.WriteString(m.spinner.View())
		b.WriteString(" Updating...\n\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if len(m.cache) == 0 {
		b.WriteString("No collections yet.")
		return renderPage("COLLECTIONS", b.String(), "n: new │ i: import │ s: sync │ L: logout │ q: quit")
	}

	nameWidth := 32
	b.WriteString(fmt.Sprintf("  %-*s │ %-12s │ %s\n", nameWidth, "Name", "Type", "Updated"))
	b.WriteString("  " + strings.Repeat("─", nameWidth) + "─┼──────────────┼────────────────\n")

	now := m.now()
	for i, c := range m.cache {
		cursor := " "
		line := fmt.Sprintf("%-*s │ %-12s │ %s",
			nameWidth, fitText(c.Meta.Name, nameWidth),
			fitText(c.Meta.Type.Title(), 12),
			relativeTime(c.Collection.UpdatedAt, now))
		if i == m.cursor {
			cursor = ">"
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(swatchOrSpace(c.Meta.Color))
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("COLLECTIONS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ enter: open │ n: new │ e: edit │ j: journal │ d: delete │ c: copy UID │ s: sync │ L: logout │ q: quit")
}

func (m *CollectionsModel) viewDetail(col models.CachedCollection) string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString("Name:     ")
	b.WriteString(swatch(col.Meta.Color))
	b.WriteString(col.Meta.Name)
	b.WriteString("\n")
	b.WriteString("Type:     ")
	b.WriteString(col.Meta.Type.Title())
	b.WriteString("\n")
	b.WriteString("Color:    ")
	b.WriteString(valueOrDash(col.Meta.Color))
	b.WriteString("\n")
	b.WriteString("UID:      ")
	b.WriteString(col.UID())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Version:  %d\n", col.Collection.Version))
	b.WriteString("Updated:  ")
	b.WriteString(relativeTime(col.Collection.UpdatedAt, m.now()))

	if desc := renderMarkdown(col.Meta.Description, m.width-8); desc != "" {
		b.WriteString("\n\n")
		b.WriteString(desc)
	}

	return renderPage(strings.ToUpper(col.Meta.Name), b.String(),
		"e: edit │ m: members │ j: journal │ d: delete │ c: copy UID │ esc: back")
}

func (m *CollectionsModel) viewMembers(col models.CachedCollection) string {
	data := "Collection: " + col.Meta.Name + "\nOwner:      " + valueOrDash(m.session.Login) +
		"\n\nSharing this collection is not available yet."
	return renderPage("Members", data, "esc: back")
}

func swatchOrSpace(color string) string {
	if color == "" {
		return "  "
	}
	return swatch(color)
}
