// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Route names.
const (
	Collections        = "collections"
	CollectionsImport  = "collections.import"
	CollectionsNew     = "collections.new"
	CollectionsID      = "collections._id"
	CollectionsEdit    = "collections._id.edit"
	CollectionsMembers = "collections._id.members"
	JournalsID         = "journals._id"
)

// Route parameter names.
const (
	ParamCollectionUID = "colUid"
	ParamJournalUID    = "journalUid"
)

var routePatterns = map[string]string{
	Collections:        "/collections",
	CollectionsImport:  "/collections/import",
	CollectionsNew:     "/collections/new",
	CollectionsID:      "/collections/{colUid}",
	CollectionsEdit:    "/collections/{colUid}/edit",
	CollectionsMembers: "/collections/{colUid}/members",
	JournalsID:         "/journals/{journalUid}",
}

// Match is the result of resolving a path.
type Match struct {
	Name   string
	Params map[string]string
}

// Param returns a route parameter by name.
func (m Match) Param(key string) (string, bool) {
	v, ok := m.Params[key]
	return v, ok && v != ""
}

// Resolver builds and matches route paths. Matching uses a chi route tree,
// so static segments win over parameters ("/collections/new" is never read
// as a collection UID).
type Resolver struct {
	mux       *chi.Mux
	byPattern map[string]string
}

// NewResolver returns a resolver with all client routes registered.
func NewResolver() *Resolver {
	r := &Resolver{
		mux:       chi.NewRouter(),
		byPattern: make(map[string]string, len(routePatterns)),
	}
	noop := func(http.ResponseWriter, *http.Request) {}
	for name, pattern := range routePatterns {
		r.mux.Get(pattern, noop)
		r.byPattern[pattern] = name
	}
	return r
}

// GetRoute returns the path for a named route, filling placeholders with
// args in order. It panics on an unknown name or a wrong argument count,
// both of which are programming errors.
func (r *Resolver) GetRoute(name string, args ...string) string {
	pattern, ok := routePatterns[name]
	if !ok {
		panic(fmt.Sprintf("router: unknown route %q", name))
	}

	var b strings.Builder
	rest := pattern
	for _, arg := range args {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			panic(fmt.Sprintf("router: too many arguments for route %q", name))
		}
		closing := strings.IndexByte(rest[open:], '}')
		b.WriteString(rest[:open])
		b.WriteString(arg)
		rest = rest[open+closing+1:]
	}
	if strings.IndexByte(rest, '{') >= 0 {
		panic(fmt.Sprintf("router: missing arguments for route %q", name))
	}
	b.WriteString(rest)
	return b.String()
}

// Match resolves path to a named route and its parameters.
func (r *Resolver) Match(path string) (Match, bool) {
	if path == "" {
		return Match{}, false
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return Match{}, false
	}

	name, ok := r.byPattern[rctx.RoutePattern()]
	if !ok {
		return Match{}, false
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return Match{Name: name, Params: params}, true
}
