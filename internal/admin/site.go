// Package admin builds the admin index: an explicit table of the models the
// admin exposes, assembled once at startup and read-only afterwards.
package admin

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"companyatlas/pkg/platform/httputil"
)

// Permission is an admin action on a model.
type Permission string

const (
	PermissionView   Permission = "view"
	PermissionAdd    Permission = "add"
	PermissionChange Permission = "change"
	PermissionDelete Permission = "delete"
)

// Model describes one admin entry. Virtual models have no storage and are
// always view-only.
type Model struct {
	Name        string
	Label       string
	Path        string
	Virtual     bool
	Permissions []Permission
}

// Can reports whether p is granted on the model.
func (m Model) Can(p Permission) bool {
	return slices.Contains(m.Permissions, p)
}

// Site is the immutable registration table.
type Site struct {
	models []Model
}

// NewSite validates the models and freezes them. Names must be unique and
// virtual models may only be viewed.
func NewSite(models ...Model) (*Site, error) {
	seen := make(map[string]struct{}, len(models))
	out := make([]Model, 0, len(models))
	for _, m := range models {
		m.Name = strings.TrimSpace(m.Name)
		if m.Name == "" {
			return nil, fmt.Errorf("admin model name is required")
		}
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("admin model %q registered twice", m.Name)
		}
		seen[m.Name] = struct{}{}
		if m.Label == "" {
			m.Label = m.Name
		}
		if len(m.Permissions) == 0 {
			m.Permissions = []Permission{PermissionView}
		}
		if m.Virtual && slices.ContainsFunc(m.Permissions, func(p Permission) bool { return p != PermissionView }) {
			return nil, fmt.Errorf("virtual admin model %q is read-only", m.Name)
		}
		m.Permissions = slices.Clone(m.Permissions)
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b Model) int { return strings.Compare(a.Label, b.Label) })
	return &Site{models: out}, nil
}

// Models returns the registered models ordered by label.
func (s *Site) Models() []Model {
	return slices.Clone(s.models)
}

// Lookup finds a model by name.
func (s *Site) Lookup(name string) (Model, bool) {
	for _, m := range s.models {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}

// Register mounts the admin index.
func (s *Site) Register(r chi.Router) {
	r.Get("/admin/", s.handleIndex)
}

func (s *Site) handleIndex(w http.ResponseWriter, _ *http.Request) {
	resp := IndexResponse{Models: make([]ModelResponse, 0, len(s.models)), Total: len(s.models)}
	for _, m := range s.models {
		perms := make([]string, 0, len(m.Permissions))
		for _, p := range m.Permissions {
			perms = append(perms, string(p))
		}
		resp.Models = append(resp.Models, ModelResponse{
			Name:        m.Name,
			Label:       m.Label,
			Path:        m.Path,
			Virtual:     m.Virtual,
			Permissions: perms,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
