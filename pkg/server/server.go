// Package server exposes the session stacks over HTTP.
package server

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/beekhof/file-stack/pkg/files"
	"github.com/beekhof/file-stack/pkg/render"
	"github.com/beekhof/file-stack/pkg/session"
)

// Resolver turns a raw file name into a resolved file
type Resolver interface {
	Resolve(name string) (files.File, error)
}

// Server is the HTTP transport for the stack. Files, when set, is served
// under /files/ so rendered fragments can link to the stacked files.
type Server struct {
	Store     *session.Store
	Resolver  Resolver
	Renderer  *render.Renderer
	Logger    *slog.Logger
	Files     fs.FS
	FileTypes []string
	Namespace string
	CanUpload bool
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":   true,
			"time": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	mux.HandleFunc("POST /stack/add", s.handleAdd)
	mux.HandleFunc("POST /stack/clear", s.handleClear)
	mux.HandleFunc("GET /stack/show", s.handleShow)
	mux.HandleFunc("GET /stack/panel/{fileName...}", s.handlePanelItem)
	mux.HandleFunc("GET /stack/list/{fileName...}", s.handleListItem)

	if s.Files != nil {
		mux.HandleFunc("GET /files/{fileName...}", s.handleFile)
	}

	return s.logRequests(mux)
}

// addResponse is the JSON body returned by /stack/add
type addResponse struct {
	Type    files.Type `json:"type"`
	Removed *string    `json:"removed"`
	Panel   string     `json:"panel"`
	List    string     `json:"list"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	// Form values and path values arrive already decoded
	file, err := s.Resolver.Resolve(r.FormValue("filename"))
	if err != nil {
		s.writeResolveError(w, err)
		return
	}

	result, err := s.Store.Add(id, file.Ref)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
		return
	}
	if err := s.Store.Save(); err != nil {
		s.Logger.Warn("failed to persist stack", "session", id, "error", err)
	}

	panel, err := s.Renderer.PanelItemString(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
		return
	}
	list, err := s.Renderer.ListItemString(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
		return
	}

	resp := addResponse{
		Type:  file.Type,
		Panel: panel,
		List:  list,
	}
	if result.Evicted != nil {
		removed := result.Evicted.Path()
		resp.Removed = &removed
	}

	s.Logger.Debug("added file to stack", "session", id, "file", file.Ref.Path(), "removed", resp.Removed != nil)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.Store.Forget(c.Value)
		if err := s.Store.Save(); err != nil {
			s.Logger.Warn("failed to persist stack", "session", c.Value, "error", err)
		}
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	count := intFromQuery(r, "count", s.Store.MaxItems())
	if count < 0 {
		count = 0
	}

	refs := s.Store.List(id, count)
	items := make([]files.File, 0, len(refs))
	for _, ref := range refs {
		file, err := s.Resolver.Resolve(ref.Path())
		if err != nil {
			// Files deleted since they were stacked are left out of the view
			s.Logger.Debug("skipping unresolvable stack entry", "session", id, "file", ref.Path(), "error", err)
			continue
		}
		items = append(items, file)
	}

	ctx := render.StackContext{
		Count:     count,
		FileTypes: s.FileTypes,
		Namespace: s.Namespace,
		CanUpload: s.CanUpload,
		Items:     items,
	}
	s.writeHTML(w, func(w io.Writer) error {
		return s.Renderer.Stack(w, render.ParseView(r.URL.Query().Get("options")), ctx)
	})
}

func (s *Server) handlePanelItem(w http.ResponseWriter, r *http.Request) {
	file, err := s.Resolver.Resolve(r.PathValue("fileName"))
	if err != nil {
		s.writeResolveError(w, err)
		return
	}
	s.writeHTML(w, func(w io.Writer) error {
		return s.Renderer.PanelItem(w, file)
	})
}

func (s *Server) handleListItem(w http.ResponseWriter, r *http.Request) {
	file, err := s.Resolver.Resolve(r.PathValue("fileName"))
	if err != nil {
		s.writeResolveError(w, err)
		return
	}
	s.writeHTML(w, func(w io.Writer) error {
		return s.Renderer.ListItem(w, file)
	})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	file, err := s.Resolver.Resolve(r.PathValue("fileName"))
	if err != nil {
		s.writeResolveError(w, err)
		return
	}
	http.ServeFileFS(w, r, s.Files, file.Ref.Path())
}

// writeHTML buffers the output of fn and only sends it when fn succeeds
func (s *Server) writeHTML(w http.ResponseWriter, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.Logger.Error("failed to render", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to render\n")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) writeResolveError(w http.ResponseWriter, err error) {
	status := resolveStatus(err)
	writeJSON(w, status, map[string]any{"ok": false, "error": err.Error()})
}

func resolveStatus(err error) int {
	switch {
	case errors.Is(err, files.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, files.ErrNotAccepted):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, files.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
