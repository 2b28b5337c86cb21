// Package render turns resolved files and stacks into HTML fragments.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/beekhof/file-stack/pkg/files"
)

//go:embed templates/*.html
var templateFS embed.FS

// View selects the layout of a rendered stack
type View string

const (
	ViewPanel View = "panel"
	ViewList  View = "list"
	ViewCK    View = "ck"
)

// ParseView maps the `options` query value to a view. Anything unknown is a panel.
func ParseView(options string) View {
	switch View(strings.ToLower(strings.TrimSpace(options))) {
	case ViewCK:
		return ViewCK
	case ViewList:
		return ViewList
	default:
		return ViewPanel
	}
}

// StackContext is passed to the stack views
type StackContext struct {
	Count     int
	FileTypes []string
	Namespace string
	CanUpload bool
	Items     []files.File
}

// Renderer renders the embedded templates
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

// New parses the templates. filesURL is the URL prefix files are served under.
func New(filesURL string) (*Renderer, error) {
	r := &Renderer{now: time.Now}
	if !strings.HasSuffix(filesURL, "/") {
		filesURL += "/"
	}

	funcs := template.FuncMap{
		"fileURL": func(f files.File) string {
			return filesURL + escapePath(f.Ref.Path())
		},
		"size": func(n int64) string {
			if n < 0 {
				n = 0
			}
			return humanize.Bytes(uint64(n))
		},
		"ago": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return humanize.RelTime(t, r.now(), "ago", "from now")
		},
		"join": strings.Join,
	}

	tmpl, err := template.New("stack").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// PanelItem renders one file as a panel entry
func (r *Renderer) PanelItem(w io.Writer, f files.File) error {
	return r.execute(w, "panel-item", f)
}

// ListItem renders one file as a list row
func (r *Renderer) ListItem(w io.Writer, f files.File) error {
	return r.execute(w, "list-item", f)
}

// Stack renders a whole stack in the given view
func (r *Renderer) Stack(w io.Writer, view View, ctx StackContext) error {
	return r.execute(w, string(view), ctx)
}

// PanelItemString and ListItemString are used for the JSON add response
func (r *Renderer) PanelItemString(f files.File) (string, error) {
	var b strings.Builder
	if err := r.PanelItem(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) ListItemString(f files.File) (string, error) {
	var b strings.Builder
	if err := r.ListItem(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
