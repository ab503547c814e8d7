// internal/web/render.go
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"devfolio/internal/content"
	"devfolio/internal/stats"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "about", "skills", "projects", "github"}

var funcs = template.FuncMap{
	"join": strings.Join,
	"pct":  func(p float64) string { return fmt.Sprintf("%.2f", p) },
	"date": func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"languageColor": func(language string) string {
		return stats.LanguageColor(language).Class
	},
}

// pages holds one template set per page, each sharing the layout.
type pages struct {
	sets map[string]*template.Template
}

func parsePages() (*pages, error) {
	p := &pages{sets: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		p.sets[name] = t
	}
	return p, nil
}

type pageData struct {
	Title  string
	Active string
	Site   *content.Site
	Body   any
}

// render executes into a buffer first so a template error still yields a clean 500.
func (h *Handler) render(w http.ResponseWriter, code int, page, title, active string, body any) {
	t, ok := h.pages.sets[page]
	if !ok {
		h.logger.Error("Unknown page template", "page", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	data := pageData{Title: title, Active: active, Site: h.site, Body: body}
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("Failed to render page", "page", page, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}
