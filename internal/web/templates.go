package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Engine renders HTML pages. Each page is parsed together with the shared
// layout into its own template set.
type Engine struct {
	pages map[string]*template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	Flash       *FlashMessage
	CurrentPath string
	Data        any
}

var pageNames = []string{"index.html", "add.html", "challenges.html"}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"minutes": func(n int) string {
			if n <= 0 {
				return ""
			}
			return (time.Duration(n) * time.Minute).String()
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = tpl
	}

	return &Engine{pages: pages}, nil
}

// Render executes the named page. Output is buffered so a template error
// never leaves a half written response.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	tpl, ok := e.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
