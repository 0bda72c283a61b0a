package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	listTemplate   = "list"
	editTemplate   = "edit"
	deleteTemplate = "delete"
)

// Renderer renders page templates wrapped into common layout
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses embedded page templates
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template)
	for _, name := range []string{listTemplate, editTemplate, deleteTemplate} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template - %w", name, err)
		}
		templates[name] = t
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s is not registered", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
