package rest

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates static
var webFS embed.FS

var templates = template.Must(template.ParseFS(webFS, "templates/*.html"))

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{templates: templates}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
