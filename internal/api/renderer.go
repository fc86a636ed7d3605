// Package api contains the HTTP surface of the Geocheck app
package api

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer plugs html/template into Echo's rendering hook.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every template matching glob.
func NewRenderer(glob string) (*Renderer, error) {
	templates, err := template.ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
