// File: internal/view/view.go
package view

import (
	"embed"
	"html/template"
	"io"

	"item-catalog/internal/model"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// CatalogPage backs the catalog home for both anonymous and signed-in
// visitors.
type CatalogPage struct {
	UserName   string
	Categories []model.Category
	Items      []model.Item
	Flash      string
}

// ItemsPage backs the per-category listing.
type ItemsPage struct {
	Category model.Category
	Items    []model.Item
	Creator  model.User
	Flash    string
}

// ItemFormPage backs the new/edit forms.
type ItemFormPage struct {
	Category model.Category
	Item     model.Item
}

// MessagePage backs the static pages (logged out, incomplete account,
// provider errors).
type MessagePage struct {
	Message string
}
