package blog

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/django/v3"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine returns the template engine for the HTML surface (the
// activation success and failure pages).
func NewViewEngine() *django.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	return django.NewFileSystem(http.FS(sub), ".html")
}
