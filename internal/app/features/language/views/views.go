// internal/app/features/language/views/views.go
package language

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "language",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
