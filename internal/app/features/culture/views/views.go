// internal/app/features/culture/views/views.go
package culture

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "culture",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
