// internal/app/features/deliverables/views/views.go
package deliverables

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "deliverables",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
