// internal/app/features/plan/views/views.go
package plan

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "plan",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
