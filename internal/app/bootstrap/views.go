// internal/app/bootstrap/views.go
package bootstrap

// Blank imports pull in every feature's views package so their embedded
// template sets register before the engine boots in BuildHandler.
import (
	_ "github.com/dalemusser/evidencehub/internal/app/features/culture/views"
	_ "github.com/dalemusser/evidencehub/internal/app/features/deliverables/views"
	_ "github.com/dalemusser/evidencehub/internal/app/features/home/views"
	_ "github.com/dalemusser/evidencehub/internal/app/features/language/views"
	_ "github.com/dalemusser/evidencehub/internal/app/features/pages/views"
	_ "github.com/dalemusser/evidencehub/internal/app/features/plan/views"
	_ "github.com/dalemusser/evidencehub/internal/app/features/shared/views"
)
