// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// Site holds the portfolio-wide display settings shown on every page.
// Configured once at startup from the app configuration.
type Site struct {
	Title       string
	OwnerName   string
	CurrentWeek int
}

var (
	mu   sync.RWMutex
	site = Site{Title: "GL Japan E-Portfolio"}
)

// Init sets the site settings. Call once at startup from bootstrap, before
// handlers serve traffic.
func Init(s Site) {
	mu.Lock()
	defer mu.Unlock()
	if s.Title != "" {
		site.Title = s.Title
	}
	site.OwnerName = s.OwnerName
	site.CurrentWeek = s.CurrentWeek
}

// CurrentSite returns the configured site settings.
func CurrentSite() Site {
	mu.RLock()
	defer mu.RUnlock()
	return site
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site settings
	SiteTitle   string
	OwnerName   string
	CurrentWeek int

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	s := CurrentSite()
	return BaseVM{
		SiteTitle:   s.Title,
		OwnerName:   s.OwnerName,
		CurrentWeek: s.CurrentWeek,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}
