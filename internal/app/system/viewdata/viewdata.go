// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/commtrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// NavItem is one entry in the page header menu.
type NavItem struct {
	Label  string
	Href   string
	Active bool
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
//	}
type BaseVM struct {
	SiteName string
	Nav      []NavItem

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

var (
	mu       sync.RWMutex
	siteName = models.DefaultSiteName
)

// Init sets the site name shown in every page header.
// Call this once at startup from bootstrap.
func Init(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = models.DefaultSiteName
	}
	mu.Lock()
	siteName = name
	mu.Unlock()
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	current := httpnav.CurrentPath(r)
	return BaseVM{
		SiteName:    SiteName(),
		Nav:         navFor(current),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: current,
	}
}

func navFor(current string) []NavItem {
	items := []NavItem{
		{Label: "Dashboard", Href: "/dashboard"},
		{Label: "Reports", Href: "/reports"},
	}
	for i := range items {
		items[i].Active = current == items[i].Href || strings.HasPrefix(current, items[i].Href+"/")
	}
	return items
}
