// internal/domain/models/sitesettings.go
package models

// DefaultSiteName is shown in the page header when no site name is configured.
const DefaultSiteName = "Communication Tracker"
