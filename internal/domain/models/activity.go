// internal/domain/models/activity.go
package models

// ActivityEntry is one row of the backend's activity log.
type ActivityEntry struct {
	Date   Text `json:"date"`
	User   Text `json:"user"`
	Action Text `json:"action"`
}

// Line formats the entry the way the activity list shows it:
// "2024-01-01 - alice: sent".
func (e ActivityEntry) Line() string {
	return string(e.Date) + " - " + string(e.User) + ": " + string(e.Action)
}
