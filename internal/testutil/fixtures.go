package testutil

// Canned reporting-backend bodies shared by handler and client tests.
const (
	FrequencyJSON     = `{"labels":["Jan","Feb"],"datasets":[{"label":"Emails","data":[3,5]}]}`
	EffectivenessJSON = `{"labels":["Positive","Neutral"],"datasets":[{"label":"Responses","data":[7,2]}]}`
	OverdueJSON       = `{"labels":["W1","W2","W3"],"datasets":[{"label":"Overdue","data":[1,0,4],"borderColor":"#c00"}]}`
	ReportsJSON       = `[{"id":1,"company":{"name":"Acme"},"report_date":"2024-02-02","summary":"ok"}]`
	ActivityLogJSON   = `[{"date":"2024-01-01","user":"alice","action":"sent"}]`
)

// BackendPrefix is the mount point of the fake backend, mirroring the
// real service's /reporting-module/ prefix.
const BackendPrefix = "/reporting-module/"

// SeedDashboard registers successful responses for all five dashboard feeds.
func SeedDashboard(b *FakeBackend) {
	b.Respond("communication-frequency", 200, FrequencyJSON)
	b.Respond("engagement-effectiveness", 200, EffectivenessJSON)
	b.Respond("overdue-trends", 200, OverdueJSON)
	b.Respond("reports", 200, ReportsJSON)
	b.Respond("activity-log", 200, ActivityLogJSON)
}
