// internal/domain/models/report.go
package models

// Company is the subset of the backend's company record a report carries.
type Company struct {
	Name Text `json:"name"`
}

// Report is a generated communication report as listed by the backend.
type Report struct {
	ID         Text    `json:"id"`
	Company    Company `json:"company"`
	ReportDate Text    `json:"report_date"`
	Summary    Text    `json:"summary"`
}

// Primary is the headline of a report row: "Acme - 2024-02-02".
func (r Report) Primary() string {
	return string(r.Company.Name) + " - " + string(r.ReportDate)
}

// Secondary is the supporting line of a report row.
func (r Report) Secondary() string {
	return string(r.Summary)
}
