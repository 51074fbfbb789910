// internal/app/features/reports/types.go
package reports

import (
	"github.com/dalemusser/commtrack/internal/app/system/viewdata"
)

// reportRow is one line of the report list.
type reportRow struct {
	ID        string
	Primary   string
	Secondary string
}

type listData struct {
	viewdata.BaseVM
	Rows        []reportRow
	Unavailable bool
}
