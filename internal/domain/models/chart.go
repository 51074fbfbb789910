// internal/domain/models/chart.go
package models

import (
	"bytes"
	"errors"
)

// emptyChartJSON is what a chart shows before (or instead of) a backend response.
const emptyChartJSON = `{"labels":[],"datasets":[]}`

var errChartNotObject = errors.New("chart data: expected a JSON object")

// ChartData is a chart data object ({labels, datasets}) exactly as the
// reporting backend returned it. Nothing inside it is inspected.
type ChartData []byte

// EmptyChartData returns a chart with no labels and no datasets.
func EmptyChartData() ChartData {
	return ChartData(emptyChartJSON)
}

func (c *ChartData) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return errChartNotObject
	}
	*c = append(ChartData(nil), b...)
	return nil
}

func (c ChartData) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte(emptyChartJSON), nil
	}
	return c, nil
}

// String returns the chart JSON; an unset chart renders as the empty chart.
func (c ChartData) String() string {
	if len(c) == 0 {
		return emptyChartJSON
	}
	return string(c)
}
