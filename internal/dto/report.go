package dto

// TrendSeries is the chart-ready monthly series: chronologically
// sorted labels with parallel numeric arrays.
type TrendSeries struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
	Balance []float64 `json:"balance"`
}

// CategorySeries feeds pie-style breakdowns: parallel label/value
// arrays sorted descending by value.
type CategorySeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Shares []string  `json:"shares"` // "42.1%" per slice, one decimal
}

// Report is a rendered tabular export: fixed column order, one row of
// display strings per record.
type Report struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
