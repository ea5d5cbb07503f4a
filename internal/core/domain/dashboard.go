package domain

// DashboardSummary holds the headline aggregates shown on the dashboard.
// All values are computed server-side; AverageBudget is rounded to two
// decimal places and is zero when there are no campaigns.
type DashboardSummary struct {
	TotalCampaigns  int64   `json:"total_campaigns"`
	TotalBudget     float64 `json:"total_budget"`
	ActiveCampaigns int64   `json:"active_campaigns"`
	AverageBudget   float64 `json:"average_budget"`
}

// StatusCount is one bucket of the status distribution projection.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int64  `json:"count"`
}

// CategoryBudget is the summed budget for one campaign category.
type CategoryBudget struct {
	Category    Category `json:"category"`
	TotalBudget float64  `json:"total_budget"`
}

// TimeSeriesPoint counts campaigns created on one calendar date. The date
// is kept as a "YYYY-MM-DD" string, matching the wire format.
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
