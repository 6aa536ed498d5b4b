package domain

// DashboardSummary is the aggregate projection consumed by the dashboard.
type DashboardSummary struct {
	TotalCount       int
	AveragePriority  float64
	DepartmentCounts map[string]int
	RecentEntries    []SurveyEntry
}
