package dto

import (
	"fmt"

	"github.com/spec-kit/survey-service/internal/domain"
	"github.com/spec-kit/survey-service/internal/render"
)

// SubmitEntryRequest carries raw form field values. Priority and contact
// arrive as strings; the validator owns their interpretation.
type SubmitEntryRequest struct {
	Department string `json:"department" form:"department"`
	Role       string `json:"role" form:"role"`
	Issue      string `json:"issue" form:"issue"`
	Priority   string `json:"priority" form:"priority"`
	Contact    string `json:"contact" form:"contact"`
}

// EntryResponse echoes a stored entry.
type EntryResponse struct {
	Timestamp  string `json:"timestamp"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Priority   int    `json:"priority"`
	Issue      string `json:"issue"`
	Contact    bool   `json:"contact"`
}

// RecentEntryResponse is one row of the dashboard feed.
type RecentEntryResponse struct {
	Timestamp    string `json:"timestamp"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	Priority     int    `json:"priority"`
	IssuePreview string `json:"issue_preview"`
	Contact      bool   `json:"contact"`
}

// DashboardResponse is the aggregate projection for the dashboard.
type DashboardResponse struct {
	TotalCount       int                   `json:"total_count"`
	AveragePriority  string                `json:"average_priority"`
	DepartmentCounts map[string]int        `json:"department_counts"`
	RecentEntries    []RecentEntryResponse `json:"recent_entries"`
}

// NewEntryResponse maps a domain entry.
func NewEntryResponse(entry *domain.SurveyEntry) EntryResponse {
	return EntryResponse{
		Timestamp:  entry.Timestamp,
		Department: entry.Department,
		Role:       entry.Role,
		Priority:   entry.Priority,
		Issue:      entry.Issue,
		Contact:    entry.Contact,
	}
}

// NewDashboardResponse maps a summary, formatting the average with one
// decimal place for display.
func NewDashboardResponse(summary domain.DashboardSummary) DashboardResponse {
	recent := make([]RecentEntryResponse, 0, len(summary.RecentEntries))
	for _, entry := range summary.RecentEntries {
		recent = append(recent, RecentEntryResponse{
			Timestamp:    entry.Timestamp,
			Department:   entry.Department,
			Role:         entry.Role,
			Priority:     entry.Priority,
			IssuePreview: render.PreviewIssue(entry.Issue),
			Contact:      entry.Contact,
		})
	}
	return DashboardResponse{
		TotalCount:       summary.TotalCount,
		AveragePriority:  fmt.Sprintf("%.1f", summary.AveragePriority),
		DepartmentCounts: summary.DepartmentCounts,
		RecentEntries:    recent,
	}
}
