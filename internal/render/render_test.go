package render

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/survey-service/internal/domain"
)

// unavailableRenderer simulates an absent charting capability.
type unavailableRenderer struct{}

func (unavailableRenderer) Available() bool { return false }
func (unavailableRenderer) RenderBreakdown(map[string]int) (template.HTML, error) {
	return "", assert.AnError
}

func sampleCounts() map[string]int {
	counts := map[string]int{domain.DepartmentOther: 1}
	for _, dept := range domain.KnownDepartments() {
		counts[dept] = 0
	}
	counts[domain.DepartmentSales] = 3
	return counts
}

func TestPreviewIssueShortUnchanged(t *testing.T) {
	assert.Equal(t, "No printer ink", PreviewIssue("No printer ink"))
}

func TestPreviewIssueTruncatesAtTwentyRunes(t *testing.T) {
	long := strings.Repeat("あ", 25)
	preview := PreviewIssue(long)
	assert.Equal(t, strings.Repeat("あ", 20)+"…", preview)
}

func TestPreviewIssueExactLimitNoEllipsis(t *testing.T) {
	exact := strings.Repeat("x", 20)
	assert.Equal(t, exact, PreviewIssue(exact))
}

func TestBuildFeed(t *testing.T) {
	entries := []domain.SurveyEntry{{
		Timestamp:  "2024-06-01T10:00:00Z",
		Department: domain.DepartmentSales,
		Issue:      strings.Repeat("y", 30),
	}}

	feed := BuildFeed(entries)
	require.Len(t, feed, 1)
	assert.Equal(t, strings.Repeat("y", 20)+"…", feed[0].Preview)
	assert.Equal(t, domain.DepartmentSales, feed[0].Department)
}

func TestPickPrefersAvailable(t *testing.T) {
	chart := NewChartRenderer()
	table := NewTableRenderer()

	assert.Same(t, chart, Pick(chart, table).(*ChartRenderer))
	assert.Same(t, table, Pick(unavailableRenderer{}, table).(*TableRenderer))
}

func TestTableRendererAlwaysAvailable(t *testing.T) {
	table := NewTableRenderer()
	require.True(t, table.Available())

	out, err := table.RenderBreakdown(sampleCounts())
	require.NoError(t, err)
	assert.Contains(t, string(out), "<table")
	assert.Contains(t, string(out), domain.DepartmentSales)
	assert.Contains(t, string(out), "<td>3</td>")
}

func TestChartRendererDrawsBars(t *testing.T) {
	chart := NewChartRenderer()
	require.True(t, chart.Available())

	out, err := chart.RenderBreakdown(sampleCounts())
	require.NoError(t, err)
	assert.Contains(t, string(out), "<svg")
	assert.Contains(t, string(out), domain.DepartmentSales)
}

func TestChartRendererZeroCounts(t *testing.T) {
	chart := NewChartRenderer()

	counts := map[string]int{}
	out, err := chart.RenderBreakdown(counts)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<svg")
}

func TestDashboardPageRenders(t *testing.T) {
	summary := domain.DashboardSummary{
		TotalCount:       3,
		AveragePriority:  2.7,
		DepartmentCounts: sampleCounts(),
		RecentEntries: []domain.SurveyEntry{{
			Timestamp:  "2024-06-01T10:00:00Z",
			Department: domain.DepartmentSales,
			Issue:      "No printer ink",
		}},
	}

	page, err := DashboardPage(summary, NewChartRenderer())
	require.NoError(t, err)
	assert.Contains(t, page, "回答数: 3")
	assert.Contains(t, page, "平均優先度: 2.7")
	assert.Contains(t, page, "<svg")
	assert.Contains(t, page, "No printer ink")
}

func TestDashboardPageFallsBackToTable(t *testing.T) {
	summary := domain.DashboardSummary{
		DepartmentCounts: sampleCounts(),
	}

	page, err := DashboardPage(summary, unavailableRenderer{})
	require.NoError(t, err)
	assert.Contains(t, page, "<table")
	assert.NotContains(t, page, "<svg")
}

func TestDashboardPageEmptyState(t *testing.T) {
	summary := domain.DashboardSummary{
		DepartmentCounts: sampleCounts(),
	}

	page, err := DashboardPage(summary, NewChartRenderer())
	require.NoError(t, err)
	assert.Contains(t, page, "回答数: 0")
	assert.Contains(t, page, "平均優先度: 0.0")
	assert.Contains(t, page, "まだ回答がありません。")
}
