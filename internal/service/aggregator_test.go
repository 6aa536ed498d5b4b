package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/survey-service/internal/domain"
)

func entryAt(ts, department string, priority int) domain.SurveyEntry {
	return domain.SurveyEntry{
		Timestamp:  ts,
		Department: department,
		Priority:   priority,
		Issue:      "issue",
	}
}

func TestAggregateEmpty(t *testing.T) {
	summary := NewAggregator(5).Aggregate(nil)

	assert.Equal(t, 0, summary.TotalCount)
	assert.Equal(t, 0.0, summary.AveragePriority)
	assert.Empty(t, summary.RecentEntries)

	for _, dept := range domain.KnownDepartments() {
		assert.Equal(t, 0, summary.DepartmentCounts[dept])
	}
	assert.Equal(t, 0, summary.DepartmentCounts[domain.DepartmentOther])
}

func TestAggregateCountsAndAverage(t *testing.T) {
	entries := []domain.SurveyEntry{
		entryAt("2024-06-01T10:00:00Z", domain.DepartmentSales, 3),
		entryAt("2024-06-01T11:00:00Z", domain.DepartmentSales, 4),
		entryAt("2024-06-01T12:00:00Z", domain.DepartmentDevelopment, 5),
		entryAt("2024-06-01T13:00:00Z", "marketing", 1),
	}

	summary := NewAggregator(5).Aggregate(entries)

	assert.Equal(t, 4, summary.TotalCount)
	assert.Equal(t, 3.3, summary.AveragePriority)
	assert.Equal(t, 2, summary.DepartmentCounts[domain.DepartmentSales])
	assert.Equal(t, 1, summary.DepartmentCounts[domain.DepartmentDevelopment])
	assert.Equal(t, 1, summary.DepartmentCounts[domain.DepartmentOther])
}

func TestAggregateBucketSumMatchesTotal(t *testing.T) {
	entries := []domain.SurveyEntry{
		entryAt("2024-06-01T10:00:00Z", domain.DepartmentSales, 2),
		entryAt("2024-06-01T11:00:00Z", "unknown-a", 3),
		entryAt("2024-06-01T12:00:00Z", "unknown-b", 4),
		entryAt("2024-06-01T13:00:00Z", domain.DepartmentHR, 1),
		entryAt("bad timestamp", "", 5),
	}

	summary := NewAggregator(5).Aggregate(entries)

	sum := 0
	for _, count := range summary.DepartmentCounts {
		sum += count
	}
	assert.Equal(t, summary.TotalCount, sum)
}

func TestAggregateMissingPriorityCountsAsZero(t *testing.T) {
	entries := []domain.SurveyEntry{
		entryAt("2024-06-01T10:00:00Z", domain.DepartmentSales, 4),
		entryAt("2024-06-01T11:00:00Z", domain.DepartmentSales, 0),
	}

	summary := NewAggregator(5).Aggregate(entries)
	assert.Equal(t, 2.0, summary.AveragePriority)
}

func TestRecentEntriesNewestFirst(t *testing.T) {
	entries := make([]domain.SurveyEntry, 0, 7)
	for day := 1; day <= 7; day++ {
		entries = append(entries, entryAt(fmt.Sprintf("2024-06-%02dT10:00:00Z", day), domain.DepartmentSales, 3))
	}

	summary := NewAggregator(5).Aggregate(entries)

	require.Len(t, summary.RecentEntries, 5)
	assert.Equal(t, "2024-06-07T10:00:00Z", summary.RecentEntries[0].Timestamp)
	assert.Equal(t, "2024-06-03T10:00:00Z", summary.RecentEntries[4].Timestamp)
}

func TestRecentEntriesFewerThanLimit(t *testing.T) {
	entries := []domain.SurveyEntry{
		entryAt("2024-06-01T10:00:00Z", domain.DepartmentSales, 3),
		entryAt("2024-06-02T10:00:00Z", domain.DepartmentSales, 3),
	}

	summary := NewAggregator(5).Aggregate(entries)

	require.Len(t, summary.RecentEntries, 2)
	assert.Equal(t, "2024-06-02T10:00:00Z", summary.RecentEntries[0].Timestamp)
}

func TestRecentEntriesStableForEqualTimestamps(t *testing.T) {
	a := entryAt("2024-06-01T10:00:00Z", domain.DepartmentSales, 3)
	a.Issue = "first"
	b := entryAt("2024-06-01T10:00:00Z", domain.DepartmentSales, 3)
	b.Issue = "second"

	summary := NewAggregator(5).Aggregate([]domain.SurveyEntry{a, b})

	require.Len(t, summary.RecentEntries, 2)
	assert.Equal(t, "first", summary.RecentEntries[0].Issue)
	assert.Equal(t, "second", summary.RecentEntries[1].Issue)
}

// Unparsable timestamps order by raw string comparison. Long-standing
// stored-data behavior, kept as is.
func TestRecentEntriesStringFallbackForUnparsableTimestamps(t *testing.T) {
	entries := []domain.SurveyEntry{
		entryAt("aaa", domain.DepartmentSales, 3),
		entryAt("zzz", domain.DepartmentSales, 3),
	}

	summary := NewAggregator(5).Aggregate(entries)

	require.Len(t, summary.RecentEntries, 2)
	assert.Equal(t, "zzz", summary.RecentEntries[0].Timestamp)
	assert.Equal(t, "aaa", summary.RecentEntries[1].Timestamp)
}

func TestAggregateIsDeterministic(t *testing.T) {
	entries := []domain.SurveyEntry{
		entryAt("2024-06-01T10:00:00Z", domain.DepartmentSales, 3),
		entryAt("2024-06-02T10:00:00Z", "marketing", 5),
	}

	agg := NewAggregator(5)
	assert.Equal(t, agg.Aggregate(entries), agg.Aggregate(entries))
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	entries := []domain.SurveyEntry{
		entryAt("2024-06-02T10:00:00Z", domain.DepartmentSales, 3),
		entryAt("2024-06-01T10:00:00Z", domain.DepartmentSales, 3),
	}

	NewAggregator(5).Aggregate(entries)

	assert.Equal(t, "2024-06-02T10:00:00Z", entries[0].Timestamp)
	assert.Equal(t, "2024-06-01T10:00:00Z", entries[1].Timestamp)
}
