package service

import (
	"math"
	"sort"

	"github.com/spec-kit/survey-service/internal/domain"
)

// Aggregator computes the dashboard projection from the full entry sequence.
// Aggregation is a pure function of its input; identical input yields
// identical output.
type Aggregator struct {
	recentLimit int
}

// NewAggregator constructs an aggregator keeping up to recentLimit entries in
// the recent feed.
func NewAggregator(recentLimit int) *Aggregator {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &Aggregator{recentLimit: recentLimit}
}

// Aggregate computes total count, average priority, per-department counts and
// the newest-first recent subset.
func (a *Aggregator) Aggregate(entries []domain.SurveyEntry) domain.DashboardSummary {
	counts := make(map[string]int, len(domain.KnownDepartments())+1)
	for _, dept := range domain.KnownDepartments() {
		counts[dept] = 0
	}
	counts[domain.DepartmentOther] = 0

	sum := 0
	for _, entry := range entries {
		counts[domain.BucketDepartment(entry.Department)]++
		sum += entry.Priority
	}

	average := 0.0
	if len(entries) > 0 {
		average = math.Round(float64(sum)/float64(len(entries))*10) / 10
	}

	return domain.DashboardSummary{
		TotalCount:       len(entries),
		AveragePriority:  average,
		DepartmentCounts: counts,
		RecentEntries:    a.recent(entries),
	}
}

// recent returns up to recentLimit entries ordered newest first. The sort is
// stable, so equal timestamps keep their original relative order. When either
// timestamp in a comparison is not parseable, the raw strings are compared
// instead; that fallback is long-standing stored-data behavior and is kept
// as is.
func (a *Aggregator) recent(entries []domain.SurveyEntry) []domain.SurveyEntry {
	recent := make([]domain.SurveyEntry, len(entries))
	copy(recent, entries)

	sort.SliceStable(recent, func(i, j int) bool {
		return newerThan(recent[i], recent[j])
	})

	if len(recent) > a.recentLimit {
		recent = recent[:a.recentLimit]
	}
	return recent
}

func newerThan(x, y domain.SurveyEntry) bool {
	tx, okX := x.Time()
	ty, okY := y.Time()
	if okX && okY {
		return tx.After(ty)
	}
	return x.Timestamp > y.Timestamp
}
