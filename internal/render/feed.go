package render

import "github.com/spec-kit/survey-service/internal/domain"

// PreviewRunes is the issue preview length for the recent feed.
const PreviewRunes = 20

// FeedItem is one row of the recent-entries feed.
type FeedItem struct {
	Timestamp  string
	Department string
	Preview    string
}

// PreviewIssue truncates an issue to PreviewRunes runes, appending an
// ellipsis when anything was cut.
func PreviewIssue(issue string) string {
	runes := []rune(issue)
	if len(runes) <= PreviewRunes {
		return issue
	}
	return string(runes[:PreviewRunes]) + "…"
}

// BuildFeed projects recent entries into feed rows.
func BuildFeed(entries []domain.SurveyEntry) []FeedItem {
	items := make([]FeedItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, FeedItem{
			Timestamp:  entry.Timestamp,
			Department: entry.Department,
			Preview:    PreviewIssue(entry.Issue),
		})
	}
	return items
}
