package domain

import "time"

// TimestampLayout is the wire format for entry timestamps.
const TimestampLayout = time.RFC3339

// SurveyEntry is the sole persisted entity: one submitted survey record.
type SurveyEntry struct {
	Timestamp  string `json:"timestamp"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Priority   int    `json:"priority"`
	Issue      string `json:"issue"`
	Contact    bool   `json:"contact"`
}

// Time parses the entry timestamp. ok is false when the stored value is not a
// valid RFC3339 datetime; callers that order entries fall back to comparing
// the raw strings in that case.
func (e SurveyEntry) Time() (time.Time, bool) {
	t, err := time.Parse(TimestampLayout, e.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
