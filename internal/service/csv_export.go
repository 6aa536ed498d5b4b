package service

import (
	"strconv"
	"strings"

	"github.com/spec-kit/survey-service/internal/domain"
)

// CSV contact tokens for the fixed locale.
const (
	ContactYes = "はい"
	ContactNo  = "いいえ"
)

// CSVContentType is the MIME type served with the export.
const CSVContentType = "text/csv;charset=utf-8"

var csvHeader = []string{"timestamp", "department", "role", "priority", "issue", "contact"}

// CSVProjector renders the entry sequence as the export document. Rows keep
// input order and departments are exported verbatim, unbucketed.
type CSVProjector struct{}

// ToCSV produces the header-prefixed export text. Every cell is wrapped in
// double quotes with embedded quotes doubled; since quoting is unconditional,
// no other characters need escaping. encoding/csv is unsuitable here as it
// quotes conditionally.
func (CSVProjector) ToCSV(entries []domain.SurveyEntry) string {
	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, csvRow(csvHeader))

	for _, entry := range entries {
		contact := ContactNo
		if entry.Contact {
			contact = ContactYes
		}
		rows = append(rows, csvRow([]string{
			entry.Timestamp,
			entry.Department,
			entry.Role,
			strconv.Itoa(entry.Priority),
			Sanitize(entry.Issue),
			contact,
		}))
	}

	return strings.Join(rows, "\n")
}

func csvRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
