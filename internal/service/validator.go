package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spec-kit/survey-service/internal/domain"
)

// Clock supplies the creation timestamp; injected for testability.
type Clock func() time.Time

// FormInput carries the raw form field values prior to validation. Contact is
// the boolean-ish checkbox flag as submitted ("true", "1", "on", ...).
type FormInput struct {
	Department string
	Role       string
	Issue      string
	Priority   string
	Contact    string
}

// Validation messages, collected in field order.
const (
	MsgDepartmentRequired = "department required"
	MsgIssueRequired      = "issue required"
	MsgIssueTooLong       = "issue too long"
	MsgPriorityRange      = "priority must be an integer between 1 and 5"
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Validator turns raw form input into a well-formed entry or an ordered list
// of human-readable error messages.
type Validator struct {
	clock          Clock
	issueMaxLength int
}

// NewValidator constructs a validator with the given clock and issue length cap.
func NewValidator(clock Clock, issueMaxLength int) *Validator {
	if issueMaxLength <= 0 {
		issueMaxLength = 200
	}
	return &Validator{clock: clock, issueMaxLength: issueMaxLength}
}

// Validate checks every rule and collects all applicable messages before
// returning; it never short-circuits on the first failure. On success the
// returned entry carries a timestamp from the injected clock.
func (v *Validator) Validate(input FormInput) (*domain.SurveyEntry, []string) {
	var errs []string

	if strings.TrimSpace(input.Department) == "" {
		errs = append(errs, MsgDepartmentRequired)
	}

	issue := Sanitize(input.Issue)
	if issue == "" {
		errs = append(errs, MsgIssueRequired)
	} else if utf8.RuneCountInString(issue) > v.issueMaxLength {
		errs = append(errs, MsgIssueTooLong)
	}

	priority, err := strconv.Atoi(strings.TrimSpace(input.Priority))
	if err != nil || priority < 1 || priority > 5 {
		errs = append(errs, MsgPriorityRange)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.SurveyEntry{
		Timestamp:  v.clock().Format(domain.TimestampLayout),
		Department: input.Department,
		Role:       Sanitize(input.Role),
		Priority:   priority,
		Issue:      issue,
		Contact:    parseFlag(input.Contact),
	}, nil
}

// Sanitize collapses embedded line break runs into single spaces and trims
// surrounding whitespace. Applied to issue and role on submission and to
// issue again on CSV export.
func Sanitize(s string) string {
	return strings.TrimSpace(lineBreaks.ReplaceAllString(s, " "))
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}
