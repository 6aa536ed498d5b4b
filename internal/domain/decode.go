package domain

import "strconv"

// RawEntry is an untrusted record as read from storage. Field presence and
// types are not guaranteed; DecodeEntry normalizes before any other component
// touches the data.
type RawEntry map[string]any

// DecodeEntry coerces an untrusted stored record into a SurveyEntry. ok is
// false only for null or non-object elements; missing or mistyped fields
// degrade to zero values (priority 0, empty strings, contact false) rather
// than failing the record.
func DecodeEntry(raw RawEntry) (SurveyEntry, bool) {
	if raw == nil {
		return SurveyEntry{}, false
	}
	return SurveyEntry{
		Timestamp:  stringField(raw, "timestamp"),
		Department: stringField(raw, "department"),
		Role:       stringField(raw, "role"),
		Priority:   intField(raw, "priority"),
		Issue:      stringField(raw, "issue"),
		Contact:    boolField(raw, "contact"),
	}, true
}

func stringField(raw RawEntry, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

func intField(raw RawEntry, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func boolField(raw RawEntry, key string) bool {
	v, _ := raw[key].(bool)
	return v
}
