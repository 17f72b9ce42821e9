package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidDateRange checks both bounds parse and from does not come after until.
func IsValidDateRange(fromStr, untilStr string) (time.Time, time.Time, bool) {
	from, ok := IsValidDate(fromStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	until, ok := IsValidDate(untilStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if from.After(until) {
		return time.Time{}, time.Time{}, false
	}
	return from, until, true
}

// Clock time validation ("08:00:00" style, seconds optional)
func IsValidClockTime(s string) (time.Time, bool) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, true
	}
	t, err := time.Parse("15:04", s)
	return t, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Employee code validation: 4-4 digit pairs
var employeeCodeRegex = regexp.MustCompile(`^\d{4}-\d{4}$`)

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}
