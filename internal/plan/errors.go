package plan

import (
	"fmt"
	"strings"
)

// Code is a stable, machine-readable failure identifier. Callers match on
// codes, never on message text.
type Code string

const (
	// Spec building.
	CodeInvalidPace                  Code = "INVALID_PACE"
	CodeNonPositiveWeeklyDuration    Code = "NON_POSITIVE_WEEKLY_DURATION"
	CodeInvalidDaysPerWeek           Code = "INVALID_DAYS_PER_WEEK"
	CodeWeeklyDurationLengthMismatch Code = "WEEKLY_DURATION_LENGTH_MISMATCH"

	// Skeleton generation.
	CodeMissingOrExtraLongRun Code = "MISSING_OR_EXTRA_LONG_RUN"
	CodeTooManyHardDays       Code = "TOO_MANY_HARD_DAYS"

	// Week validation. CodeInvalidWeek aggregates the rule codes below in
	// its detail list.
	CodeInvalidWeek       Code = "INVALID_WEEK"
	CodeMissingLongRun    Code = "MISSING_LONG_RUN"
	CodeAdjacentHardDays  Code = "ADJACENT_HARD_DAYS"
	CodeInvalidWeeklyTime Code = "INVALID_WEEKLY_TIME"

	// Session expansion.
	CodeTimeAllocationExceedsDuration Code = "TIME_ALLOCATION_EXCEEDS_DURATION"

	// Template selection.
	CodeTemplateSelectionFailed  Code = "TEMPLATE_SELECTION_FAILED"
	CodeInvalidLLMOutput         Code = "INVALID_LLM_OUTPUT"
	CodeInvalidTemplateSelection Code = "INVALID_TEMPLATE_SELECTION"

	// Final materialization pass.
	CodeMaterializationValidationFailed Code = "MATERIALIZATION_VALIDATION_FAILED"
)

// Error is the one error kind every planning stage reports. It carries a
// stable code and an ordered list of human-readable detail strings, one per
// violated rule.
type Error struct {
	Code    Code
	Details []string
}

// NewError creates an Error with the given code and details.
func NewError(code Code, details ...string) *Error {
	return &Error{Code: code, Details: details}
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Details, "; "))
}

// HasDetail reports whether any detail string contains the given substring.
func (e *Error) HasDetail(substr string) bool {
	for _, d := range e.Details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
