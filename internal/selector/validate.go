package selector

import (
	"fmt"
	"slices"
	"sort"

	"github.com/abhisek/paceline/internal/plan"
)

// ValidateSelection checks a selection against the request it answers:
// exactly one choice per requested day, every choice drawn from that day's
// candidate list, and no two hard days adjacent. Violations accumulate into
// a single INVALID_TEMPLATE_SELECTION error, one detail per rule broken.
func ValidateSelection(sel WeekSelection, req WeekRequest) error {
	var details []string

	if sel.WeekIndex != req.WeekIndex {
		details = append(details, fmt.Sprintf("Week index %d does not match requested week %d", sel.WeekIndex, req.WeekIndex))
	}

	requested := make(map[plan.Weekday]DayRequest, len(req.Days))
	var hardDays []plan.Weekday
	for _, day := range req.Days {
		requested[day.Day] = day
		if day.Role == plan.RoleHard {
			hardDays = append(hardDays, day.Day)
		}

		choice, ok := sel.Choices[day.Day]
		if !ok {
			details = append(details, fmt.Sprintf("Missing selection for %s", day.Day))
			continue
		}
		if !slices.Contains(day.CandidateIDs, choice) {
			details = append(details, fmt.Sprintf("Invalid template ID %q for %s", choice, day.Day))
		}
	}

	extra := make([]plan.Weekday, 0)
	for day := range sel.Choices {
		if _, ok := requested[day]; !ok {
			extra = append(extra, day)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, day := range extra {
		details = append(details, fmt.Sprintf("Unexpected selection for %s", day))
	}

	// Hard roles are fixed by the skeleton and every hard candidate is a
	// hard session type, so adjacency reduces to the requested hard days.
	sort.Slice(hardDays, func(i, j int) bool { return hardDays[i] < hardDays[j] })
	for i := 1; i < len(hardDays); i++ {
		if plan.Adjacent(hardDays[i-1], hardDays[i]) {
			details = append(details, fmt.Sprintf("Hard sessions on adjacent days %s and %s", hardDays[i-1], hardDays[i]))
		}
	}

	if len(details) > 0 {
		return plan.NewError(plan.CodeInvalidTemplateSelection, details...)
	}
	return nil
}
