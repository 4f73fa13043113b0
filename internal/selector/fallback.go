package selector

import (
	"context"
	"sort"

	"github.com/abhisek/paceline/internal/plan"
)

// Fallback is the deterministic selector: for every day it chooses the
// lowest template ID in stable order. Given non-empty candidate lists it is
// a total function: it cannot fail and always passes ValidateSelection.
type Fallback struct{}

// SelectWeek picks the first (lowest-ID) candidate for every requested day.
func (Fallback) SelectWeek(_ context.Context, req WeekRequest) (WeekSelection, error) {
	choices := make(map[plan.Weekday]string, len(req.Days))
	for _, day := range req.Days {
		if len(day.CandidateIDs) == 0 {
			continue
		}
		ids := make([]string, len(day.CandidateIDs))
		copy(ids, day.CandidateIDs)
		sort.Strings(ids)
		choices[day.Day] = ids[0]
	}
	return WeekSelection{WeekIndex: req.WeekIndex, Choices: choices}, nil
}
