package selector

import (
	"context"

	"github.com/abhisek/paceline/internal/plan"
)

// DayRequest is one day's slot in a selection request: its role, locked
// duration, and the pre-filtered candidate template IDs. Days with empty
// candidate lists never appear in a request.
type DayRequest struct {
	Day          plan.Weekday
	Role         plan.DayRole
	DurationMin  int
	CandidateIDs []string
}

// WeekRequest asks for one template choice per day, from the given
// candidates only. The candidate lists are the complete universe of legal
// answers: nothing the advisory process says can widen them.
type WeekRequest struct {
	WeekIndex         int
	Race              plan.RaceType
	Phase             plan.Phase
	PhilosophyID      string
	PhilosophySummary string
	// Days is Monday-first ordered.
	Days []DayRequest
}

// WeekSelection maps each requested day to the chosen template ID. Callers
// cannot tell whether a selection came from the advisory path or the
// fallback path without reading the logs; both are equally valid.
type WeekSelection struct {
	WeekIndex int
	Choices   map[plan.Weekday]string
}

// Selector chooses one template per requested day.
type Selector interface {
	SelectWeek(ctx context.Context, req WeekRequest) (WeekSelection, error)
}
