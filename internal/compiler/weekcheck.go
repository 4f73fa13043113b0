package compiler

import (
	"fmt"

	"github.com/abhisek/paceline/internal/plan"
)

// dayPlan is the re-derived view of one day used by the week validator.
// Deriving it fresh from skeleton + allocation (instead of trusting any
// earlier structure) is the point: the validator cross-checks the two.
type dayPlan struct {
	day     plan.Weekday
	role    plan.DayRole
	minutes int
}

// deriveDayPlans rebuilds the per-day view in Monday-first order. Ordering
// matters: the adjacency check below walks this slice.
func deriveDayPlans(s WeekSkeleton, a TimeAllocation) []dayPlan {
	out := make([]dayPlan, 0, 7)
	for _, d := range plan.AllWeekdays() {
		out = append(out, dayPlan{day: d, role: s.Role(d), minutes: a.Minutes[d]})
	}
	return out
}

// ValidateWeek checks a (skeleton, allocation) pair against the week-level
// invariants: exactly one long day, hard-day count within the race-type
// limit, no adjacent hard days, and a total within the philosophy's
// tolerance of the target. Every violated rule contributes one detail to a
// single INVALID_WEEK error.
func ValidateWeek(s WeekSkeleton, a TimeAllocation, spec plan.PlanSpecification, phil plan.Philosophy) error {
	days := deriveDayPlans(s, a)

	var details []string

	longs := 0
	hards := 0
	total := 0
	prevHard := false
	adjacent := false
	for _, dp := range days {
		total += dp.minutes
		switch dp.role {
		case plan.RoleLong:
			longs++
			prevHard = false
		case plan.RoleHard:
			hards++
			if prevHard {
				adjacent = true
			}
			prevHard = true
		case plan.RoleEasy, plan.RoleRest:
			prevHard = false
		}
	}

	if longs != 1 {
		details = append(details, fmt.Sprintf("%s: expected exactly one long run, found %d", plan.CodeMissingLongRun, longs))
	}
	limit := phil.HardDayLimit(spec.Race)
	if hards > limit {
		details = append(details, fmt.Sprintf("%s: %d hard days exceeds limit of %d", plan.CodeTooManyHardDays, hards, limit))
	}
	if adjacent {
		details = append(details, fmt.Sprintf("%s: two hard days scheduled back to back", plan.CodeAdjacentHardDays))
	}
	tol := phil.WeeklyToleranceMinutes(a.Target)
	if diff := total - a.Target; diff > tol || diff < -tol {
		details = append(details, fmt.Sprintf("%s: week total %d outside %d±%d minutes", plan.CodeInvalidWeeklyTime, total, a.Target, tol))
	}

	if len(details) > 0 {
		return plan.NewError(plan.CodeInvalidWeek, details...)
	}
	return nil
}
