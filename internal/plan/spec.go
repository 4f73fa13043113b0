package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlanSpecification is the fully anchored input to the compiler. It is
// created once per planning request and never mutated; every later stage
// consumes it read-only. "Updating" a plan means building a new
// specification and recompiling.
type PlanSpecification struct {
	ID         string
	Goal       GoalKind
	Race       RaceType
	StartDate  time.Time
	EndDate    time.Time
	// WeeklyBudgets holds the target minutes for each week, index 0 being
	// the week starting at StartDate.
	WeeklyBudgets []int
	// PaceMinPerMile is the assumed easy pace. Duration is PRIMARY
	// everywhere; distance is always derived as duration / pace.
	PaceMinPerMile float64
	DaysPerWeek    int
	LongRunDay     Weekday
	Provenance     string
	Version        string
}

// Weeks returns the number of planned weeks.
func (s PlanSpecification) Weeks() int { return len(s.WeeklyBudgets) }

// SpecRequest is the raw planning request before anchoring.
type SpecRequest struct {
	Goal                GoalKind
	Race                RaceType
	StartDate           time.Time
	EndDate             time.Time
	PaceMinPerMile      float64
	RecentWeeklyMinutes int
	DaysPerWeek         int
	LongRunDay          Weekday
	Provenance          string
	Version             string
}

// overloadCap limits each week's budget to 25% above the recent baseline.
const overloadCap = 0.25

// BuildSpec resolves a raw request into an immutable PlanSpecification.
// Weekly budgets ramp linearly from the recent baseline up to the overload
// cap. The result is validated before being returned; an under-specified or
// inconsistent request never produces a specification.
func BuildSpec(req SpecRequest) (PlanSpecification, error) {
	if req.PaceMinPerMile <= 0 {
		return PlanSpecification{}, NewError(CodeInvalidPace,
			fmt.Sprintf("pace must be positive, got %.2f min/mile", req.PaceMinPerMile))
	}
	if req.DaysPerWeek < 4 || req.DaysPerWeek > 7 {
		return PlanSpecification{}, NewError(CodeInvalidDaysPerWeek,
			fmt.Sprintf("days per week must be between 4 and 7, got %d", req.DaysPerWeek))
	}
	if req.RecentWeeklyMinutes <= 0 {
		return PlanSpecification{}, NewError(CodeNonPositiveWeeklyDuration,
			fmt.Sprintf("recent weekly minutes must be positive, got %d", req.RecentWeeklyMinutes))
	}

	weeks := weekSpan(req.StartDate, req.EndDate)
	if weeks < 1 {
		return PlanSpecification{}, NewError(CodeWeeklyDurationLengthMismatch,
			"date range does not span at least one week")
	}

	budgets := rampBudgets(req.RecentWeeklyMinutes, weeks)

	race := req.Race
	if req.Goal != GoalRace {
		race = RaceCustom
	}

	spec := PlanSpecification{
		ID:             uuid.NewString(),
		Goal:           req.Goal,
		Race:           race,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		WeeklyBudgets:  budgets,
		PaceMinPerMile: req.PaceMinPerMile,
		DaysPerWeek:    req.DaysPerWeek,
		LongRunDay:     req.LongRunDay,
		Provenance:     req.Provenance,
		Version:        req.Version,
	}
	if err := spec.Validate(); err != nil {
		return PlanSpecification{}, err
	}
	return spec, nil
}

// Validate re-checks the specification invariants: positive pace, positive
// budgets, days-per-week in range, and a budget list whose length matches
// the date span within one week.
func (s PlanSpecification) Validate() error {
	if s.PaceMinPerMile <= 0 {
		return NewError(CodeInvalidPace,
			fmt.Sprintf("pace must be positive, got %.2f min/mile", s.PaceMinPerMile))
	}
	if s.DaysPerWeek < 4 || s.DaysPerWeek > 7 {
		return NewError(CodeInvalidDaysPerWeek,
			fmt.Sprintf("days per week must be between 4 and 7, got %d", s.DaysPerWeek))
	}
	for i, b := range s.WeeklyBudgets {
		if b <= 0 {
			return NewError(CodeNonPositiveWeeklyDuration,
				fmt.Sprintf("week %d budget must be positive, got %d", i, b))
		}
	}
	span := weekSpan(s.StartDate, s.EndDate)
	diff := len(s.WeeklyBudgets) - span
	if diff < -1 || diff > 1 {
		return NewError(CodeWeeklyDurationLengthMismatch,
			fmt.Sprintf("date range spans %d weeks but %d weekly budgets were produced", span, len(s.WeeklyBudgets)))
	}
	return nil
}

// weekSpan counts the whole-or-partial weeks between two dates.
func weekSpan(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 0
	}
	days := int(end.Sub(start).Hours() / 24)
	return (days + 6) / 7
}

// rampBudgets builds the weekly minute targets: a linear ramp from the
// baseline to at most baseline x (1 + overloadCap).
func rampBudgets(baseline, weeks int) []int {
	budgets := make([]int, weeks)
	ceiling := float64(baseline) * (1 + overloadCap)
	for i := range budgets {
		var target float64
		if weeks == 1 {
			target = float64(baseline)
		} else {
			target = float64(baseline) + float64(baseline)*overloadCap*float64(i)/float64(weeks-1)
		}
		if target > ceiling {
			target = ceiling
		}
		budgets[i] = int(target)
	}
	return budgets
}
