package compiler

import (
	"fmt"

	"github.com/abhisek/paceline/internal/plan"
	"github.com/abhisek/paceline/internal/templates"
)

// IntervalBlock is a concrete, scaled interval set inside a session.
type IntervalBlock struct {
	Reps      int
	WorkMin   int
	RestMin   int
	Intensity string
}

// ExpandedSession is a template's structure fitted into a locked duration.
// Warm-up + main + cool-down always sum to the locked duration.
type ExpandedSession struct {
	WarmupMin   int
	CooldownMin int
	MainMin     int
	Intervals   *IntervalBlock
}

// ExpandTemplate fits a template's structure into the day's locked duration.
// The warm-up is reserved first; if warm-up plus cool-down would meet or
// exceed the duration the cool-down is dropped (never the warm-up), and if
// even the warm-up alone does not fit the expansion fails; that pairing
// should have been excluded by candidate retrieval. Interval rep counts
// scale down, never up, to fit the main-set budget, keeping at least one
// rep. Pace is re-checked defensively at this boundary.
func ExpandTemplate(tmpl templates.SessionTemplate, durationMin int, paceMinPerMile float64) (ExpandedSession, error) {
	if paceMinPerMile <= 0 {
		return ExpandedSession{}, plan.NewError(plan.CodeInvalidPace,
			fmt.Sprintf("pace must be positive, got %.2f min/mile", paceMinPerMile))
	}

	warmup := tmpl.WarmupMin
	cooldown := tmpl.CooldownMin

	if warmup >= durationMin {
		return ExpandedSession{}, plan.NewError(plan.CodeTimeAllocationExceedsDuration,
			fmt.Sprintf("template %s: insufficient duration %d for warm-up of %d minutes", tmpl.ID, durationMin, warmup))
	}
	if warmup+cooldown >= durationMin {
		cooldown = 0
	}

	out := ExpandedSession{
		WarmupMin:   warmup,
		CooldownMin: cooldown,
		MainMin:     durationMin - warmup - cooldown,
	}

	if iv := tmpl.Intervals; iv != nil {
		out.Intervals = scaleIntervals(*iv, out.MainMin)
	}

	return out, nil
}

// scaleIntervals reduces the rep count so the full interval set fits the
// main-set budget. At least one rep survives regardless.
func scaleIntervals(spec templates.IntervalSpec, mainBudget int) *IntervalBlock {
	reps := spec.Reps
	if cost := spec.WorkMin + spec.RestMin; cost > 0 {
		if fit := mainBudget / cost; fit < reps {
			reps = fit
		}
	}
	if reps < 1 {
		reps = 1
	}
	return &IntervalBlock{
		Reps:      reps,
		WorkMin:   spec.WorkMin,
		RestMin:   spec.RestMin,
		Intensity: spec.Intensity,
	}
}
