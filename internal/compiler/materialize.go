package compiler

import (
	"fmt"

	"github.com/abhisek/paceline/internal/plan"
	"github.com/abhisek/paceline/internal/templates"
)

// ConcreteSession is the final, immutable session record: the chosen
// template expanded into the locked duration.
type ConcreteSession struct {
	Day           plan.Weekday
	TemplateID    string
	Type          plan.SessionType
	Intent        plan.Intent
	DurationMin   int
	DistanceMiles float64
	WarmupMin     int
	CooldownMin   int
	Intervals     *IntervalBlock
	// Note is an optional free-text coaching annotation attached by a
	// downstream collaborator. The compiler never fills it.
	Note string
}

// ConcreteWeek is a fully materialized week.
type ConcreteWeek struct {
	WeekIndex          int
	Phase              plan.Phase
	Sessions           []ConcreteSession
	TotalDurationMin   int
	TotalDistanceMiles float64
}

// MaterializeWeek combines an assembled week with a per-day template
// selection into concrete sessions, then re-verifies that expansion changed
// nothing structural: total duration must equal the validated week total
// exactly, the long-run count must still be one, and hard sessions must
// stay within the race-type limit and non-adjacent. This pass is the last
// line of defense against regressions introduced by template expansion.
func MaterializeWeek(wp WeekPlan, selection map[plan.Weekday]string, lib *templates.Library, spec plan.PlanSpecification, phil plan.Philosophy) (ConcreteWeek, error) {
	cw := ConcreteWeek{WeekIndex: wp.WeekIndex, Phase: wp.Phase}

	for _, sess := range wp.Sessions {
		cs := ConcreteSession{
			Day:           sess.Day,
			TemplateID:    sess.TemplateID,
			Type:          sess.Type,
			Intent:        sess.Intent,
			DurationMin:   sess.DurationMin,
			DistanceMiles: DeriveDistance(sess.DurationMin, spec.PaceMinPerMile),
		}

		if id, ok := selection[sess.Day]; ok {
			tmpl, found := lib.Get(id)
			if !found {
				return ConcreteWeek{}, plan.NewError(plan.CodeInvalidTemplateSelection,
					fmt.Sprintf("Invalid template ID %q for %s", id, sess.Day))
			}
			expanded, err := ExpandTemplate(tmpl, sess.DurationMin, spec.PaceMinPerMile)
			if err != nil {
				return ConcreteWeek{}, err
			}
			cs.TemplateID = tmpl.ID
			cs.Type = tmpl.Type
			cs.WarmupMin = expanded.WarmupMin
			cs.CooldownMin = expanded.CooldownMin
			cs.Intervals = expanded.Intervals
		}

		cw.Sessions = append(cw.Sessions, cs)
		cw.TotalDurationMin += cs.DurationMin
		cw.TotalDistanceMiles += cs.DistanceMiles
	}
	cw.TotalDistanceMiles = round2(cw.TotalDistanceMiles)

	if err := validateMaterialized(cw, wp, spec, phil); err != nil {
		return ConcreteWeek{}, err
	}
	return cw, nil
}

// validateMaterialized re-verifies the originally validated invariants after
// all transformations. Every breach contributes one detail to a single
// MATERIALIZATION_VALIDATION_FAILED error.
func validateMaterialized(cw ConcreteWeek, wp WeekPlan, spec plan.PlanSpecification, phil plan.Philosophy) error {
	var details []string

	if cw.TotalDurationMin != wp.TotalDurationMin {
		details = append(details, fmt.Sprintf("total duration changed: validated %d, materialized %d",
			wp.TotalDurationMin, cw.TotalDurationMin))
	}

	longs := 0
	hards := 0
	var prevHardDay plan.Weekday
	haveHard := false
	adjacent := false
	for _, s := range cw.Sessions {
		if s.Type == plan.TypeLong {
			longs++
		}
		if s.Type.IsHard() {
			hards++
			if haveHard && plan.Adjacent(prevHardDay, s.Day) {
				adjacent = true
			}
			prevHardDay = s.Day
			haveHard = true
		}
	}

	if longs != 1 {
		details = append(details, fmt.Sprintf("expected exactly one long session, found %d", longs))
	}
	if limit := phil.HardDayLimit(spec.Race); hards > limit {
		details = append(details, fmt.Sprintf("%d hard sessions exceeds limit of %d", hards, limit))
	}
	if adjacent {
		details = append(details, "hard sessions scheduled on adjacent days")
	}

	if len(details) > 0 {
		return plan.NewError(plan.CodeMaterializationValidationFailed, details...)
	}
	return nil
}
