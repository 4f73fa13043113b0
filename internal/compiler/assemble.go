package compiler

import (
	"math"

	"github.com/abhisek/paceline/internal/plan"
)

// TemplateUnassigned is the sentinel template ID a session carries between
// assembly and selection.
const TemplateUnassigned = "UNASSIGNED"

// MaterializedSession is one scheduled session inside a WeekPlan. Duration
// is the PRIMARY value; distance is DERIVED from duration and pace and is
// never stored independently of that formula.
type MaterializedSession struct {
	Day           plan.Weekday
	Role          plan.DayRole
	Type          plan.SessionType
	Intent        plan.Intent
	TemplateID    string
	DurationMin   int
	DistanceMiles float64
}

// WeekPlan is a validated week of sessions. Totals are summed directly from
// the emitted sessions; the sessions are the single source of truth.
type WeekPlan struct {
	WeekIndex          int
	Phase              plan.Phase
	Sessions           []MaterializedSession
	TotalDurationMin   int
	TotalDistanceMiles float64
}

// Session returns the session on the given day, if any.
func (w WeekPlan) Session(d plan.Weekday) (MaterializedSession, bool) {
	for _, s := range w.Sessions {
		if s.Day == d {
			return s, true
		}
	}
	return MaterializedSession{}, false
}

// AssembleWeek converts a validated (skeleton, allocation) pair into a
// WeekPlan. Every day with non-zero minutes becomes a session with its
// role-derived type and intent and the UNASSIGNED template sentinel.
func AssembleWeek(s WeekSkeleton, a TimeAllocation, spec plan.PlanSpecification, phase plan.Phase) WeekPlan {
	wp := WeekPlan{WeekIndex: s.WeekIndex, Phase: phase}
	for _, d := range plan.AllWeekdays() {
		mins := a.Minutes[d]
		if mins == 0 {
			continue
		}
		role := s.Role(d)
		sess := MaterializedSession{
			Day:           d,
			Role:          role,
			Type:          role.DefaultType(),
			Intent:        role.Intent(),
			TemplateID:    TemplateUnassigned,
			DurationMin:   mins,
			DistanceMiles: DeriveDistance(mins, spec.PaceMinPerMile),
		}
		wp.Sessions = append(wp.Sessions, sess)
		wp.TotalDurationMin += sess.DurationMin
		wp.TotalDistanceMiles += sess.DistanceMiles
	}
	wp.TotalDistanceMiles = round2(wp.TotalDistanceMiles)
	return wp
}

// DeriveDistance computes miles from minutes and pace, rounded once to two
// decimal places. This is the only distance formula in the compiler.
func DeriveDistance(durationMin int, paceMinPerMile float64) float64 {
	return round2(float64(durationMin) / paceMinPerMile)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
