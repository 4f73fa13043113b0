package compiler

import (
	"fmt"

	"github.com/abhisek/paceline/internal/plan"
)

// WeekSkeleton assigns a role to every day of one week. It is produced
// before any time numbers exist and is never patched afterwards: a changed
// skeleton is a new value.
type WeekSkeleton struct {
	WeekIndex int
	Roles     map[plan.Weekday]plan.DayRole
}

// Role returns the role of a day, defaulting to rest.
func (s WeekSkeleton) Role(d plan.Weekday) plan.DayRole {
	if r, ok := s.Roles[d]; ok {
		return r
	}
	return plan.RoleRest
}

// CountRole counts the days carrying a given role.
func (s WeekSkeleton) CountRole(role plan.DayRole) int {
	n := 0
	for _, d := range plan.AllWeekdays() {
		if s.Role(d) == role {
			n++
		}
	}
	return n
}

// HardDays returns the hard days in Monday-first order.
func (s WeekSkeleton) HardDays() []plan.Weekday {
	var out []plan.Weekday
	for _, d := range plan.AllWeekdays() {
		if s.Role(d) == plan.RoleHard {
			out = append(out, d)
		}
	}
	return out
}

// GenerateSkeleton builds the role structure for one week: the preferred
// long-run day goes long, up to the philosophy's hard-day cap goes hard with
// at least one easy or rest day between quality sessions, and remaining
// active slots fill with easy days. Deterministic: the same input always
// yields the same skeleton.
func GenerateSkeleton(weekIndex int, spec plan.PlanSpecification, phil plan.Philosophy) WeekSkeleton {
	roles := make(map[plan.Weekday]plan.DayRole, 7)
	for _, d := range plan.AllWeekdays() {
		roles[d] = plan.RoleRest
	}
	roles[spec.LongRunDay] = plan.RoleLong
	active := 1

	hardBudget := phil.HardDayLimit(spec.Race)
	if hardBudget > spec.DaysPerWeek-1 {
		hardBudget = spec.DaysPerWeek - 1
	}
	hard := 0
	for _, d := range plan.AllWeekdays() {
		if hard >= hardBudget || active >= spec.DaysPerWeek {
			break
		}
		if roles[d] != plan.RoleRest {
			continue
		}
		if adjacentToHard(roles, d) {
			continue
		}
		roles[d] = plan.RoleHard
		hard++
		active++
	}

	for _, d := range plan.AllWeekdays() {
		if active >= spec.DaysPerWeek {
			break
		}
		if roles[d] != plan.RoleRest {
			continue
		}
		roles[d] = plan.RoleEasy
		active++
	}

	return WeekSkeleton{WeekIndex: weekIndex, Roles: roles}
}

func adjacentToHard(roles map[plan.Weekday]plan.DayRole, day plan.Weekday) bool {
	for _, d := range plan.AllWeekdays() {
		if roles[d] == plan.RoleHard && plan.Adjacent(d, day) {
			return true
		}
	}
	return false
}

// ValidateSkeleton re-counts roles against the structural invariants:
// exactly one long day, and no more hard days than the philosophy allows
// for the plan's race type.
func ValidateSkeleton(s WeekSkeleton, spec plan.PlanSpecification, phil plan.Philosophy) error {
	if n := s.CountRole(plan.RoleLong); n != 1 {
		return plan.NewError(plan.CodeMissingOrExtraLongRun,
			fmt.Sprintf("week %d: expected exactly one long day, found %d", s.WeekIndex, n))
	}
	limit := phil.HardDayLimit(spec.Race)
	if n := s.CountRole(plan.RoleHard); n > limit {
		return plan.NewError(plan.CodeTooManyHardDays,
			fmt.Sprintf("week %d: %d hard days exceeds limit of %d for %s", s.WeekIndex, n, limit, spec.Race))
	}
	return nil
}
