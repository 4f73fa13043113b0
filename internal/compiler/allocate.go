package compiler

import "github.com/abhisek/paceline/internal/plan"

// TimeAllocation maps each day of one week to its allocated minutes.
// Durations are PRIMARY values: everything downstream (distance included)
// derives from them.
type TimeAllocation struct {
	WeekIndex int
	Target    int
	Minutes   map[plan.Weekday]int
}

// Total sums the allocated minutes.
func (a TimeAllocation) Total() int {
	sum := 0
	for _, m := range a.Minutes {
		sum += m
	}
	return sum
}

// Allocate distributes a week's target minutes across the skeleton's days.
// The long day receives roughly two average days' worth of time, clamped
// into the philosophy's ratio bounds. Of the remainder, the hard share goes
// to hard days split equally and the rest splits equally across easy days.
// All division truncates; the truncation remainder lands on the first easy
// day so the week total always equals the target exactly. Rest days get
// zero. No randomness anywhere.
func Allocate(s WeekSkeleton, target int, phil plan.Philosophy) TimeAllocation {
	minutes := make(map[plan.Weekday]int, 7)
	for _, d := range plan.AllWeekdays() {
		minutes[d] = 0
	}

	hardCount := s.CountRole(plan.RoleHard)
	easyCount := s.CountRole(plan.RoleEasy)
	activeCount := hardCount + easyCount + 1

	long := longRunMinutes(target, activeCount, phil)

	remaining := target - long
	perHard := 0
	if hardCount > 0 {
		if easyCount > 0 {
			perHard = int(float64(remaining)*phil.HardShare) / hardCount
		} else {
			perHard = remaining / hardCount
		}
	}
	perEasy := 0
	if easyCount > 0 {
		perEasy = (remaining - perHard*hardCount) / easyCount
	}

	var longDay plan.Weekday
	for _, d := range plan.AllWeekdays() {
		switch s.Role(d) {
		case plan.RoleLong:
			minutes[d] = long
			longDay = d
		case plan.RoleHard:
			minutes[d] = perHard
		case plan.RoleEasy:
			minutes[d] = perEasy
		case plan.RoleRest:
			// zero
		}
	}

	// Truncation remainder: first easy day, else first hard day, else the
	// long day. Keeps the week total exact without disturbing the long-run
	// ratio bound in the common case.
	leftover := target - (long + perHard*hardCount + perEasy*easyCount)
	if leftover > 0 {
		assigned := false
		for _, role := range []plan.DayRole{plan.RoleEasy, plan.RoleHard} {
			for _, d := range plan.AllWeekdays() {
				if s.Role(d) == role {
					minutes[d] += leftover
					assigned = true
					break
				}
			}
			if assigned {
				break
			}
		}
		if !assigned {
			minutes[longDay] += leftover
		}
	}

	return TimeAllocation{WeekIndex: s.WeekIndex, Target: target, Minutes: minutes}
}

// longRunMinutes sizes the long run at twice an average active day, clamped
// into the philosophy's [min, max] share of the weekly target.
func longRunMinutes(target, activeCount int, phil plan.Philosophy) int {
	base := 2 * target / activeCount
	lo := int(float64(target) * phil.LongRunRatioMin)
	hi := int(float64(target) * phil.LongRunRatioMax)
	if base < lo {
		base = lo
	}
	if base > hi {
		base = hi
	}
	if base > target {
		base = target
	}
	return base
}
