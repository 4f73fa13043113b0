package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/paceline/internal/plan"
)

func TestValidateWeek_GeneratedWeekPasses(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	for i, target := range spec.WeeklyBudgets {
		s := GenerateSkeleton(i, spec, phil)
		a := Allocate(s, target, phil)
		require.NoError(t, ValidateWeek(s, a, spec, phil), "week %d", i)
	}
}

func TestValidateWeek_AdjacentHardDays(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := WeekSkeleton{WeekIndex: 0, Roles: map[plan.Weekday]plan.DayRole{
		plan.Monday:    plan.RoleLong,
		plan.Tuesday:   plan.RoleHard,
		plan.Wednesday: plan.RoleHard,
		plan.Thursday:  plan.RoleEasy,
		plan.Friday:    plan.RoleEasy,
	}}
	a := Allocate(s, 300, phil)

	err := ValidateWeek(s, a, spec, phil)
	var perr *plan.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, plan.CodeInvalidWeek, perr.Code)
	require.True(t, perr.HasDetail(string(plan.CodeAdjacentHardDays)))
	require.False(t, perr.HasDetail(string(plan.CodeTooManyHardDays)))
}

func TestValidateWeek_HardAfterLongIsLegal(t *testing.T) {
	// A hard day directly after the long day is allowed; only hard-hard
	// adjacency is forbidden.
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := WeekSkeleton{WeekIndex: 0, Roles: map[plan.Weekday]plan.DayRole{
		plan.Monday:   plan.RoleLong,
		plan.Tuesday:  plan.RoleHard,
		plan.Thursday: plan.RoleHard,
		plan.Saturday: plan.RoleEasy,
		plan.Sunday:   plan.RoleEasy,
	}}
	a := Allocate(s, 300, phil)

	require.NoError(t, ValidateWeek(s, a, spec, phil))
}

func TestValidateWeek_TotalOutsideTolerance(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := GenerateSkeleton(0, spec, phil)
	a := Allocate(s, 480, phil)
	// Tolerance at 480 is 9 minutes; drop 10 to cross it.
	a.Minutes[plan.Tuesday] -= 10

	err := ValidateWeek(s, a, spec, phil)
	var perr *plan.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, plan.CodeInvalidWeek, perr.Code)
	require.True(t, perr.HasDetail(string(plan.CodeInvalidWeeklyTime)))
}

func TestValidateWeek_DriftWithinToleranceIsLegal(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := GenerateSkeleton(0, spec, phil)
	a := Allocate(s, 480, phil)
	a.Minutes[plan.Tuesday] -= 9

	require.NoError(t, ValidateWeek(s, a, spec, phil))
}

func TestValidateWeek_AggregatesAllViolations(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := WeekSkeleton{WeekIndex: 0, Roles: map[plan.Weekday]plan.DayRole{
		plan.Monday:    plan.RoleHard,
		plan.Tuesday:   plan.RoleHard,
		plan.Wednesday: plan.RoleHard,
	}}
	a := TimeAllocation{WeekIndex: 0, Target: 300, Minutes: map[plan.Weekday]int{
		plan.Monday: 10, plan.Tuesday: 10, plan.Wednesday: 10,
	}}

	err := ValidateWeek(s, a, spec, phil)
	var perr *plan.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, plan.CodeInvalidWeek, perr.Code)
	require.Len(t, perr.Details, 4)
	require.True(t, perr.HasDetail(string(plan.CodeMissingLongRun)))
	require.True(t, perr.HasDetail(string(plan.CodeTooManyHardDays)))
	require.True(t, perr.HasDetail(string(plan.CodeAdjacentHardDays)))
	require.True(t, perr.HasDetail(string(plan.CodeInvalidWeeklyTime)))
}
