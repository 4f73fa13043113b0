package compiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/paceline/internal/plan"
)

func testSpec() plan.PlanSpecification {
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	return plan.PlanSpecification{
		ID:             "test-spec",
		Goal:           plan.GoalRace,
		Race:           plan.RaceHalf,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 56),
		WeeklyBudgets:  []int{300, 310, 320, 330, 340, 350, 360, 300},
		PaceMinPerMile: 10.0,
		DaysPerWeek:    5,
		LongRunDay:     plan.Sunday,
		Version:        "1",
	}
}

func TestGenerateSkeleton_HalfMarathonDefault(t *testing.T) {
	spec := testSpec()
	s := GenerateSkeleton(0, spec, plan.DefaultPhilosophy())

	require.Equal(t, plan.RoleLong, s.Role(plan.Sunday))
	require.Equal(t, plan.RoleHard, s.Role(plan.Monday))
	require.Equal(t, plan.RoleHard, s.Role(plan.Wednesday))
	require.Equal(t, plan.RoleEasy, s.Role(plan.Tuesday))
	require.Equal(t, plan.RoleEasy, s.Role(plan.Thursday))
	require.Equal(t, plan.RoleRest, s.Role(plan.Friday))
	require.Equal(t, plan.RoleRest, s.Role(plan.Saturday))
}

func TestGenerateSkeleton_FiveKGetsThirdHardDay(t *testing.T) {
	spec := testSpec()
	spec.Race = plan.Race5K
	s := GenerateSkeleton(0, spec, plan.DefaultPhilosophy())

	require.Equal(t, 3, s.CountRole(plan.RoleHard))
	require.Equal(t, []plan.Weekday{plan.Monday, plan.Wednesday, plan.Friday}, s.HardDays())
}

func TestGenerateSkeleton_NoAdjacentHardDays(t *testing.T) {
	phil := plan.DefaultPhilosophy()
	for _, race := range plan.AllRaceTypes() {
		for days := 4; days <= 7; days++ {
			for _, longDay := range plan.AllWeekdays() {
				spec := testSpec()
				spec.Race = race
				spec.DaysPerWeek = days
				spec.LongRunDay = longDay

				s := GenerateSkeleton(0, spec, phil)
				hard := s.HardDays()
				for i := 1; i < len(hard); i++ {
					require.False(t, plan.Adjacent(hard[i-1], hard[i]),
						"race=%s days=%d long=%s: hard days %s and %s are adjacent",
						race, days, longDay, hard[i-1], hard[i])
				}
				require.NoError(t, ValidateSkeleton(s, spec, phil))
			}
		}
	}
}

func TestGenerateSkeleton_ActiveDayCount(t *testing.T) {
	phil := plan.DefaultPhilosophy()
	for days := 4; days <= 7; days++ {
		spec := testSpec()
		spec.DaysPerWeek = days
		s := GenerateSkeleton(0, spec, phil)
		active := s.CountRole(plan.RoleLong) + s.CountRole(plan.RoleHard) + s.CountRole(plan.RoleEasy)
		require.Equal(t, days, active, "days=%d", days)
	}
}

func TestGenerateSkeleton_HighVolumeHasNoHardDays(t *testing.T) {
	s := GenerateSkeleton(0, testSpec(), plan.HighVolumePhilosophy())
	require.Zero(t, s.CountRole(plan.RoleHard))
	require.Equal(t, 4, s.CountRole(plan.RoleEasy))
}

func TestGenerateSkeleton_Deterministic(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	require.Equal(t, GenerateSkeleton(3, spec, phil), GenerateSkeleton(3, spec, phil))
}

func TestValidateSkeleton_MissingLongRun(t *testing.T) {
	s := WeekSkeleton{WeekIndex: 0, Roles: map[plan.Weekday]plan.DayRole{
		plan.Monday: plan.RoleEasy,
	}}
	err := ValidateSkeleton(s, testSpec(), plan.DefaultPhilosophy())
	var perr *plan.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, plan.CodeMissingOrExtraLongRun, perr.Code)
}

func TestValidateSkeleton_TooManyHardDays(t *testing.T) {
	s := WeekSkeleton{WeekIndex: 0, Roles: map[plan.Weekday]plan.DayRole{
		plan.Monday:    plan.RoleHard,
		plan.Wednesday: plan.RoleHard,
		plan.Friday:    plan.RoleHard,
		plan.Sunday:    plan.RoleLong,
	}}
	err := ValidateSkeleton(s, testSpec(), plan.DefaultPhilosophy())
	var perr *plan.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, plan.CodeTooManyHardDays, perr.Code)
}
