package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/paceline/internal/plan"
)

func TestAllocate_SplitsTargetExactly(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := GenerateSkeleton(0, spec, phil)

	a := Allocate(s, 480, phil)

	// Two average days would be 192 minutes; the 30% ceiling pulls the long
	// run down to 144.
	require.Equal(t, 144, a.Minutes[plan.Sunday])
	require.Equal(t, 50, a.Minutes[plan.Monday])
	require.Equal(t, 50, a.Minutes[plan.Wednesday])
	require.Equal(t, 118, a.Minutes[plan.Tuesday])
	require.Equal(t, 118, a.Minutes[plan.Thursday])
	require.Zero(t, a.Minutes[plan.Friday])
	require.Zero(t, a.Minutes[plan.Saturday])
	require.Equal(t, 480, a.Total())
}

func TestAllocate_LeftoverLandsOnFirstEasyDay(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := GenerateSkeleton(0, spec, phil)

	a := Allocate(s, 101, phil)

	require.Equal(t, 30, a.Minutes[plan.Sunday])
	require.Equal(t, 10, a.Minutes[plan.Monday])
	require.Equal(t, 10, a.Minutes[plan.Wednesday])
	// Tuesday is the first easy day, so it absorbs the truncation remainder.
	require.Equal(t, 26, a.Minutes[plan.Tuesday])
	require.Equal(t, 25, a.Minutes[plan.Thursday])
	require.Equal(t, 101, a.Total())
}

func TestAllocate_TotalAlwaysEqualsTarget(t *testing.T) {
	phil := plan.DefaultPhilosophy()
	for days := 4; days <= 7; days++ {
		spec := testSpec()
		spec.DaysPerWeek = days
		s := GenerateSkeleton(0, spec, phil)

		for target := 60; target <= 600; target += 7 {
			a := Allocate(s, target, phil)
			require.Equal(t, target, a.Total(), "days=%d target=%d", days, target)

			hi := int(float64(target) * phil.LongRunRatioMax)
			lo := int(float64(target) * phil.LongRunRatioMin)
			long := a.Minutes[spec.LongRunDay]
			require.GreaterOrEqual(t, long, lo, "days=%d target=%d", days, target)
			// The remainder spillover can only raise non-long days, so the
			// ceiling holds unconditionally for the long day.
			require.LessOrEqual(t, long, hi, "days=%d target=%d", days, target)
		}
	}
}

func TestAllocate_NoEasyDays(t *testing.T) {
	// Four days a week with three hard slots leaves no easy days at all;
	// hard days then split the full post-long-run remainder.
	spec := testSpec()
	spec.Race = plan.Race5K
	spec.DaysPerWeek = 4
	phil := plan.DefaultPhilosophy()
	s := GenerateSkeleton(0, spec, phil)
	require.Zero(t, s.CountRole(plan.RoleEasy))

	a := Allocate(s, 300, phil)
	require.Equal(t, 300, a.Total())
	for _, d := range s.HardDays() {
		require.Positive(t, a.Minutes[d])
	}
}

func TestAllocate_RestDaysGetZero(t *testing.T) {
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := GenerateSkeleton(0, spec, phil)

	a := Allocate(s, 300, phil)
	for _, d := range plan.AllWeekdays() {
		if s.Role(d) == plan.RoleRest {
			require.Zero(t, a.Minutes[d], "rest day %s", d)
		}
	}
}

func TestAllocate_PolarizedLongRunIsLarger(t *testing.T) {
	spec := testSpec()
	def := Allocate(GenerateSkeleton(0, spec, plan.DefaultPhilosophy()), 400, plan.DefaultPhilosophy())
	pol := Allocate(GenerateSkeleton(0, spec, plan.PolarizedPhilosophy()), 400, plan.PolarizedPhilosophy())

	require.Greater(t, pol.Minutes[plan.Sunday], def.Minutes[plan.Sunday])
}
