package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/paceline/internal/plan"
	"github.com/abhisek/paceline/internal/templates"
)

func testWeekPlan(t *testing.T) (WeekPlan, *templates.Library, plan.PlanSpecification, plan.Philosophy) {
	t.Helper()
	spec := testSpec()
	phil := plan.DefaultPhilosophy()
	s := GenerateSkeleton(3, spec, phil)
	a := Allocate(s, 330, phil)
	require.NoError(t, ValidateWeek(s, a, spec, phil))

	lib, err := templates.LoadSeed()
	require.NoError(t, err)

	phase := plan.PhaseForWeek(spec.Goal, 3, spec.Weeks())
	return AssembleWeek(s, a, spec, phase), lib, spec, phil
}

func TestAssembleWeek_SessionsCarryDefaults(t *testing.T) {
	wp, _, spec, _ := testWeekPlan(t)

	require.Len(t, wp.Sessions, spec.DaysPerWeek)
	require.Equal(t, 330, wp.TotalDurationMin)
	for _, sess := range wp.Sessions {
		require.Equal(t, TemplateUnassigned, sess.TemplateID)
		require.Equal(t, sess.Role.DefaultType(), sess.Type)
		require.Equal(t, sess.Role.Intent(), sess.Intent)
		require.Equal(t, DeriveDistance(sess.DurationMin, spec.PaceMinPerMile), sess.DistanceMiles)
	}
}

func TestMaterializeWeek_AppliesSelection(t *testing.T) {
	wp, lib, spec, phil := testWeekPlan(t)
	selection := map[plan.Weekday]string{
		plan.Monday:    "tempo-steady",
		plan.Tuesday:   "easy-aerobic",
		plan.Wednesday: "tempo-cruise",
		plan.Thursday:  "recovery-jog",
		plan.Sunday:    "long-endurance",
	}

	cw, err := MaterializeWeek(wp, selection, lib, spec, phil)
	require.NoError(t, err)
	require.Equal(t, wp.TotalDurationMin, cw.TotalDurationMin)
	require.Equal(t, wp.TotalDistanceMiles, cw.TotalDistanceMiles)

	byDay := map[plan.Weekday]ConcreteSession{}
	for _, s := range cw.Sessions {
		byDay[s.Day] = s
	}
	require.Equal(t, "tempo-cruise", byDay[plan.Wednesday].TemplateID)
	require.Equal(t, plan.TypeTempo, byDay[plan.Wednesday].Type)
	require.NotNil(t, byDay[plan.Wednesday].Intervals)
	require.Equal(t, plan.TypeRecovery, byDay[plan.Thursday].Type)
	// Intent is immutable: recovery template or not, Thursday stays an easy day.
	require.Equal(t, plan.IntentEasy, byDay[plan.Thursday].Intent)
	require.Equal(t, 15, byDay[plan.Wednesday].WarmupMin)
}

func TestMaterializeWeek_UnknownTemplateID(t *testing.T) {
	wp, lib, spec, phil := testWeekPlan(t)
	selection := map[plan.Weekday]string{plan.Monday: "no-such-template"}

	_, err := MaterializeWeek(wp, selection, lib, spec, phil)
	var perr *plan.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, plan.CodeInvalidTemplateSelection, perr.Code)
	require.True(t, perr.HasDetail("Invalid template ID"))
}

func TestMaterializeWeek_UnselectedDaysKeepDefaults(t *testing.T) {
	wp, lib, spec, phil := testWeekPlan(t)

	cw, err := MaterializeWeek(wp, map[plan.Weekday]string{}, lib, spec, phil)
	require.NoError(t, err)
	for _, s := range cw.Sessions {
		require.Equal(t, TemplateUnassigned, s.TemplateID)
		require.Zero(t, s.WarmupMin)
	}
	require.Equal(t, wp.TotalDurationMin, cw.TotalDurationMin)
}

func TestMaterializeWeek_CatchesHardOverrun(t *testing.T) {
	wp, lib, spec, phil := testWeekPlan(t)
	// Selecting a tempo template for an easy day sneaks in a third hard
	// session; the closing validation must refuse the week.
	selection := map[plan.Weekday]string{
		plan.Thursday: "tempo-steady",
	}

	_, err := MaterializeWeek(wp, selection, lib, spec, phil)
	var perr *plan.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, plan.CodeMaterializationValidationFailed, perr.Code)
	require.True(t, perr.HasDetail("hard sessions exceeds limit"))
}

func TestDeriveDistance(t *testing.T) {
	require.Equal(t, 4.5, DeriveDistance(45, 10.0))
	require.Equal(t, 5.29, DeriveDistance(45, 8.5))
	require.Equal(t, 0.0, DeriveDistance(0, 10.0))
}
