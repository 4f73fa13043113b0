package templates

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/paceline/internal/plan"
)

func seedLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := LoadSeed()
	require.NoError(t, err)
	require.Greater(t, lib.Len(), 0)
	return lib
}

func TestLoadSeed_SortedAndIndexed(t *testing.T) {
	lib := seedLibrary(t)
	all := lib.All()
	ids := make([]string, len(all))
	for i, tmpl := range all {
		ids[i] = tmpl.ID
	}
	require.True(t, sort.StringsAreSorted(ids), "library must iterate in sorted ID order")

	tmpl, ok := lib.Get("easy-aerobic")
	require.True(t, ok)
	require.Equal(t, plan.TypeEasy, tmpl.Type)
}

func TestNewLibrary_RejectsDuplicateIDs(t *testing.T) {
	tmpl := SessionTemplate{
		ID: "dup", Type: plan.TypeEasy,
		RaceTypes: []plan.RaceType{plan.RaceCustom}, Phases: []plan.Phase{plan.PhaseBase},
		MinDuration: 10, MaxDuration: 60,
	}
	_, err := NewLibrary([]SessionTemplate{tmpl, tmpl})
	require.ErrorContains(t, err, "duplicate template ID")
}

func TestCandidates_RoleCompatibility(t *testing.T) {
	lib := seedLibrary(t)

	tests := []struct {
		role      plan.DayRole
		duration  int
		wantTypes map[plan.SessionType]bool
	}{
		{plan.RoleEasy, 45, map[plan.SessionType]bool{plan.TypeEasy: true, plan.TypeRecovery: true}},
		{plan.RoleHard, 50, map[plan.SessionType]bool{plan.TypeTempo: true, plan.TypeInterval: true, plan.TypeHills: true}},
		{plan.RoleLong, 100, map[plan.SessionType]bool{plan.TypeLong: true}},
	}
	for _, tt := range tests {
		got := Candidates(lib, RetrieveInput{
			Slot:       DaySlot{Day: plan.Tuesday, Role: tt.role, Duration: tt.duration},
			Race:       plan.Race10K,
			Phase:      plan.PhaseBuild,
			Philosophy: plan.DefaultPhilosophy(),
		})
		require.NotEmpty(t, got, "role %s should have candidates", tt.role)
		for _, c := range got {
			require.True(t, tt.wantTypes[c.Type], "role %s got incompatible type %s", tt.role, c.Type)
		}
	}
}

func TestCandidates_DurationBounds(t *testing.T) {
	lib := seedLibrary(t)
	got := Candidates(lib, RetrieveInput{
		Slot:       DaySlot{Day: plan.Sunday, Role: plan.RoleLong, Duration: 30},
		Race:       plan.RaceCustom,
		Phase:      plan.PhaseBase,
		Philosophy: plan.DefaultPhilosophy(),
	})
	require.Empty(t, got, "30 minutes is below every long template's minimum")
}

func TestCandidates_RaceAndPhase(t *testing.T) {
	lib := seedLibrary(t)

	// interval-400s is legal for 5k/10k in build/peak only.
	in := RetrieveInput{
		Slot:       DaySlot{Day: plan.Tuesday, Role: plan.RoleHard, Duration: 50},
		Race:       plan.Race5K,
		Phase:      plan.PhaseBase,
		Philosophy: plan.DefaultPhilosophy(),
	}
	for _, c := range Candidates(lib, in) {
		require.NotEqual(t, "interval-400s", c.ID, "build-phase template leaked into base phase")
	}

	in.Phase = plan.PhaseBuild
	ids := idsOf(Candidates(lib, in))
	require.Contains(t, ids, "interval-400s")

	in.Race = plan.RaceMarathon
	for _, c := range Candidates(lib, in) {
		require.True(t, c.AllowsRace(plan.RaceMarathon), "template %s illegal for marathon", c.ID)
	}
}

func TestCandidates_PhilosophyDisallowsHard(t *testing.T) {
	lib := seedLibrary(t)
	got := Candidates(lib, RetrieveInput{
		Slot:       DaySlot{Day: plan.Thursday, Role: plan.RoleHard, Duration: 50},
		Race:       plan.Race10K,
		Phase:      plan.PhaseBuild,
		Philosophy: plan.HighVolumePhilosophy(),
	})
	require.Empty(t, got, "hard candidates must be empty when philosophy disallows hard days")
}

func TestCandidates_ExclusionOnlyRemoves(t *testing.T) {
	lib := seedLibrary(t)
	in := RetrieveInput{
		Slot:       DaySlot{Day: plan.Wednesday, Role: plan.RoleEasy, Duration: 45},
		Race:       plan.Race10K,
		Phase:      plan.PhaseBuild,
		Philosophy: plan.DefaultPhilosophy(),
	}
	base := idsOf(Candidates(lib, in))
	require.Contains(t, base, "easy-aerobic")

	in.Exclude = ExclusionSet(map[string][]string{"knee-pain": {"easy-aerobic"}})
	excluded := idsOf(Candidates(lib, in))
	require.NotContains(t, excluded, "easy-aerobic")
	require.Subset(t, base, excluded, "exclusion may only remove candidates")
}

func idsOf(ts []SessionTemplate) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}
