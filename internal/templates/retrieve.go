package templates

import "github.com/abhisek/paceline/internal/plan"

// DaySlot is the day-level context candidates are retrieved for: the day,
// its skeleton role, and its locked duration.
type DaySlot struct {
	Day      plan.Weekday
	Role     plan.DayRole
	Duration int
}

// RetrieveInput carries everything the candidate filter may consult.
// The Exclude set is the only channel through which external advisory
// context influences candidates; it can only remove legality, never add it.
type RetrieveInput struct {
	Slot       DaySlot
	Race       plan.RaceType
	Phase      plan.Phase
	Philosophy plan.Philosophy
	Exclude    map[string]struct{}
}

// Candidates narrows the library down to the templates legal for one day.
// The filter is pure and order-independent: results are always sorted by
// template ID, and no rule ever adds a candidate.
func Candidates(lib *Library, in RetrieveInput) []SessionTemplate {
	if in.Slot.Role == plan.RoleHard && !in.Philosophy.AllowHardDays {
		return nil
	}

	compatible := make(map[plan.SessionType]struct{})
	for _, t := range in.Slot.Role.CompatibleTypes() {
		compatible[t] = struct{}{}
	}

	var out []SessionTemplate
	for _, t := range lib.All() {
		if _, ok := compatible[t.Type]; !ok {
			continue
		}
		if !t.FitsDuration(in.Slot.Duration) {
			continue
		}
		if !t.AllowsRace(in.Race) {
			continue
		}
		if !t.AllowsPhase(in.Phase) {
			continue
		}
		if _, excluded := in.Exclude[t.ID]; excluded {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ExclusionSet flattens a tag-keyed exclusion map into the ID set the
// retriever consumes.
func ExclusionSet(byTag map[string][]string) map[string]struct{} {
	if len(byTag) == 0 {
		return nil
	}
	out := make(map[string]struct{})
	for _, ids := range byTag {
		for _, id := range ids {
			out[id] = struct{}{}
		}
	}
	return out
}
