package plan

// GoalKind is what the athlete is training for.
type GoalKind string

const (
	GoalRace    GoalKind = "race"
	GoalFitness GoalKind = "fitness"
)

// RaceType is the target race distance. RaceCustom accepts any template that
// declares itself distance-agnostic.
type RaceType string

const (
	Race5K       RaceType = "5k"
	Race10K      RaceType = "10k"
	RaceHalf     RaceType = "half_marathon"
	RaceMarathon RaceType = "marathon"
	RaceCustom   RaceType = "custom"
)

// AllRaceTypes returns the known race types in distance order.
func AllRaceTypes() []RaceType {
	return []RaceType{Race5K, Race10K, RaceHalf, RaceMarathon, RaceCustom}
}

// ParseRaceType converts a string to a RaceType.
func ParseRaceType(s string) (RaceType, bool) {
	for _, r := range AllRaceTypes() {
		if string(r) == s {
			return r, true
		}
	}
	return RaceCustom, false
}

// Phase is the training phase a week belongs to. Templates declare which
// phases they are legal in.
type Phase string

const (
	PhaseBase  Phase = "base"
	PhaseBuild Phase = "build"
	PhasePeak  Phase = "peak"
	PhaseTaper Phase = "taper"
)

// PhaseForWeek derives the training phase of week i (zero-based) in a plan
// of n weeks. Race plans taper in the final week; the rest of the span is
// split base / build / peak. Fitness plans never taper.
func PhaseForWeek(goal GoalKind, i, n int) Phase {
	if n <= 0 {
		return PhaseBase
	}
	if goal == GoalRace && n > 1 && i == n-1 {
		return PhaseTaper
	}
	frac := float64(i) / float64(n)
	switch {
	case frac < 0.4:
		return PhaseBase
	case frac < 0.8:
		return PhaseBuild
	default:
		return PhasePeak
	}
}
