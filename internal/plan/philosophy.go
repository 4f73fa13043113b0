package plan

// Philosophy bundles the structural limits a coaching style imposes on every
// week. It is an immutable value handed to the pipeline entry point; nothing
// in the compiler reads philosophy state from package globals, so tests can
// substitute alternate limits freely.
type Philosophy struct {
	ID      string
	Name    string
	Summary string

	// MaxHardDays caps quality days per week, per race type. Race types
	// absent from the map fall back to DefaultMaxHardDays.
	MaxHardDays        map[RaceType]int
	DefaultMaxHardDays int

	// AllowHardDays gates quality work entirely. When false the retriever
	// empties every hard-day candidate list and the generator assigns no
	// hard roles.
	AllowHardDays bool

	// LongRunRatioMin and LongRunRatioMax bound the long run's share of the
	// weekly budget. The allocator clamps into [min, max].
	LongRunRatioMin float64
	LongRunRatioMax float64

	// HardShare is the fraction of post-long-run minutes given to hard days.
	HardShare float64

	// WeeklyTimeTolerance is the allowed relative drift between a week's
	// allocated minutes and its target budget.
	WeeklyTimeTolerance float64
}

// HardDayLimit returns the hard-day cap for the given race type.
func (p Philosophy) HardDayLimit(race RaceType) int {
	if !p.AllowHardDays {
		return 0
	}
	if n, ok := p.MaxHardDays[race]; ok {
		return n
	}
	return p.DefaultMaxHardDays
}

// WeeklyToleranceMinutes returns the absolute minute tolerance for a weekly
// target, computed as an integer floor of target x tolerance.
func (p Philosophy) WeeklyToleranceMinutes(target int) int {
	return int(float64(target) * p.WeeklyTimeTolerance)
}

// DefaultPhilosophy is the standard coaching configuration: two quality days
// for most distances, long run between 20% and 30% of the week.
func DefaultPhilosophy() Philosophy {
	return Philosophy{
		ID:      "default",
		Name:    "Balanced",
		Summary: "Two quality sessions per week, one long run at 20-30% of weekly volume, remaining time spread across easy days.",
		MaxHardDays: map[RaceType]int{
			Race5K: 3,
		},
		DefaultMaxHardDays:  2,
		AllowHardDays:       true,
		LongRunRatioMin:     0.20,
		LongRunRatioMax:     0.30,
		HardShare:           0.30,
		WeeklyTimeTolerance: 0.02,
	}
}

// PolarizedPhilosophy keeps intensity rare and the long run large.
func PolarizedPhilosophy() Philosophy {
	p := DefaultPhilosophy()
	p.ID = "polarized"
	p.Name = "Polarized"
	p.Summary = "One quality session per week, everything else easy, long run up to 35% of weekly volume."
	p.MaxHardDays = nil
	p.DefaultMaxHardDays = 1
	p.LongRunRatioMin = 0.25
	p.LongRunRatioMax = 0.35
	return p
}

// HighVolumePhilosophy drops quality work entirely in favor of aerobic volume.
func HighVolumePhilosophy() Philosophy {
	p := DefaultPhilosophy()
	p.ID = "high-volume"
	p.Name = "High Volume"
	p.Summary = "No structured intensity; aerobic volume only with a capped long run."
	p.AllowHardDays = false
	p.DefaultMaxHardDays = 0
	p.MaxHardDays = nil
	return p
}

// PhilosophyByID resolves a preset philosophy by its identifier.
func PhilosophyByID(id string) (Philosophy, bool) {
	switch id {
	case "default", "":
		return DefaultPhilosophy(), true
	case "polarized":
		return PolarizedPhilosophy(), true
	case "high-volume":
		return HighVolumePhilosophy(), true
	default:
		return Philosophy{}, false
	}
}
