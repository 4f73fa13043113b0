package templates

import (
	"fmt"

	"github.com/abhisek/paceline/internal/plan"
)

// IntervalSpec describes the repeated work/rest structure of an interval
// template. Rep counts are scaled down (never up) at expansion time to fit
// the day's locked duration.
type IntervalSpec struct {
	Reps      int    `json:"reps"`
	WorkMin   int    `json:"work_min"`
	RestMin   int    `json:"rest_min"`
	Intensity string `json:"intensity"`
}

// SessionTemplate is a reusable session description from the template
// library. Templates are read-only input: the compiler never creates or
// mutates them.
type SessionTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        plan.SessionType `json:"type"`
	Intensity   string           `json:"intensity"`
	RaceTypes   []plan.RaceType  `json:"race_types"`
	Phases      []plan.Phase     `json:"phases"`
	MinDuration int              `json:"min_duration_min"`
	MaxDuration int              `json:"max_duration_min"`
	WarmupMin   int              `json:"warmup_min"`
	CooldownMin int              `json:"cooldown_min"`
	Intervals   *IntervalSpec    `json:"intervals,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
}

// FitsDuration reports whether a locked duration falls inside the template's
// legal duration range.
func (t SessionTemplate) FitsDuration(minutes int) bool {
	return minutes >= t.MinDuration && minutes <= t.MaxDuration
}

// AllowsRace reports whether the template is legal for the given race type.
// Templates that declare the custom race type are distance-agnostic.
func (t SessionTemplate) AllowsRace(race plan.RaceType) bool {
	for _, r := range t.RaceTypes {
		if r == race || r == plan.RaceCustom {
			return true
		}
	}
	return false
}

// AllowsPhase reports whether the template is legal in the given phase.
func (t SessionTemplate) AllowsPhase(phase plan.Phase) bool {
	for _, p := range t.Phases {
		if p == phase {
			return true
		}
	}
	return false
}

func (t SessionTemplate) validate() error {
	if t.ID == "" {
		return fmt.Errorf("template with empty ID")
	}
	if t.MinDuration <= 0 || t.MaxDuration < t.MinDuration {
		return fmt.Errorf("template %s: invalid duration range [%d, %d]", t.ID, t.MinDuration, t.MaxDuration)
	}
	if t.WarmupMin < 0 || t.CooldownMin < 0 {
		return fmt.Errorf("template %s: negative warm-up or cool-down", t.ID)
	}
	if len(t.RaceTypes) == 0 {
		return fmt.Errorf("template %s: no legal race types", t.ID)
	}
	if len(t.Phases) == 0 {
		return fmt.Errorf("template %s: no legal phases", t.ID)
	}
	if iv := t.Intervals; iv != nil {
		if iv.Reps < 1 || iv.WorkMin < 1 || iv.RestMin < 0 {
			return fmt.Errorf("template %s: invalid interval spec", t.ID)
		}
	}
	switch t.Type {
	case plan.TypeRest, plan.TypeEasy, plan.TypeRecovery, plan.TypeTempo, plan.TypeInterval, plan.TypeHills, plan.TypeLong:
	default:
		return fmt.Errorf("template %s: unknown session type %q", t.ID, t.Type)
	}
	return nil
}
