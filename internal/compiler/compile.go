package compiler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/paceline/internal/plan"
	"github.com/abhisek/paceline/internal/selector"
	"github.com/abhisek/paceline/internal/templates"
)

// Options configures one compile run. Zero values get sensible defaults:
// the balanced philosophy, the embedded template library, and the
// deterministic fallback selector.
type Options struct {
	Philosophy plan.Philosophy
	Library    *templates.Library

	// Selector picks templates per week. With the fallback selector the
	// entire compile is deterministic end to end.
	Selector selector.Selector

	// Exclusions removes template IDs from every day's candidate list. It
	// can only narrow candidates, never widen them.
	Exclusions map[string]struct{}

	Logger *slog.Logger

	// OnWeek, when set, is called after each week finishes, with the
	// one-based week number and the total week count.
	OnWeek func(week, total int)
}

// CompiledPlan is the immutable output of a compile run.
type CompiledPlan struct {
	Spec  plan.PlanSpecification
	Weeks []ConcreteWeek
}

// TotalDurationMin sums the plan's duration across all weeks.
func (p CompiledPlan) TotalDurationMin() int {
	total := 0
	for _, w := range p.Weeks {
		total += w.TotalDurationMin
	}
	return total
}

// TotalDistanceMiles sums the plan's derived distance across all weeks.
func (p CompiledPlan) TotalDistanceMiles() float64 {
	total := 0.0
	for _, w := range p.Weeks {
		total += w.TotalDistanceMiles
	}
	return round2(total)
}

// Compile runs the full pipeline for every week of the specification:
// skeleton, allocation, week validation, assembly, candidate retrieval,
// template selection, and materialization with its closing validation.
// Weeks are independent of each other, so a failure reports the week it
// happened in and aborts the run. With the fallback selector the same
// specification always compiles to the identical plan.
func Compile(ctx context.Context, spec plan.PlanSpecification, opts Options) (*CompiledPlan, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	phil := opts.Philosophy
	if phil.ID == "" {
		phil = plan.DefaultPhilosophy()
	}
	lib := opts.Library
	if lib == nil {
		var err error
		lib, err = templates.LoadSeed()
		if err != nil {
			return nil, fmt.Errorf("loading embedded template library: %w", err)
		}
	}
	sel := opts.Selector
	if sel == nil {
		sel = selector.Fallback{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	total := spec.Weeks()
	out := &CompiledPlan{Spec: spec, Weeks: make([]ConcreteWeek, 0, total)}

	for i, target := range spec.WeeklyBudgets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cw, err := compileWeek(ctx, i, target, spec, phil, lib, sel, opts.Exclusions)
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", i, err)
		}

		log.Debug("compiled week",
			"week", i,
			"target_min", target,
			"sessions", len(cw.Sessions),
			"total_min", cw.TotalDurationMin)

		out.Weeks = append(out.Weeks, cw)
		if opts.OnWeek != nil {
			opts.OnWeek(i+1, total)
		}
	}

	return out, nil
}

func compileWeek(ctx context.Context, weekIndex, target int, spec plan.PlanSpecification, phil plan.Philosophy, lib *templates.Library, sel selector.Selector, exclude map[string]struct{}) (ConcreteWeek, error) {
	skeleton := GenerateSkeleton(weekIndex, spec, phil)
	if err := ValidateSkeleton(skeleton, spec, phil); err != nil {
		return ConcreteWeek{}, err
	}

	alloc := Allocate(skeleton, target, phil)
	if err := ValidateWeek(skeleton, alloc, spec, phil); err != nil {
		return ConcreteWeek{}, err
	}

	phase := plan.PhaseForWeek(spec.Goal, weekIndex, spec.Weeks())
	wp := AssembleWeek(skeleton, alloc, spec, phase)

	req := buildWeekRequest(weekIndex, wp, spec, phase, phil, lib, exclude)
	selection := map[plan.Weekday]string{}
	if len(req.Days) > 0 {
		picked, err := sel.SelectWeek(ctx, req)
		if err != nil {
			return ConcreteWeek{}, err
		}
		if err := selector.ValidateSelection(picked, req); err != nil {
			return ConcreteWeek{}, err
		}
		selection = picked.Choices
	}

	return MaterializeWeek(wp, selection, lib, spec, phil)
}

// buildWeekRequest turns an assembled week into a selection request. Days
// whose candidate list comes back empty are omitted: they keep their
// role-derived defaults through materialization instead of failing the run.
func buildWeekRequest(weekIndex int, wp WeekPlan, spec plan.PlanSpecification, phase plan.Phase, phil plan.Philosophy, lib *templates.Library, exclude map[string]struct{}) selector.WeekRequest {
	req := selector.WeekRequest{
		WeekIndex:         weekIndex,
		Race:              spec.Race,
		Phase:             phase,
		PhilosophyID:      phil.ID,
		PhilosophySummary: phil.Summary,
	}

	for _, sess := range wp.Sessions {
		candidates := templates.Candidates(lib, templates.RetrieveInput{
			Slot:       templates.DaySlot{Day: sess.Day, Role: sess.Role, Duration: sess.DurationMin},
			Race:       spec.Race,
			Phase:      phase,
			Philosophy: phil,
			Exclude:    exclude,
		})
		if len(candidates) == 0 {
			continue
		}
		ids := make([]string, len(candidates))
		for i, c := range candidates {
			ids[i] = c.ID
		}
		req.Days = append(req.Days, selector.DayRequest{
			Day:          sess.Day,
			Role:         sess.Role,
			DurationMin:  sess.DurationMin,
			CandidateIDs: ids,
		})
	}

	return req
}
