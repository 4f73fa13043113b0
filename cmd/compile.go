package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/abhisek/paceline/internal/compiler"
	"github.com/abhisek/paceline/internal/config"
	"github.com/abhisek/paceline/internal/llm"
	"github.com/abhisek/paceline/internal/plan"
	"github.com/abhisek/paceline/internal/render"
	"github.com/abhisek/paceline/internal/selector"
	"github.com/abhisek/paceline/internal/store"
	"github.com/abhisek/paceline/internal/templates"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a training plan from a goal",
	Long: "Compile resolves a goal into a week-by-week plan. Without --advise the\n" +
		"run is fully deterministic; with it, an advisory model picks session\n" +
		"templates and a deterministic fallback covers any failure.",
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().String("goal", "race", "Goal kind: race or fitness")
	compileCmd.Flags().String("race", "10k", "Race type: 5k, 10k, half_marathon, marathon, custom")
	compileCmd.Flags().String("start", "", "Plan start date (YYYY-MM-DD, default next Monday)")
	compileCmd.Flags().String("end", "", "Plan end date (YYYY-MM-DD)")
	compileCmd.Flags().Int("weeks", 0, "Plan length in weeks (alternative to --end)")
	compileCmd.Flags().Int("baseline", 0, "Recent weekly running minutes (required)")
	compileCmd.Flags().Float64("pace", 0, "Easy pace in minutes per mile")
	compileCmd.Flags().Int("days", 0, "Running days per week (4-7)")
	compileCmd.Flags().String("long-day", "", "Preferred long run day")
	compileCmd.Flags().String("philosophy", "", "Coaching philosophy: default, polarized, high-volume")
	compileCmd.Flags().StringSlice("exclude", nil, "Template IDs to exclude from selection")
	compileCmd.Flags().String("templates", "", "Path to a template library JSON file")
	compileCmd.Flags().Bool("advise", false, "Let the configured advisory model pick templates")
	compileCmd.Flags().Bool("json", false, "Emit the plan as JSON instead of a table")

	compileCmd.MarkFlagRequired("baseline")
}

func runCompile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req, err := specRequestFromFlags(cmd, cfg)
	if err != nil {
		return err
	}
	spec, err := plan.BuildSpec(req)
	if err != nil {
		return err
	}

	philID, _ := cmd.Flags().GetString("philosophy")
	if philID == "" {
		philID = cfg.Plan.Philosophy
	}
	phil, ok := plan.PhilosophyByID(philID)
	if !ok {
		return fmt.Errorf("unknown philosophy %q", philID)
	}

	lib, err := loadLibrary(cmd, cfg)
	if err != nil {
		return err
	}

	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	exclusions := map[string]struct{}{}
	for _, id := range exclude {
		exclusions[id] = struct{}{}
	}

	advise, _ := cmd.Flags().GetBool("advise")
	jsonOut, _ := cmd.Flags().GetBool("json")

	opts := compiler.Options{
		Philosophy: phil,
		Library:    lib,
		Exclusions: exclusions,
		Logger:     slog.Default(),
	}

	if advise {
		sel, closeStore, err := advisorySelector(cmd)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		opts.Selector = sel
	}

	if !jsonOut {
		bar := progressbar.Default(int64(spec.Weeks()), "Compiling weeks")
		opts.OnWeek = func(week, total int) { bar.Add(1) }
	}

	compiled, err := compiler.Compile(ctx, spec, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(compiled)
	}

	fmt.Println()
	fmt.Print(render.Plan(compiled))
	return nil
}

// advisorySelector wires the configured provider, backed by the sqlite event
// log when it can be opened. A broken event store downgrades to log-only
// telemetry instead of blocking the compile.
func advisorySelector(cmd *cobra.Command) (selector.Selector, func() error, error) {
	advCfg := cfg.AdvisoryConfig()

	var rec llm.Recorder
	var closeStore func() error
	if dbPath, err := resolveDBPath(cmd); err == nil {
		if s, err := store.Open(dbPath); err == nil {
			rec = s
			closeStore = s.Close
		} else {
			slog.Warn("advisory event store unavailable", "error", err)
		}
	}

	provider, err := llm.NewProvider(cmd.Context(), advCfg, rec, slog.Default())
	if err != nil {
		if closeStore != nil {
			closeStore()
		}
		return nil, nil, err
	}

	sel := selector.NewAdvisory(provider,
		selector.WithTimeout(advCfg.Timeout),
		selector.WithLogger(slog.Default()))
	return sel, closeStore, nil
}

func specRequestFromFlags(cmd *cobra.Command, cfg config.Config) (plan.SpecRequest, error) {
	var req plan.SpecRequest

	goal, _ := cmd.Flags().GetString("goal")
	switch goal {
	case "race":
		req.Goal = plan.GoalRace
	case "fitness":
		req.Goal = plan.GoalFitness
	default:
		return req, fmt.Errorf("unknown goal %q (want race or fitness)", goal)
	}

	raceStr, _ := cmd.Flags().GetString("race")
	race, ok := plan.ParseRaceType(raceStr)
	if !ok {
		return req, fmt.Errorf("unknown race type %q", raceStr)
	}
	req.Race = race

	start, err := dateFlag(cmd, "start")
	if err != nil {
		return req, err
	}
	if start.IsZero() {
		start = nextMonday(time.Now())
	}
	req.StartDate = start

	end, err := dateFlag(cmd, "end")
	if err != nil {
		return req, err
	}
	weeks, _ := cmd.Flags().GetInt("weeks")
	switch {
	case !end.IsZero():
		req.EndDate = end
	case weeks > 0:
		req.EndDate = start.AddDate(0, 0, 7*weeks)
	default:
		return req, fmt.Errorf("either --end or --weeks is required")
	}

	req.RecentWeeklyMinutes, _ = cmd.Flags().GetInt("baseline")

	req.PaceMinPerMile, _ = cmd.Flags().GetFloat64("pace")
	if req.PaceMinPerMile == 0 {
		req.PaceMinPerMile = cfg.Plan.PaceMinPerMile
	}

	req.DaysPerWeek, _ = cmd.Flags().GetInt("days")
	if req.DaysPerWeek == 0 {
		req.DaysPerWeek = cfg.Plan.DaysPerWeek
	}

	longDay, _ := cmd.Flags().GetString("long-day")
	if longDay == "" {
		longDay = cfg.Plan.LongRunDay
	}
	day, ok := plan.ParseWeekday(longDay)
	if !ok {
		return req, fmt.Errorf("unknown long run day %q", longDay)
	}
	req.LongRunDay = day

	req.Provenance = "cli"
	req.Version = version
	return req, nil
}

func loadLibrary(cmd *cobra.Command, cfg config.Config) (*templates.Library, error) {
	path, _ := cmd.Flags().GetString("templates")
	if path == "" {
		path = cfg.Templates.Path
	}
	if path == "" {
		return templates.LoadSeed()
	}
	return templates.LoadFile(path)
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q (want YYYY-MM-DD)", name, s)
	}
	return t, nil
}

// nextMonday returns the Monday strictly after t, at midnight UTC.
func nextMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return t.AddDate(0, 0, offset)
}
