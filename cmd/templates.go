package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/paceline/internal/plan"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the session template library",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available session templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary(cmd, cfg)
		if err != nil {
			return err
		}

		typeFilter, _ := cmd.Flags().GetString("type")

		fmt.Printf("%-22s  %-9s  %-9s  %-11s  %-28s  %s\n",
			"ID", "Type", "Duration", "Races", "Phases", "Structure")
		fmt.Println(strings.Repeat("─", 100))

		for _, t := range lib.All() {
			if typeFilter != "" && string(t.Type) != typeFilter {
				continue
			}
			structure := "steady"
			if t.Intervals != nil {
				structure = fmt.Sprintf("%d x %d' on / %d' off", t.Intervals.Reps, t.Intervals.WorkMin, t.Intervals.RestMin)
			}
			fmt.Printf("%-22s  %-9s  %3d-%-5d  %-11s  %-28s  %s\n",
				t.ID, t.Type,
				t.MinDuration, t.MaxDuration,
				raceList(t.RaceTypes),
				phaseList(t.Phases),
				structure)
		}
		return nil
	},
}

var templatesPhilosophiesCmd = &cobra.Command{
	Use:   "philosophies",
	Short: "List coaching philosophy presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range []string{"default", "polarized", "high-volume"} {
			p, _ := plan.PhilosophyByID(id)
			fmt.Printf("%s (%s)\n    %s\n", p.Name, p.ID, p.Summary)
		}
		return nil
	},
}

func raceList(races []plan.RaceType) string {
	if len(races) == 1 && races[0] == plan.RaceCustom {
		return "any"
	}
	parts := make([]string, len(races))
	for i, r := range races {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

func phaseList(phases []plan.Phase) string {
	parts := make([]string, len(phases))
	for i, p := range phases {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

func init() {
	templatesListCmd.Flags().String("type", "", "Filter by session type (easy, tempo, interval, hills, long, recovery)")
	templatesListCmd.Flags().String("templates", "", "Path to a template library JSON file")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesPhilosophiesCmd)
}
