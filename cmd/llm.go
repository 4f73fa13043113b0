package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/paceline/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect advisory model call events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent advisory calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.RecentCalls(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No advisory calls recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-20s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 104))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-20s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated advisory call usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := s.Stats(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if st.TotalCalls == 0 {
			fmt.Println("No advisory usage recorded yet.")
			return nil
		}

		fmt.Printf("Calls:          %d\n", st.TotalCalls)
		fmt.Printf("Succeeded:      %d\n", st.SuccessCalls)
		fmt.Printf("Failed:         %d\n", st.TotalCalls-st.SuccessCalls)
		fmt.Printf("Input tokens:   %d\n", st.InputTokens)
		fmt.Printf("Output tokens:  %d\n", st.OutputTokens)
		fmt.Printf("Total tokens:   %d\n", st.InputTokens+st.OutputTokens)
		return nil
	},
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
