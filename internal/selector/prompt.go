package selector

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced running coach helping assemble one week of a training plan.

For each training day you are given the day's role, its locked duration in minutes, and a list of candidate session template IDs. Choose exactly one template per day.

Rules:
- Choose only from each day's candidate list. Any other ID is rejected.
- Durations are fixed. Do not suggest changing them.
- Prefer variety across the week and sessions that fit the training phase.
- Respond with the structured selection only, no commentary.`

// buildPrompt renders a week request as the advisory user message. Days are
// listed Monday-first with their candidate IDs verbatim, so the model's
// legal answer space is fully visible in the prompt.
func buildPrompt(req WeekRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Week %d of a %s plan, %s phase.\n", req.WeekIndex+1, req.Race, req.Phase)
	if req.PhilosophySummary != "" {
		fmt.Fprintf(&b, "Training philosophy (%s): %s\n", req.PhilosophyID, req.PhilosophySummary)
	}
	b.WriteString("\nTraining days:\n")

	for _, day := range req.Days {
		fmt.Fprintf(&b, "- %s: %s run, %d minutes. Candidates: %s\n",
			day.Day, day.Role, day.DurationMin, strings.Join(day.CandidateIDs, ", "))
	}

	fmt.Fprintf(&b, "\nReturn week_index %d and one selection per day listed above.", req.WeekIndex)
	return b.String()
}
