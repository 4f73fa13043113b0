// Package render turns compiled plans into terminal output.
package render

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/paceline/internal/compiler"
	"github.com/abhisek/paceline/internal/plan"
)

var (
	colPrimary = lipgloss.Color("#14B8A6") // Teal
	colQuality = lipgloss.Color("#F97316") // Orange
	colLong    = lipgloss.Color("#8B5CF6") // Purple
	colDim     = lipgloss.Color("#94A3B8") // Slate

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	weekStyle = lipgloss.NewStyle().
			Bold(true)

	phaseStyle = lipgloss.NewStyle().
			Foreground(colDim)

	qualityStyle = lipgloss.NewStyle().Foreground(colQuality)
	longStyle    = lipgloss.NewStyle().Foreground(colLong)
	dimStyle     = lipgloss.NewStyle().Foreground(colDim)
)

// Plan renders a full compiled plan, one block per week. Color reflects the
// session's intent: quality work orange, the long run purple.
func Plan(p *compiler.CompiledPlan) string {
	var b strings.Builder

	header := fmt.Sprintf("%s plan · %d weeks · %s – %s",
		planLabel(p.Spec),
		p.Spec.Weeks(),
		p.Spec.StartDate.Format("Jan 2 2006"),
		p.Spec.EndDate.Format("Jan 2 2006"))
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for _, w := range p.Weeks {
		b.WriteString(Week(p.Spec, w))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("Total: %s · %.1f mi",
		formatMinutes(p.TotalDurationMin()), p.TotalDistanceMiles())))
	b.WriteString("\n")
	return b.String()
}

// Week renders one concrete week as an aligned table.
func Week(spec plan.PlanSpecification, w compiler.ConcreteWeek) string {
	var b strings.Builder

	start := spec.StartDate.AddDate(0, 0, 7*w.WeekIndex)
	b.WriteString(weekStyle.Render(fmt.Sprintf("Week %d", w.WeekIndex+1)))
	b.WriteString(phaseStyle.Render(fmt.Sprintf("  %s · wk of %s · %s · %.1f mi",
		w.Phase, start.Format("Jan 2"), formatMinutes(w.TotalDurationMin), w.TotalDistanceMiles)))
	b.WriteString("\n")

	for _, s := range w.Sessions {
		line := fmt.Sprintf("  %s  %-9s %-22s %s · %.1f mi%s",
			s.Day.Short(), s.Type, s.TemplateID, formatMinutes(s.DurationMin), s.DistanceMiles, sessionDetail(s))
		switch {
		case s.Type.IsHard():
			line = qualityStyle.Render(line)
		case s.Type == plan.TypeLong:
			line = longStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func sessionDetail(s compiler.ConcreteSession) string {
	var parts []string
	if s.WarmupMin > 0 {
		parts = append(parts, fmt.Sprintf("wu %d", s.WarmupMin))
	}
	if iv := s.Intervals; iv != nil {
		parts = append(parts, fmt.Sprintf("%d x %d' on / %d' off", iv.Reps, iv.WorkMin, iv.RestMin))
	}
	if s.CooldownMin > 0 {
		parts = append(parts, fmt.Sprintf("cd %d", s.CooldownMin))
	}
	if len(parts) == 0 {
		return ""
	}
	return dimStyle.Render("  (" + strings.Join(parts, ", ") + ")")
}

func planLabel(spec plan.PlanSpecification) string {
	if spec.Goal == plan.GoalFitness {
		return "Fitness"
	}
	switch spec.Race {
	case plan.Race5K:
		return "5K"
	case plan.Race10K:
		return "10K"
	case plan.RaceHalf:
		return "Half marathon"
	case plan.RaceMarathon:
		return "Marathon"
	default:
		return "Custom race"
	}
}

func formatMinutes(min int) string {
	d := time.Duration(min) * time.Minute
	h := int(d.Hours())
	m := min - h*60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
