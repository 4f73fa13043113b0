package selector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/paceline/internal/llm"
	"github.com/abhisek/paceline/internal/plan"
)

const (
	defaultTimeout     = 20 * time.Second
	defaultMaxTokens   = 1024
	defaultTemperature = 0.2
)

// Advisory asks a model to pick templates and falls back to the
// deterministic Fallback selector whenever the advisory path fails for any
// reason: transport error, timeout, malformed output, or a selection that
// does not validate. SelectWeek therefore always succeeds, and the advisory
// call can only ever improve variety, never correctness.
type Advisory struct {
	provider    llm.Provider
	fallback    Fallback
	timeout     time.Duration
	maxTokens   int
	temperature float64
	log         *slog.Logger
}

// AdvisoryOption customizes an Advisory selector.
type AdvisoryOption func(*Advisory)

// WithTimeout bounds each advisory call.
func WithTimeout(d time.Duration) AdvisoryOption {
	return func(a *Advisory) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLogger sets the logger used to report fallback decisions.
func WithLogger(log *slog.Logger) AdvisoryOption {
	return func(a *Advisory) {
		if log != nil {
			a.log = log
		}
	}
}

// NewAdvisory creates an advisory selector backed by the given provider.
func NewAdvisory(provider llm.Provider, opts ...AdvisoryOption) *Advisory {
	a := &Advisory{
		provider:    provider,
		timeout:     defaultTimeout,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SelectWeek makes one bounded advisory attempt, validates the result, and
// resolves to the deterministic fallback on any failure.
func (a *Advisory) SelectWeek(ctx context.Context, req WeekRequest) (WeekSelection, error) {
	sel, err := a.advise(ctx, req)
	if err == nil {
		err = ValidateSelection(sel, req)
		if err == nil {
			return sel, nil
		}
	}

	a.log.Warn("advisory selection failed, using deterministic fallback",
		"week", req.WeekIndex,
		"model", a.provider.ModelID(),
		"error", err)

	fb, fbErr := a.fallback.SelectWeek(ctx, req)
	if fbErr != nil {
		return WeekSelection{}, plan.NewError(plan.CodeTemplateSelectionFailed,
			fmt.Sprintf("Fallback selection failed for week %d: %v", req.WeekIndex, fbErr))
	}
	return fb, nil
}

// rawSelection mirrors the structured-output shape before day names are
// parsed into typed weekdays.
type rawSelection struct {
	WeekIndex  int `json:"week_index"`
	Selections []struct {
		Day        string `json:"day"`
		TemplateID string `json:"template_id"`
	} `json:"selections"`
}

func (a *Advisory) advise(ctx context.Context, req WeekRequest) (WeekSelection, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "template-selection")

	resp, err := a.provider.Complete(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(req),
		Schema:      SelectionSchema(),
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if err != nil {
		return WeekSelection{}, err
	}

	var raw rawSelection
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return WeekSelection{}, plan.NewError(plan.CodeInvalidLLMOutput,
			fmt.Sprintf("Malformed selection payload: %v", err))
	}

	choices := make(map[plan.Weekday]string, len(raw.Selections))
	for _, s := range raw.Selections {
		day, ok := plan.ParseWeekday(s.Day)
		if !ok {
			return WeekSelection{}, plan.NewError(plan.CodeInvalidLLMOutput,
				fmt.Sprintf("Unknown day name %q", s.Day))
		}
		if _, dup := choices[day]; dup {
			return WeekSelection{}, plan.NewError(plan.CodeInvalidLLMOutput,
				fmt.Sprintf("Duplicate selection for %s", day))
		}
		choices[day] = s.TemplateID
	}

	return WeekSelection{WeekIndex: raw.WeekIndex, Choices: choices}, nil
}
