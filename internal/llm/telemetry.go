package llm

import (
	"context"
	"log/slog"
	"time"
)

// CallRecord captures one advisory call for the event log.
type CallRecord struct {
	Purpose      string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// Recorder persists advisory call records. The sqlite event store satisfies
// this; a nil recorder means telemetry goes to the log only.
type Recorder interface {
	RecordCall(ctx context.Context, rec CallRecord) error
}

// telemetryProvider is a decorator that records every advisory call as a
// structured log line and an event-store row.
type telemetryProvider struct {
	inner    Provider
	recorder Recorder
	log      *slog.Logger
}

// WithTelemetry wraps a provider with call recording. Either argument may
// be nil.
func WithTelemetry(p Provider, rec Recorder, log *slog.Logger) Provider {
	if log == nil {
		log = slog.Default()
	}
	return &telemetryProvider{inner: p, recorder: rec, log: log}
}

func (t *telemetryProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := t.inner.Complete(ctx, req)
	latency := time.Since(start)

	rec := CallRecord{
		Purpose:   purpose,
		Model:     t.inner.ModelID(),
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	t.log.Debug("advisory call",
		"purpose", purpose,
		"model", rec.Model,
		"latency_ms", rec.LatencyMs,
		"success", rec.Success,
	)

	// Telemetry must never fail the call itself.
	if t.recorder != nil {
		if recErr := t.recorder.RecordCall(ctx, rec); recErr != nil {
			t.log.Warn("failed to record advisory event", "error", recErr)
		}
	}

	return resp, err
}

func (t *telemetryProvider) ModelID() string {
	return t.inner.ModelID()
}

type contextKey string

const purposeKey contextKey = "advisory_purpose"

// WithPurpose attaches a purpose label to the context for event recording.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
