package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/paceline/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RecordAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordCall(ctx, llm.CallRecord{
		Purpose:      "template-selection",
		Model:        "claude-haiku-4-5-20251001",
		InputTokens:  120,
		OutputTokens: 45,
		LatencyMs:    830,
		Success:      true,
	}))
	require.NoError(t, s.RecordCall(ctx, llm.CallRecord{
		Purpose:      "template-selection",
		Model:        "claude-haiku-4-5-20251001",
		LatencyMs:    20012,
		Success:      false,
		ErrorMessage: "advisory provider unavailable",
	}))

	events, err := s.RecentCalls(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	require.False(t, events[0].Success)
	require.Equal(t, "advisory provider unavailable", events[0].ErrorMessage)
	require.True(t, events[1].Success)
	require.Equal(t, 120, events[1].InputTokens)
	require.Equal(t, "template-selection", events[1].Purpose)
	require.False(t, events[1].CreatedAt.IsZero())
}

func TestStore_RecentCallsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordCall(ctx, llm.CallRecord{Purpose: "template-selection", Model: "mock", Success: true}))
	}

	events, err := s.RecentCalls(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
}

func TestStore_Stats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordCall(ctx, llm.CallRecord{Model: "mock", InputTokens: 100, OutputTokens: 40, Success: true}))
	require.NoError(t, s.RecordCall(ctx, llm.CallRecord{Model: "mock", InputTokens: 80, OutputTokens: 30, Success: true}))
	require.NoError(t, s.RecordCall(ctx, llm.CallRecord{Model: "mock", Success: false, ErrorMessage: "rate limited"}))

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, st.TotalCalls)
	require.Equal(t, 2, st.SuccessCalls)
	require.Equal(t, int64(180), st.InputTokens)
	require.Equal(t, int64(70), st.OutputTokens)
}

func TestStore_EmptyStats(t *testing.T) {
	s := openTestStore(t)

	st, err := s.Stats(context.Background())
	require.NoError(t, err)
	require.Zero(t, st.TotalCalls)
	require.Zero(t, st.InputTokens)
}

func TestStore_ImplementsRecorder(t *testing.T) {
	var _ llm.Recorder = openTestStore(t)
}
