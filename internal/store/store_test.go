package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := start.Add(time.Duration(n) * time.Second)
		n++
		return t
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.DB())
	require.NoError(t, s.DB().Ping())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var busy int
	require.NoError(t, s.DB().Get(&busy, "PRAGMA busy_timeout"))
	assert.Equal(t, 5000, busy)

	var sync int
	require.NoError(t, s.DB().Get(&sync, "PRAGMA synchronous"))
	assert.Equal(t, 1, sync) // NORMAL
}

func TestOpen_FileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().Get(&mode, "PRAGMA journal_mode"))
	assert.Equal(t, "wal", mode)

	// Reopening must not fail on the existing schema.
	s2, err := Open(path)
	require.NoError(t, err)
	s2.Close()
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = fixedClock(start)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "explanation", InputTokens: 120, OutputTokens: 80, LatencyMs: 400, Success: true, RequestBody: "[user]\nhelp", ResponseBody: `{"given":"x"}`},
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "explanation", LatencyMs: 200, Success: false, ErrorMessage: "rate limited"},
		{Provider: "mock", Model: "mock", Purpose: "quiz", InputTokens: 10, OutputTokens: 5, LatencyMs: 1, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Newest first.
	assert.Equal(t, "quiz", all[0].Purpose)
	assert.True(t, start.Add(2*time.Second).Equal(all[0].Timestamp), "timestamp %v", all[0].Timestamp)
	assert.True(t, all[2].Success)
	assert.Equal(t, `{"given":"x"}`, all[2].ResponseBody)
	assert.Equal(t, "rate limited", all[1].ErrorMessage)
	assert.False(t, all[1].Success)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, all[0].ID, limited[0].ID)

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "explanation"})
	require.NoError(t, err)
	assert.Len(t, byPurpose, 2)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: all[1].ID})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "quiz", after[0].Purpose)

	window, err := repo.QueryLLMEvents(ctx, QueryOpts{From: start.Add(time.Second), To: start.Add(time.Second)})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "rate limited", window[0].ErrorMessage)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "explanation", Success: true, RequestBody: "prompt"}))

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := repo.GetLLMEvent(ctx, all[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "prompt", got.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "gemini-3-flash-preview", Purpose: "explanation", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true},
		{Model: "gemini-3-flash-preview", Purpose: "explanation", InputTokens: 200, OutputTokens: 70, LatencyMs: 500, Success: true},
		{Model: "gpt-4o-mini", Purpose: "explanation", LatencyMs: 100, Success: false},
		{Model: "gpt-4o-mini", Purpose: "quiz", InputTokens: 10, OutputTokens: 10, LatencyMs: 100, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsageStats{Key: "explanation", Calls: 3, Failures: 1, InputTokens: 300, OutputTokens: 120, AvgLatencyMs: 300}, byPurpose[0])
	assert.Equal(t, "quiz", byPurpose[1].Key)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-3-flash-preview", byModel[0].Key)
	assert.Equal(t, 2, byModel[0].Calls)
	assert.Equal(t, int64(400), byModel[0].AvgLatencyMs)
	assert.Equal(t, "gpt-4o-mini", byModel[1].Key)
	assert.Equal(t, 1, byModel[1].Failures)
}

func TestLLMUsage_Empty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.EventRepo().LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("DC_DB", filepath.Join(dir, "override", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "override", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "override"))

	t.Setenv("DC_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dcmaster", "dcmaster.db"), p)
}
