package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSchedule(t *testing.T) {
	tests := map[string]string{
		"@hourly":        "0 0 * * * *",
		"@daily":         "0 0 0 * * *",
		"@weekly":        "0 0 0 * * 0",
		"@monthly":       "0 0 0 1 * *",
		"30 2 * * *":     "0 30 2 * * *",
		" 0 30 2 * * * ": "0 30 2 * * *",
		"@every 1h":      "@every 1h",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeSchedule(in), in)
	}
}

func TestScheduler_AddJob(t *testing.T) {
	s := NewScheduler()

	require.NoError(t, s.AddJob("orders-export", "@daily", func(context.Context) error { return nil }))
	assert.Equal(t, []string{"orders-export"}, s.Jobs())

	err := s.AddJob("orders-export", "@daily", func(context.Context) error { return nil })
	assert.Error(t, err)

	err = s.AddJob("broken", "not a schedule", func(context.Context) error { return nil })
	assert.Error(t, err)
	assert.Equal(t, []string{"orders-export"}, s.Jobs())
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler()
	require.NoError(t, s.AddJob("orders-export", "0 0 3 * * *", func(context.Context) error { return nil }))

	assert.Nil(t, s.NextRun("orders-export"))
	s.Start()
	assert.True(t, s.IsRunning())
	assert.NotNil(t, s.NextRun("orders-export"))
	assert.Nil(t, s.NextRun("missing"))

	s.Stop()
	assert.False(t, s.IsRunning())
	s.Stop()
}

func TestScheduler_Trigger(t *testing.T) {
	s := NewScheduler()
	calls := 0
	require.NoError(t, s.AddJob("count", "@hourly", func(context.Context) error {
		calls++
		return nil
	}))
	require.NoError(t, s.AddJob("fail", "@hourly", func(context.Context) error {
		return errors.New("boom")
	}))

	require.NoError(t, s.Trigger(context.Background(), "count"))
	assert.Equal(t, 1, calls)
	assert.EqualError(t, s.Trigger(context.Background(), "fail"), "boom")
	assert.Error(t, s.Trigger(context.Background(), "missing"))
}
