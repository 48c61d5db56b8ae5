package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRecounter struct {
	calls int
	err   error
}

func (c *countingRecounter) RecountCities(context.Context) error {
	c.calls++
	return c.err
}

func TestRunRecountSwallowsErrors(t *testing.T) {
	r := &countingRecounter{err: errors.New("db down")}
	RunRecount(r, zap.NewNop())
	RunRecount(r, zap.NewNop())
	assert.Equal(t, 2, r.calls)
}

func TestNewSchedulerValidatesSpec(t *testing.T) {
	_, err := NewScheduler("not a schedule", &countingRecounter{}, zap.NewNop())
	assert.Error(t, err)

	s, err := NewScheduler("@every 1h", &countingRecounter{}, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestRecountReturnsError(t *testing.T) {
	r := &countingRecounter{err: errors.New("db down")}
	assert.EqualError(t, Recount(context.Background(), r, zap.NewNop()), "db down")

	r.err = nil
	assert.NoError(t, Recount(context.Background(), r, zap.NewNop()))
	assert.Equal(t, 2, r.calls)
}
