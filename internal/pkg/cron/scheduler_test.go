package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsUntilStopped(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("count", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_StopsWithContext(t *testing.T) {
	s := NewScheduler()
	s.AddJob("noop", time.Millisecond, func(ctx context.Context) error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_RunOnceContinuesAfterFailure(t *testing.T) {
	var ran []string
	s := NewScheduler()
	s.AddJob("fails", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "fails")
		return errors.New("boom")
	})
	s.AddJob("after", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "after")
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, []string{"fails", "after"}, ran)
}

type fakeEvicter struct {
	maxIdle time.Duration
	calls   int
}

func (f *fakeEvicter) EvictIdle(maxIdle time.Duration) int {
	f.maxIdle = maxIdle
	f.calls++
	return 3
}

func TestRegisterLedgerEviction(t *testing.T) {
	store := &fakeEvicter{}
	s := NewScheduler()
	RegisterLedgerEviction(s, store, time.Minute, 30*time.Minute)

	s.RunOnce(context.Background())
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, 30*time.Minute, store.maxIdle)
}
