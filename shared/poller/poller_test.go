package poller_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"dinedesk/shared/poller"

	"github.com/stretchr/testify/assert"
)

func TestPollerFiresImmediately(t *testing.T) {
	var calls atomic.Int32

	p := poller.New("bookings", time.Hour, func(_ context.Context) error {
		calls.Add(1)

		return nil
	})

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, p.Running())
}

func TestPollerRetriesEveryTickWithoutBackoff(t *testing.T) {
	var calls atomic.Int32

	p := poller.New("orders", 10*time.Millisecond, func(_ context.Context) error {
		calls.Add(1)

		return errors.New("backend down")
	})

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return calls.Load() >= 4 }, time.Second, 5*time.Millisecond)
}

func TestPollerStop(t *testing.T) {
	var calls atomic.Int32

	p := poller.New("call-logs", 10*time.Millisecond, func(_ context.Context) error {
		calls.Add(1)

		return nil
	})

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	p.Stop()
	assert.False(t, p.Running())

	time.Sleep(20 * time.Millisecond)
	stopped := calls.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, stopped, calls.Load(), "no ticks after stop")
}

func TestPollerStopCancelsRefreshContext(t *testing.T) {
	started := make(chan struct{})
	observed := make(chan error, 1)

	p := poller.New("feedbacks", time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		observed <- ctx.Err()

		return nil
	})

	p.Start(context.Background())
	<-started
	p.Stop()

	select {
	case err := <-observed:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("refresh context was not cancelled")
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	var calls atomic.Int32

	p := poller.New("menu", time.Hour, func(_ context.Context) error {
		calls.Add(1)

		return nil
	})

	p.Start(context.Background())
	p.Start(context.Background())
	defer p.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPollerRestart(t *testing.T) {
	var calls atomic.Int32

	p := poller.New("bookings", time.Hour, func(_ context.Context) error {
		calls.Add(1)

		return nil
	})

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	p.Stop()

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestPollerNotStartedForCancelledOwner(t *testing.T) {
	var calls atomic.Int32

	p := poller.New("orders", 10*time.Millisecond, func(_ context.Context) error {
		calls.Add(1)

		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p.Start(ctx)
	defer p.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.False(t, p.Running())
	assert.Zero(t, calls.Load())
}

func TestPollerStopsWithOwner(t *testing.T) {
	var calls atomic.Int32

	p := poller.New("call-logs", 10*time.Millisecond, func(_ context.Context) error {
		calls.Add(1)

		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.Eventually(t, func() bool { return !p.Running() }, time.Second, 5*time.Millisecond)

	stopped := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load(), "no ticks after owner is gone")

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return calls.Load() > stopped }, time.Second, 5*time.Millisecond)
}
