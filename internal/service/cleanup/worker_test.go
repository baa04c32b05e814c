package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeSeats struct {
	mu      sync.Mutex
	calls   int
	maxIdle time.Duration
}

func (f *fakeSeats) ReleaseIdleSeats(maxIdle time.Duration) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.maxIdle = maxIdle
	return 1
}

func (f *fakeSeats) snapshot() (int, time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.maxIdle
}

func TestRunCleanupPassesMaxIdle(t *testing.T) {
	seats := &fakeSeats{}
	w := NewWorker(seats, time.Hour, 30*time.Minute)

	if released := w.runCleanup(); released != 1 {
		t.Fatalf("expected 1 released seat, got %d", released)
	}
	calls, maxIdle := seats.snapshot()
	if calls != 1 || maxIdle != 30*time.Minute {
		t.Fatalf("unexpected call: calls=%d maxIdle=%v", calls, maxIdle)
	}
}

func TestStartTicksUntilCancelled(t *testing.T) {
	seats := &fakeSeats{}
	w := NewWorker(seats, 5*time.Millisecond, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if calls, _ := seats.snapshot(); calls >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("worker did not tick")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not stop after cancel")
	}
}
