package cleanup

import (
	"context"
	"log"
	"time"
)

// SeatReleaser is the part of the table the worker needs.
type SeatReleaser interface {
	ReleaseIdleSeats(maxIdle time.Duration) int
}

type Worker struct {
	Seats    SeatReleaser
	Interval time.Duration
	MaxIdle  time.Duration
}

func NewWorker(seats SeatReleaser, interval, maxIdle time.Duration) *Worker {
	return &Worker{Seats: seats, Interval: interval, MaxIdle: maxIdle}
}

// Start runs the cleanup every Interval until ctx is cancelled. It blocks.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	log.Println("[CLEANUP] Background worker started")

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() int {
	released := w.Seats.ReleaseIdleSeats(w.MaxIdle)
	if released > 0 {
		log.Printf("[CLEANUP] Released %d idle seats", released)
	}
	return released
}
