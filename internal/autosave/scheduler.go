// Package autosave drives opportunistic draft persistence for an active
// checkout form. Saves are fire-and-forget: failures are logged and
// swallowed, never surfaced to the shopper.
package autosave

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"go.uber.org/zap"
)

// Trigger identifies what fired a save attempt
type Trigger int

const (
	TriggerTick Trigger = iota
	TriggerHidden
	TriggerUnload
	TriggerTeardown
)

func (t Trigger) String() string {
	switch t {
	case TriggerTick:
		return "tick"
	case TriggerHidden:
		return "hidden"
	case TriggerUnload:
		return "unload"
	case TriggerTeardown:
		return "teardown"
	default:
		return "unknown"
	}
}

// SaveFunc persists a form snapshot and reports whether a write happened
type SaveFunc func(ctx context.Context, draft models.Draft) (bool, error)

// SnapshotFunc returns the current form field snapshot
type SnapshotFunc func() models.Draft

// Scheduler triggers draft saves on a timer and on page-lifecycle
// events. The submitted flag is a single mutable cell checked at the
// very top of every save attempt: lifecycle triggers can fire after the
// finalizer has flipped it, and must see the flipped value rather than
// anything captured earlier.
type Scheduler struct {
	interval  time.Duration
	snapshot  SnapshotFunc
	save      SaveFunc
	logger    *zap.Logger
	submitted atomic.Bool

	mu      sync.Mutex
	last    models.Draft
	hasLast bool
}

// New creates new Scheduler instance
func New(interval time.Duration, snapshot SnapshotFunc, save SaveFunc, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		snapshot: snapshot,
		save:     save,
		logger:   logger,
	}
}

// MarkSubmitted suppresses all further save attempts
func (s *Scheduler) MarkSubmitted() {
	s.submitted.Store(true)
}

// Submitted reports whether the form has been submitted
func (s *Scheduler) Submitted() bool {
	return s.submitted.Load()
}

// Run drives periodic saves until ctx is cancelled, then performs one
// final teardown flush.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Flush(context.Background(), TriggerTeardown)
			s.logger.Debug("autosave scheduler is done")
			return
		case <-ticker.C:
			s.Flush(ctx, TriggerTick)
		}
	}
}

// Flush attempts one save for trigger. Nothing is written when the form
// has been submitted or the snapshot matches the last persisted one.
func (s *Scheduler) Flush(ctx context.Context, trigger Trigger) {
	if s.submitted.Load() {
		return
	}

	snap := s.snapshot()

	s.mu.Lock()
	clean := s.hasLast && snap.SameFields(s.last)
	s.mu.Unlock()
	if clean {
		return
	}

	saved, err := s.save(ctx, snap)
	if err != nil {
		s.logger.Debug("autosave failed",
			zap.Stringer("trigger", trigger),
			zap.Error(err))
		return
	}
	if !saved {
		return
	}

	s.mu.Lock()
	s.last = snap
	s.hasLast = true
	s.mu.Unlock()

	s.logger.Debug("draft autosaved",
		zap.Stringer("trigger", trigger),
		zap.String("phone", snap.Phone))
}
