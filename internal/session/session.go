// Package session holds the browsing-session mirror of the checkout
// form: identity fields, the in-progress draft snapshot and a bounded
// order-history ring. The draft store stays authoritative for recovery;
// session state only streamlines repeat purchases within one visit.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/autosave"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
)

// Session is one shopper's browsing session
type Session struct {
	ID string

	mu       sync.Mutex
	form     models.Draft
	history  []models.Order
	size     int
	lastSeen time.Time

	sched  *autosave.Scheduler
	cancel context.CancelFunc
}

// State is the JSON-serializable session view
type State struct {
	ID      string         `json:"id"`
	Form    models.Draft   `json:"form"`
	History []models.Order `json:"history"`
}

// SetForm replaces the current form snapshot
func (s *Session) SetForm(form models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

// Snapshot returns the current form snapshot
func (s *Session) Snapshot() models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// RecordOrder appends order to the bounded history ring and resets only
// the quantity field of the form, keeping identity fields for repeat
// purchases.
func (s *Session) RecordOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, order)
	if len(s.history) > s.size {
		s.history = s.history[len(s.history)-s.size:]
	}

	s.form.Quantity = 0
}

// State returns a copy of the session state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.Order, len(s.history))
	copy(history, s.history)

	return State{
		ID:      s.ID,
		Form:    s.form,
		History: history,
	}
}

// Touch records shopper activity, deferring the idle reaper
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

// LastSeen returns the time of the last shopper activity
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Scheduler returns the autosave scheduler attached to the session
func (s *Session) Scheduler() *autosave.Scheduler {
	return s.sched
}
