// Package store is the Domain Store: the single in-memory source of truth for
// the session, the user and coach rosters, the cart, the dated plan, chat
// conversations and transient notices.
//
// Every mutation runs under one lock and is atomic from the caller's point of
// view. Readers get deep-copied snapshots, and subscribers are called with a
// fresh snapshot after each change.
package store

import (
	"log"
	"sync"
	"time"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/clock"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/planner"
)

// Timings are the simulated latencies and notice lifetimes.
type Timings struct {
	ToastTTL            time.Duration
	NotificationTTL     time.Duration
	PlanGenerationDelay time.Duration
	CoachReplyDelay     time.Duration
	PlanDeliveryDelay   time.Duration
}

// DefaultTimings mirrors the app's UI timings.
func DefaultTimings() Timings {
	return Timings{
		ToastTTL:            3 * time.Second,
		NotificationTTL:     5 * time.Second,
		PlanGenerationDelay: 1 * time.Second,
		CoachReplyDelay:     1500 * time.Millisecond,
		PlanDeliveryDelay:   2 * time.Second,
	}
}

// State is a consistent, caller-owned copy of the store.
type State struct {
	CurrentUser    *domain.User          `json:"currentUser"`
	Users          []domain.User         `json:"users"`
	Coaches        []domain.Coach        `json:"coaches"`
	Language       domain.Language       `json:"language"`
	Theme          domain.Theme          `json:"theme"`
	Cart           []domain.CartItem     `json:"cart"`
	Plan           domain.Plan           `json:"plan"`
	PlanGenerating bool                  `json:"planGenerating"`
	Conversations  []domain.Conversation `json:"conversations"`
	Toasts         []domain.Toast        `json:"toasts"`
	Notifications  []domain.Notification `json:"notifications"`
}

// Store is safe for concurrent use; timer callbacks and callers share one lock.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	engine  *planner.Engine
	clock   clock.Clock
	timings Timings

	currentUser    *domain.User
	users          []domain.User
	coaches        []domain.Coach
	language       domain.Language
	theme          domain.Theme
	cart           []domain.CartItem
	plan           domain.Plan
	planGenerating bool
	conversations  []*domain.Conversation

	toasts        []domain.Toast
	notifications []domain.Notification
	noticeTimers  map[int64]clock.Timer
	lastNoticeID  int64

	// Session-scoped delayed effects. Bumping epoch invalidates all of them.
	epoch      uint64
	tasks      map[uint64]clock.Timer
	nextTaskID uint64
	planTask   uint64

	subs      map[int]func(State)
	nextSubID int
	// Snapshots awaiting delivery, in change order. One caller drains at a time.
	pending  []State
	draining bool
}

// New creates a store seeded from the catalog's user and coach rosters.
func New(cat *catalog.Catalog, engine *planner.Engine, clk clock.Clock, timings Timings) *Store {
	if clk == nil {
		clk = clock.System()
	}
	return &Store{
		catalog:      cat,
		engine:       engine,
		clock:        clk,
		timings:      timings,
		users:        cat.SeedUsers(),
		coaches:      cat.SeedCoaches(),
		language:     domain.LanguageEN,
		theme:        domain.ThemeLight,
		cart:         []domain.CartItem{},
		plan:         domain.Plan{},
		noticeTimers: make(map[int64]clock.Timer),
		tasks:        make(map[uint64]clock.Timer),
		subs:         make(map[int]func(State)),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called with a snapshot after every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// PendingEffects reports how many session-scoped delayed effects are scheduled.
func (s *Store) PendingEffects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// mutate runs fn under the lock. When fn reports a change, the snapshot is
// queued and subscribers see queued snapshots in change order, outside the lock.
func (s *Store) mutate(fn func() bool) bool {
	s.mu.Lock()
	changed := fn()
	if changed && len(s.subs) > 0 {
		s.pending = append(s.pending, s.snapshotLocked())
	}
	if s.draining || len(s.pending) == 0 {
		s.mu.Unlock()
		return changed
	}
	s.draining = true
	s.mu.Unlock()

	s.deliver()
	return changed
}

// deliver hands queued snapshots to subscribers until the queue is empty.
func (s *Store) deliver() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		snap := s.pending[0]
		s.pending[0] = State{}
		s.pending = s.pending[1:]
		subs := make([]func(State), 0, len(s.subs))
		for _, f := range s.subs {
			subs = append(subs, f)
		}
		s.mu.Unlock()

		for _, f := range subs {
			f(snap)
		}
	}
}

func (s *Store) snapshotLocked() State {
	st := State{
		Language:       s.language,
		Theme:          s.theme,
		Plan:           s.plan.Clone(),
		PlanGenerating: s.planGenerating,
		Users:          make([]domain.User, len(s.users)),
		Coaches:        append([]domain.Coach{}, s.coaches...),
		Cart:           append([]domain.CartItem{}, s.cart...),
		Conversations:  make([]domain.Conversation, len(s.conversations)),
		Toasts:         append([]domain.Toast{}, s.toasts...),
		Notifications:  append([]domain.Notification{}, s.notifications...),
	}
	if s.currentUser != nil {
		u := s.currentUser.Clone()
		st.CurrentUser = &u
	}
	for i, u := range s.users {
		st.Users[i] = u.Clone()
	}
	for i, c := range s.conversations {
		st.Conversations[i] = c.Clone()
	}
	return st
}

func (s *Store) today() string {
	return clock.Today(s.clock)
}

// === Session-scoped delayed effects ===

// scheduleLocked runs effect under the lock after d, unless the session that
// scheduled it has ended by then. Returns the task id.
func (s *Store) scheduleLocked(d time.Duration, name string, effect func()) uint64 {
	epoch := s.epoch
	s.nextTaskID++
	id := s.nextTaskID
	s.tasks[id] = s.clock.AfterFunc(d, func() {
		s.mutate(func() bool {
			if _, ok := s.tasks[id]; !ok || s.epoch != epoch {
				log.Printf("INFO: discarding delayed %s: session ended", name)
				return false
			}
			delete(s.tasks, id)
			effect()
			return true
		})
	})
	return id
}

// cancelTaskLocked stops one pending effect.
func (s *Store) cancelTaskLocked(id uint64) {
	if t, ok := s.tasks[id]; ok {
		t.Stop()
		delete(s.tasks, id)
	}
}

// endSessionLocked cancels every delayed effect tied to the current session.
func (s *Store) endSessionLocked() {
	s.epoch++
	if n := len(s.tasks); n > 0 {
		log.Printf("INFO: cancelling %d pending session effect(s)", n)
	}
	for id, t := range s.tasks {
		t.Stop()
		delete(s.tasks, id)
	}
	s.planTask = 0
	s.planGenerating = false
}
