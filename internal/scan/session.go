package scan

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/juliusphilipponce/menu-miner/internal/menu"
)

// Scan lifecycle. A session either reaches done with a published result or
// failed with a user-facing message.
type Status string

const (
	StatusPending    Status = "pending"
	StatusExtracting Status = "extracting"
	StatusEnriching  Status = "enriching"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

// Session is the transient state of one scan. Results are never persisted;
// a session that nobody polls simply expires.
type Session struct {
	ID        string      `json:"scanId"`
	Status    Status      `json:"status"`
	Items     []menu.Item `json:"items,omitempty"`
	Error     string      `json:"error,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Sessions expire half an hour after their last update; an abandoned scan's
// result is discarded rather than applied to a stale session.
const (
	sessionTTL     = 30 * time.Minute
	sessionCleanup = 10 * time.Minute
)

// Store holds scan sessions in an expiring in-memory cache.
type Store struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewStore() *Store {
	return &Store{
		cache: gocache.New(sessionTTL, sessionCleanup),
	}
}

// Create registers a new pending session and returns its snapshot.
func (s *Store) Create() Session {
	now := time.Now()
	sess := Session{
		ID:        uuid.New().String(),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Set(sess.ID, sess, gocache.DefaultExpiration)

	return sess
}

// Get returns a session snapshot, or false if it never existed or expired.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(id)
	if !ok {
		return Session{}, false
	}
	return v.(Session), true
}

// SetStatus moves a live session to a new state. Writing to an expired
// session is a no-op: the worker's result is discarded.
func (s *Store) SetStatus(id string, status Status) {
	s.update(id, func(sess *Session) {
		sess.Status = status
	})
}

// Finish publishes the final item list and marks the session done.
func (s *Store) Finish(id string, items []menu.Item) {
	s.update(id, func(sess *Session) {
		sess.Status = StatusDone
		sess.Items = items
	})
}

// Fail records a user-facing error message and marks the session failed.
func (s *Store) Fail(id string, msg string) {
	s.update(id, func(sess *Session) {
		sess.Status = StatusFailed
		sess.Error = msg
	})
}

func (s *Store) update(id string, mutate func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(id)
	if !ok {
		return
	}

	sess := v.(Session)
	mutate(&sess)
	sess.UpdatedAt = time.Now()
	s.cache.Set(id, sess, gocache.DefaultExpiration)
}
