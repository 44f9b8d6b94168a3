package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an idle session is kept
const DefaultTTL = 2 * time.Hour

// Store keeps sessions in memory. Carts are never persisted.
type Store struct {
	deps Dependencies
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty store
func NewStore(deps Dependencies, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		deps:     deps,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session with the given id, or a new session with a
// fresh id when id is empty or unknown. created reports the latter.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[id]; ok && id != "" {
		existing.lastSeen = s.now()
		return existing, false
	}

	newID := uuid.NewString()
	sess = New(newID, s.deps)
	sess.lastSeen = s.now()
	s.sessions[newID] = sess
	log.Printf("🆕 SessionStore: Created session %s", newID)
	return sess, true
}

// Get returns an existing session
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = s.now()
	}
	return sess, ok
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Expire drops sessions idle for longer than the TTL and returns how many went
func (s *Store) Expire() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	expired := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			expired++
		}
	}
	return expired
}

// RunJanitor expires idle sessions every interval until ctx is done
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("🧹 SessionStore: Janitor stopped")
			return
		case <-ticker.C:
			if n := s.Expire(); n > 0 {
				log.Printf("🧹 SessionStore: Expired %d idle sessions", n)
			}
		}
	}
}
