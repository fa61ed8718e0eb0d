package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("wizard session not found")

const DefaultTTL = 2 * time.Hour

// Store keeps live sessions in process memory. Receiving sessions are
// deliberately not shared across instances; abandoning one discards the draft.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

func (st *Store) Create(receivedBy string) *Session {
	session := NewSession(receivedBy)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked()
	st.sessions[session.ID] = session
	return session
}

func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	if !ok || session.expired(st.ttl) {
		delete(st.sessions, id)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) sweepLocked() {
	for id, session := range st.sessions {
		if session.expired(st.ttl) {
			delete(st.sessions, id)
		}
	}
}
