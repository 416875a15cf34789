package session

import "sync"

// Store is the process-wide session repository. Distinct users' records may
// be fetched concurrently; callers own the returned session and must not
// interleave operations on the same user.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewStore creates an empty repository.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the user's session, creating a default one on first access.
func (s *Store) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = New(userID)
		s.sessions[userID] = sess
	}
	return sess
}

// Reset discards the user's session and installs a fresh default one.
func (s *Store) Reset(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := New(userID)
	s.sessions[userID] = sess
	return sess
}

// Len reports how many sessions exist.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
