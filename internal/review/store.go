// Package review holds a batch's successful extractions as mutable draft
// records until the user confirms or discards them. The store is a
// pass-through container: it never validates payload contents.
package review

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"cropai/internal/domain"
)

// Session is one batch's review state: an ordered draft collection plus
// the warnings and failure notice collected while the batch ran.
type Session struct {
	ID            uuid.UUID            `json:"id"`
	Kind          domain.RecordKind    `json:"kind"`
	Drafts        []domain.DraftRecord `json:"drafts"`
	Warnings      []string             `json:"warnings,omitempty"`
	FailureNotice string               `json:"failure_notice,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Store keeps active review sessions in memory. Drafts are session-scoped
// and are never persisted; commit converts them into durable records and
// cancel discards them wholesale.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty review session store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Put registers a new session, replacing any session with the same ID.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns a snapshot of the session, or domain.ErrSessionNotFound.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return snapshot(sess), nil
}

// UpdateDraft replaces one draft's payload wholesale. Unknown draft IDs
// are a no-op: the review form may race a concurrent removal.
func (s *Store) UpdateDraft(sessionID, draftID uuid.UUID, data domain.RecordData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	for i := range sess.Drafts {
		if sess.Drafts[i].ID == draftID {
			sess.Drafts[i].Data = data
			break
		}
	}
	return nil
}

// RemoveDraft drops one draft from the session. Unknown draft IDs are a no-op.
func (s *Store) RemoveDraft(sessionID, draftID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	for i := range sess.Drafts {
		if sess.Drafts[i].ID == draftID {
			sess.Drafts = append(sess.Drafts[:i], sess.Drafts[i+1:]...)
			break
		}
	}
	return nil
}

// Clear discards the session and all of its drafts.
func (s *Store) Clear(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// snapshot copies a session so callers never share the live draft slice.
func snapshot(sess *Session) *Session {
	cp := *sess
	cp.Drafts = make([]domain.DraftRecord, len(sess.Drafts))
	copy(cp.Drafts, sess.Drafts)
	cp.Warnings = append([]string(nil), sess.Warnings...)
	return &cp
}
