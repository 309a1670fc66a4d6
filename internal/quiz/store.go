package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store guarda sessões em andamento. Get devolve (nil, nil) quando a
// sessão não existe, seguindo o contrato dos repositórios.
type Store interface {
	Put(ctx context.Context, session *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[uuid.UUID]*Session)}
}

func (s *memoryStore) Put(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *memoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (s *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
