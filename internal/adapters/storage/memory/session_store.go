package memory

import (
	"context"
	"sync"

	"care-portals/internal/domain/session"
)

type sessionStore struct {
	mu    sync.RWMutex
	byKey map[string]session.Session
}

func NewSessionStore() session.Store {
	return &sessionStore{byKey: map[string]session.Session{}}
}

func (s *sessionStore) Get(ctx context.Context, key string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return v, nil
}

func (s *sessionStore) Put(ctx context.Context, key string, v session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key] = v
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byKey, key)
	return nil
}
