// Package redis guarda las sesiones de visitante en Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"care-portals/internal/domain/session"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// SessionStore guarda cada sesión como JSON bajo "session:<key>", sin TTL
// (las sesiones de demo no expiran).
type SessionStore struct {
	client goredis.UniversalClient
}

func NewSessionStore(client goredis.UniversalClient) *SessionStore {
	return &SessionStore{client: client}
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

// Open crea el cliente y hace PING.
func Open(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

func (s *SessionStore) Get(ctx context.Context, key string) (session.Session, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, fmt.Errorf("redis get session: %w", err)
	}

	var v session.Session
	if err := json.Unmarshal(raw, &v); err != nil {
		return session.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return v, nil
}

func (s *SessionStore) Put(ctx context.Context, key string, v session.Session) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
