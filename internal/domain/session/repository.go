package session

import "context"

// Store guarda una sesión por key de visitante.
// Get devuelve ErrNotFound si no hay sesión; Delete de una key inexistente no es error.
type Store interface {
	Get(ctx context.Context, key string) (Session, error)
	Put(ctx context.Context, key string, s Session) error
	Delete(ctx context.Context, key string) error
}
