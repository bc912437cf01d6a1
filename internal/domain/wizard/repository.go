package wizard

import "context"

// Repository guarda un draft por (key de visitante, formulario).
// Get devuelve ErrDraftNotFound si no existe.
type Repository interface {
	Get(ctx context.Context, key, formID string) (Draft, error)
	Put(ctx context.Context, key string, d Draft) error
	Delete(ctx context.Context, key, formID string) error
	// DeleteExcept borra todos los drafts del visitante salvo keepFormID ("" = todos).
	DeleteExcept(ctx context.Context, key, keepFormID string) error
}
