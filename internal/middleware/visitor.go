package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	VisitorCookie = "sid"
	VisitorHeader = "X-Session-Key"

	visitorKey ctxKey = "visitor"
)

// VisitorKey identifica al "navegador": header X-Session-Key, si no cookie sid,
// si no genera uno nuevo y lo devuelve en cookie + header.
func VisitorKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(r.Header.Get(VisitorHeader))
		if key == "" {
			if c, err := r.Cookie(VisitorCookie); err == nil {
				key = strings.TrimSpace(c.Value)
			}
		}
		if key == "" {
			key = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    key,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		w.Header().Set(VisitorHeader, key)

		ctx := context.WithValue(r.Context(), visitorKey, key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ScopeVisitor prefija la key con lo que devuelva scope (p.ej. la variante del portal),
// así cada portal tiene su propia sesión para el mismo navegador.
func ScopeVisitor(scope func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := GetVisitorKey(r.Context())
			prefix := strings.TrimSpace(scope(r))
			if key == "" || prefix == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), visitorKey, prefix+":"+key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetVisitorKey(ctx context.Context) string {
	v, _ := ctx.Value(visitorKey).(string)
	return v
}
