package navigator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"care-portals/internal/domain/catalog"
	"care-portals/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type ctxKey string

const variantKey ctxKey = "variant"

// VariantCtx resuelve {variant} de la URL. Variante desconocida => 404.
func VariantCtx(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := svc.Variant(chi.URLParam(r, "variant"))
			if err != nil {
				http.Error(w, "portal not found", http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), variantKey, v)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func VariantFromContext(ctx context.Context) (*Variant, bool) {
	v, ok := ctx.Value(variantKey).(*Variant)
	return v, ok && v != nil
}

// RegisterRoutes monta /pages dentro del router de la variante.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pages", pageHandler(svc))
	r.Get("/pages/{pageID}", pageHandler(svc))
}

// pageHandler godoc
// @Summary Navegar a una página del portal
// @Description Página desconocida => default. Página protegida sin acceso => redirect (login o home del rol).
// @Tags pages
// @Produce json
// @Param variant path string true "pet-adoption | mental-health"
// @Param pageID path string true "Page ID"
// @Param id query string false "Entity ID (pet-profile, adoption-form)"
// @Success 200 {object} View
// @Failure 400 {string} string "invalid filter"
// @Failure 404 {string} string "portal not found"
// @Router /{variant}/pages/{pageID} [get]
func pageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := Request{
			PageID:   chi.URLParam(r, "pageID"),
			EntityID: q.Get("id"),
			Params:   make(map[string]string, len(q)),
		}
		for k := range q {
			req.Params[k] = q.Get(k)
		}

		view, err := svc.Navigate(r.Context(), chi.URLParam(r, "variant"), middleware.GetVisitorKey(r.Context()), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownVariant):
		http.Error(w, "portal not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente por módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
