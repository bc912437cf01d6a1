package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"care-portals/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Authorizer decide si el visitante puede usar un formulario (lo implementa el navigator,
// que sabe qué página aloja cada formulario). nil = sin control.
type Authorizer interface {
	AuthorizeForm(ctx context.Context, key, formID string) error
}

// RegisterRoutes monta /forms dentro del router de la variante.
func RegisterRoutes(r chi.Router, svc *Service, authz Authorizer) {
	r.Route("/forms/{formID}", func(fr chi.Router) {
		fr.Use(formContext(svc, authz))

		fr.Post("/", openHandler(svc))
		fr.Get("/", getHandler(svc))
		fr.Patch("/", editHandler(svc))
		fr.Delete("/", discardHandler(svc))
		fr.Post("/next", stepHandler(svc.Next))
		fr.Post("/prev", stepHandler(svc.Prev))
		fr.Post("/submit", submitHandler(svc))
	})
}

// formContext valida que el formulario exista, sea de la variante y el visitante tenga acceso.
func formContext(svc *Service, authz Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			formID := chi.URLParam(r, "formID")
			def, err := svc.Definition(formID)
			if err != nil {
				http.Error(w, "form not found", http.StatusNotFound)
				return
			}
			if variant := chi.URLParam(r, "variant"); variant != "" && def.Variant != variant {
				http.Error(w, "form not found", http.StatusNotFound)
				return
			}
			if authz != nil {
				if err := authz.AuthorizeForm(r.Context(), middleware.GetVisitorKey(r.Context()), formID); err != nil {
					http.Error(w, err.Error(), http.StatusForbidden)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// openHandler godoc
// @Summary Abrir (o retomar) un formulario
// @Tags forms
// @Produce json
// @Param variant path string true "pet-adoption | mental-health"
// @Param formID path string true "adoption | booking | mood-entry | signup"
// @Param id query string false "Entity ID (adoption: pet id)"
// @Success 200 {object} DraftView
// @Failure 404 {string} string "entity not found"
// @Router /{variant}/forms/{formID} [post]
func openHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Open(r.Context(), middleware.GetVisitorKey(r.Context()), chi.URLParam(r, "formID"), r.URL.Query().Get("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToView(d))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Get(r.Context(), middleware.GetVisitorKey(r.Context()), chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToView(d))
	}
}

// editHandler godoc
// @Summary Editar campos del draft
// @Description Aplica todos los valores o ninguno. Checkbox/agreement aceptan true/false.
// @Tags forms
// @Accept json
// @Produce json
// @Param variant path string true "pet-adoption | mental-health"
// @Param formID path string true "Form ID"
// @Param body body map[string]string true "campo => valor"
// @Success 200 {object} DraftView
// @Failure 400 {string} string "unknown field / invalid option"
// @Failure 409 {string} string "form already submitted"
// @Router /{variant}/forms/{formID} [patch]
func editHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var values map[string]string
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		d, err := svc.Edit(r.Context(), middleware.GetVisitorKey(r.Context()), chi.URLParam(r, "formID"), values)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToView(d))
	}
}

func stepHandler(move func(ctx context.Context, key, formID string) (Draft, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := move(r.Context(), middleware.GetVisitorKey(r.Context()), chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToView(d))
	}
}

// submitHandler godoc
// @Summary Enviar formulario
// @Tags forms
// @Produce json
// @Param variant path string true "pet-adoption | mental-health"
// @Param formID path string true "Form ID"
// @Success 200 {object} DraftView
// @Failure 409 {string} string "form already submitted / not at final step"
// @Failure 422 {string} string "missing required fields"
// @Router /{variant}/forms/{formID}/submit [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Submit(r.Context(), middleware.GetVisitorKey(r.Context()), chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToView(d))
	}
}

func discardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Discard(r.Context(), middleware.GetVisitorKey(r.Context()), chi.URLParam(r, "formID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeError mapea errores del wizard. Errores de hooks sync (p.ej. signup)
// vuelven como 400 con su mensaje.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownForm), errors.Is(err, ErrDraftNotFound), errors.Is(err, ErrEntityNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUnknownField), errors.Is(err, ErrInvalidOption), errors.Is(err, ErrInvalidValue):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrAlreadySubmitted), errors.Is(err, ErrNotFinalStep):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrMissingRequiredField):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
	default:
		var he HookError
		if errors.As(err, &he) {
			http.Error(w, he.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// HookError marca un error de negocio devuelto por un hook sync (se muestra al usuario).
type HookError struct {
	Msg string
}

func (e HookError) Error() string { return e.Msg }

// writeJSON está duplicado intencionalmente por módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
