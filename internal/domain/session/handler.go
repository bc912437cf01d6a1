package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"care-portals/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /session dentro del router de la variante.
// La key del visitante ya viene con el prefijo de la variante (middleware.ScopeVisitor).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/session", func(sr chi.Router) {
		sr.Get("/", currentHandler(svc))
		sr.Delete("/", logoutHandler(svc))
		sr.Post("/login", loginHandler(svc))
		sr.Post("/signup", signupHandler(svc))
		sr.Post("/guest", guestHandler(svc))
	})
}

type loginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type sessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name,omitempty"`
	Email         string     `json:"email,omitempty"`
	Role          Role       `json:"role,omitempty"`
	Token         string     `json:"token,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

func toSessionResponse(s Session) sessionResponse {
	created := s.CreatedAt
	return sessionResponse{
		Authenticated: true,
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Role:          s.Role,
		Token:         s.Token,
		CreatedAt:     &created,
	}
}

// currentHandler godoc
// @Summary Sesión actual
// @Tags session
// @Produce json
// @Param variant path string true "pet-adoption | mental-health"
// @Success 200 {object} sessionResponse
// @Router /{variant}/session [get]
func currentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok, err := svc.Current(r.Context(), middleware.GetVisitorKey(r.Context()))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, sessionResponse{})
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(s))
	}
}

// loginHandler godoc
// @Summary Login de demo
// @Description Compara contra las credenciales fijas del rol (student o admin). Tarda ~1s.
// @Tags session
// @Accept json
// @Produce json
// @Param variant path string true "pet-adoption | mental-health"
// @Param body body loginRequest true "rol y credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json / role"
// @Failure 401 {string} string "Invalid credentials"
// @Router /{variant}/session/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		role := Role(strings.ToLower(strings.TrimSpace(req.Role)))
		if role == "" {
			role = RoleStudent
		}

		s, err := svc.Login(r.Context(), middleware.GetVisitorKey(r.Context()), role,
			Credentials{Email: req.Email, Password: req.Password})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidCredentials):
				msg := "Invalid credentials"
				if role == RoleAdmin {
					msg = "Invalid admin credentials"
				}
				http.Error(w, msg, http.StatusUnauthorized)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				writeContextError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(s))
	}
}

// signupHandler godoc
// @Summary Alta de estudiante (demo)
// @Tags session
// @Accept json
// @Produce json
// @Param variant path string true "mental-health"
// @Param body body signupRequest true "datos"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "Passwords do not match"
// @Router /{variant}/session/signup [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := svc.Signup(r.Context(), middleware.GetVisitorKey(r.Context()), SignupInput{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrPasswordMismatch):
				http.Error(w, "Passwords do not match", http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				writeContextError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusCreated, toSessionResponse(s))
	}
}

// guestHandler godoc
// @Summary Acceso anónimo
// @Tags session
// @Produce json
// @Param variant path string true "mental-health"
// @Success 201 {object} sessionResponse
// @Router /{variant}/session/guest [post]
func guestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Guest(r.Context(), middleware.GetVisitorKey(r.Context()))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toSessionResponse(s))
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middleware.GetVisitorKey(r.Context())); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// El cliente cortó mientras esperábamos la latencia simulada.
func writeContextError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON está duplicado intencionalmente por módulo (mismo patrón que catalog).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
