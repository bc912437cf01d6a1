package support

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"care-portals/internal/middleware"
	"care-portals/internal/ports/backend"

	"github.com/go-chi/chi/v5"
)

const roleAdmin = "admin"

// RegisterRoutes monta /api. Todo exige bearer; /api/admin exige rol admin.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api", func(ar chi.Router) {
		ar.Use(middleware.RequireClaims())

		ar.Post("/chat/messages", chatHandler(svc))

		ar.Get("/bookings", listHandler(svc.Bookings))
		ar.Post("/bookings", createBookingHandler(svc))

		ar.Post("/mood/entries", saveMoodHandler(svc))
		ar.Get("/mood/history", listHandler(svc.MoodHistory))

		ar.Get("/forum/posts", listHandler(svc.ForumPosts))
		ar.Post("/forum/posts", createForumPostHandler(svc))

		ar.Get("/resources", resourcesHandler(svc))

		ar.Get("/applications", listHandler(svc.Applications))
		ar.Post("/applications", submitApplicationHandler(svc))
		ar.Get("/conversations", listHandler(svc.Conversations))

		ar.Route("/admin", func(adm chi.Router) {
			adm.Use(middleware.RequireClaims(roleAdmin))

			adm.Get("/stats", listHandler(svc.Stats))
			adm.Get("/bookings", listHandler(svc.AllBookings))
			adm.Patch("/bookings/{bookingID}", updateBookingStatusHandler(svc))
			adm.Get("/flagged", listHandler(svc.Flagged))
			adm.Post("/flagged/{contentID}/moderate", moderateHandler(svc))
			adm.Get("/analytics", listHandler(svc.Analytics))
		})
	})
}

// listHandler sirve cualquier lectura sin parámetros.
func listHandler[T any](fetch func(context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fetch(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// chatHandler godoc
// @Summary Mensaje al chatbot
// @Description Respuesta enlatada tras ~1s.
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body chatRequest true "mensaje"
// @Success 200 {object} backend.ChatReply
// @Failure 401 {string} string "unauthorized"
// @Router /api/chat/messages [post]
func chatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		out, err := svc.Chat(r.Context(), req.Message)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

// createBookingHandler godoc
// @Summary Reservar sesión con consejero
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body backend.BookingRequest true "reserva"
// @Success 201 {object} backend.Booking
// @Failure 400 {string} string "invalid input"
// @Router /api/bookings [post]
func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backend.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		out, err := svc.CreateBooking(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func saveMoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backend.MoodEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		out, err := svc.SaveMood(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func createForumPostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backend.ForumPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Author == "" {
			if claims, ok := middleware.GetClaims(r.Context()); ok {
				req.Author = claims.Name
			}
		}
		out, err := svc.CreateForumPost(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func resourcesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		out, err := svc.Resources(r.Context(), backend.ResourceFilter{
			Type:     q.Get("type"),
			Category: q.Get("category"),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func submitApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backend.ApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		out, err := svc.SubmitApplication(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

type updateBookingStatusRequest struct {
	Status backend.BookingStatus `json:"status"`
}

// updateBookingStatusHandler godoc
// @Summary Cambiar estado de una reserva (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID"
// @Param body body updateBookingStatusRequest true "nuevo estado"
// @Success 200 {object} backend.BookingStatusUpdate
// @Failure 403 {string} string "forbidden"
// @Router /api/admin/bookings/{bookingID} [patch]
func updateBookingStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateBookingStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		out, err := svc.UpdateBookingStatus(r.Context(), chi.URLParam(r, "bookingID"), req.Status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type moderateRequest struct {
	Action backend.ModerationAction `json:"action"`
}

func moderateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moderateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		out, err := svc.Moderate(r.Context(), chi.URLParam(r, "contentID"), req.Action)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
	default:
		http.Error(w, "upstream error", http.StatusBadGateway)
	}
}

// writeJSON está duplicado intencionalmente por módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
