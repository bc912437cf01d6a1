package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
	r.Get("/testimonials", listTestimonialsHandler(svc))
}

// PetResponse es la representación pública de una mascota.
type PetResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Species     Species  `json:"species"`
	Breed       string   `json:"breed"`
	Age         int      `json:"age"`
	Gender      Gender   `json:"gender"`
	Size        Size     `json:"size"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Personality []string `json:"personality"`
	Vaccinated  bool     `json:"vaccinated"`
	Spayed      bool     `json:"spayed"`
	Images      []string `json:"images"`
	AdoptionFee float64  `json:"adoption_fee"`
	Status      Status   `json:"status"`
}

type TestimonialResponse struct {
	ID       string    `json:"id"`
	UserName string    `json:"user_name"`
	PetName  string    `json:"pet_name"`
	Story    string    `json:"story"`
	Image    string    `json:"image"`
	Date     time.Time `json:"date"`
}

// listPetsHandler godoc
// @Summary Buscar mascotas
// @Description Lista el catálogo aplicando búsqueda (nombre/raza) y filtros. "all" equivale a sin filtro.
// @Tags pets
// @Produce json
// @Param q query string false "Texto a buscar en nombre o raza"
// @Param species query string false "dog | cat | other"
// @Param gender query string false "male | female"
// @Param size query string false "small | medium | large"
// @Param age query string false "young | adult | senior"
// @Success 200 {array} PetResponse
// @Failure 400 {string} string "filtro inválido"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f, err := ParseFilter(q.Get("q"), q.Get("species"), q.Get("gender"), q.Get("size"), q.Get("age"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListPets(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToPetResponse(p))
	}
}

func listTestimonialsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Testimonials(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToTestimonialResponses(items))
	}
}

// ToPetResponse también lo usa el navigator para armar vistas.
func ToPetResponse(p Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Age:         p.Age,
		Gender:      p.Gender,
		Size:        p.Size,
		Location:    p.Location,
		Description: p.Description,
		Personality: p.Personality,
		Vaccinated:  p.Vaccinated,
		Spayed:      p.Spayed,
		Images:      p.Images,
		AdoptionFee: p.AdoptionFee,
		Status:      p.Status,
	}
}

func ToPetResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToPetResponse(p))
	}
	return out
}

func ToTestimonialResponses(items []Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(items))
	for _, t := range items {
		out = append(out, TestimonialResponse{
			ID:       t.ID,
			UserName: t.UserName,
			PetName:  t.PetName,
			Story:    t.Story,
			Image:    t.Image,
			Date:     t.Date,
		})
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar un paquete de helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
