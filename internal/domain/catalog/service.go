package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	featuredCount = 3
	similarCount  = 3
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListPets devuelve las mascotas que pasan el filtro, en el orden del catálogo.
func (s *Service) ListPets(ctx context.Context, f Filter) ([]Pet, error) {
	items, err := s.repo.ListPets(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Pet, 0, len(items))
	for _, p := range items {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) GetPet(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetPet(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, err
	}
	return p, nil
}

// Exists lo usa el wizard para validar la entidad de un formulario.
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.GetPet(ctx, id)
	return err
}

// Featured son las primeras del catálogo (home).
func (s *Service) Featured(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.ListPets(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > featuredCount {
		items = items[:featuredCount]
	}
	return items, nil
}

// Similar: misma especie, excluyendo la propia, máximo similarCount.
func (s *Service) Similar(ctx context.Context, p Pet) ([]Pet, error) {
	items, err := s.repo.ListPets(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Pet, 0, similarCount)
	for _, other := range items {
		if other.ID == p.ID || other.Species != p.Species {
			continue
		}
		out = append(out, other)
		if len(out) == similarCount {
			break
		}
	}
	return out, nil
}

func (s *Service) Testimonials(ctx context.Context) ([]Testimonial, error) {
	return s.repo.ListTestimonials(ctx)
}

// Matches aplica búsqueda por nombre/raza y los filtros exactos.
func (f Filter) Matches(p Pet) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Breed), q) {
			return false
		}
	}
	if f.Species != "" && p.Species != f.Species {
		return false
	}
	if f.Gender != "" && p.Gender != f.Gender {
		return false
	}
	if f.Size != "" && p.Size != f.Size {
		return false
	}
	switch f.Age {
	case AgeYoung:
		return p.Age <= 2
	case AgeAdult:
		return p.Age >= 3 && p.Age <= 7
	case AgeSenior:
		return p.Age >= 8
	}
	return true
}

// ParseFilter valida los valores que llegan por query string.
func ParseFilter(query, species, gender, size, age string) (Filter, error) {
	f := Filter{Query: strings.TrimSpace(query)}

	switch sp := Species(norm(species)); sp {
	case "", SpeciesDog, SpeciesCat, SpeciesOther:
		f.Species = sp
	default:
		return Filter{}, fmt.Errorf("%w: species %q", ErrInvalidInput, species)
	}
	switch g := Gender(norm(gender)); g {
	case "", GenderMale, GenderFemale:
		f.Gender = g
	default:
		return Filter{}, fmt.Errorf("%w: gender %q", ErrInvalidInput, gender)
	}
	switch sz := Size(norm(size)); sz {
	case "", SizeSmall, SizeMedium, SizeLarge:
		f.Size = sz
	default:
		return Filter{}, fmt.Errorf("%w: size %q", ErrInvalidInput, size)
	}
	switch a := AgeGroup(norm(age)); a {
	case "", AgeYoung, AgeAdult, AgeSenior:
		f.Age = a
	default:
		return Filter{}, fmt.Errorf("%w: age %q", ErrInvalidInput, age)
	}
	return f, nil
}

// "all" es el valor que la UI manda para "sin filtro".
func norm(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return ""
	}
	return s
}

// Validate chequea los invariantes de una mascota del catálogo.
func Validate(p Pet) error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: pet id required", ErrInvalidInput)
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: pet %s: name required", ErrInvalidInput, p.ID)
	case p.Age < 0:
		return fmt.Errorf("%w: pet %s: negative age", ErrInvalidInput, p.ID)
	case len(p.Images) == 0:
		return fmt.Errorf("%w: pet %s: at least one image required", ErrInvalidInput, p.ID)
	case p.AdoptionFee < 0:
		return fmt.Errorf("%w: pet %s: negative adoption fee", ErrInvalidInput, p.ID)
	}
	switch p.Species {
	case SpeciesDog, SpeciesCat, SpeciesOther:
	default:
		return fmt.Errorf("%w: pet %s: species %q", ErrInvalidInput, p.ID, p.Species)
	}
	switch p.Gender {
	case GenderMale, GenderFemale:
	default:
		return fmt.Errorf("%w: pet %s: gender %q", ErrInvalidInput, p.ID, p.Gender)
	}
	switch p.Size {
	case SizeSmall, SizeMedium, SizeLarge:
	default:
		return fmt.Errorf("%w: pet %s: size %q", ErrInvalidInput, p.ID, p.Size)
	}
	switch p.Status {
	case StatusAvailable, StatusPending, StatusAdopted:
	default:
		return fmt.Errorf("%w: pet %s: status %q", ErrInvalidInput, p.ID, p.Status)
	}
	return nil
}
