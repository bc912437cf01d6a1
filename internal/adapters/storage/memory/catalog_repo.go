package memory

import (
	"context"
	"sync"

	"care-portals/internal/domain/catalog"
)

// catalogRepo guarda el catálogo en memoria. Se conserva el orden de carga
// porque la UI muestra "featured" y "similar" según ese orden.
type catalogRepo struct {
	mu           sync.RWMutex
	order        []string
	byID         map[string]catalog.Pet
	testimonials []catalog.Testimonial
}

func NewCatalogRepo(pets []catalog.Pet, testimonials []catalog.Testimonial) catalog.Repository {
	r := &catalogRepo{
		order:        make([]string, 0, len(pets)),
		byID:         make(map[string]catalog.Pet, len(pets)),
		testimonials: append([]catalog.Testimonial(nil), testimonials...),
	}
	for _, p := range pets {
		if _, exists := r.byID[p.ID]; exists {
			continue
		}
		r.order = append(r.order, p.ID)
		r.byID[p.ID] = p
	}
	return r
}

func (r *catalogRepo) ListPets(ctx context.Context) ([]catalog.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *catalogRepo) GetPet(ctx context.Context, id string) (catalog.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return catalog.Pet{}, catalog.ErrNotFound
	}
	return p, nil
}

func (r *catalogRepo) ListTestimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]catalog.Testimonial(nil), r.testimonials...), nil
}
