package catalog

import "context"

type Repository interface {
	ListPets(ctx context.Context) ([]Pet, error)
	GetPet(ctx context.Context, id string) (Pet, error)
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
}
