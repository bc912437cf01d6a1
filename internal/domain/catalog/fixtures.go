package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtureFile struct {
	Pets []struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		Species     string   `yaml:"species"`
		Breed       string   `yaml:"breed"`
		Age         int      `yaml:"age"`
		Gender      string   `yaml:"gender"`
		Size        string   `yaml:"size"`
		Location    string   `yaml:"location"`
		Description string   `yaml:"description"`
		Personality []string `yaml:"personality"`
		Vaccinated  bool     `yaml:"vaccinated"`
		Spayed      bool     `yaml:"spayed"`
		Images      []string `yaml:"images"`
		AdoptionFee float64  `yaml:"adoption_fee"`
		Status      string   `yaml:"status"`
	} `yaml:"pets"`

	Testimonials []struct {
		ID       string `yaml:"id"`
		UserName string `yaml:"user_name"`
		PetName  string `yaml:"pet_name"`
		Story    string `yaml:"story"`
		Image    string `yaml:"image"`
		Date     string `yaml:"date"` // YYYY-MM-DD
	} `yaml:"testimonials"`
}

// Fixtures devuelve el catálogo estático embebido, ya validado.
func Fixtures() ([]Pet, []Testimonial, error) {
	return ParseFixtures(fixturesYAML)
}

// ParseFixtures parsea un catálogo en YAML. Falla si alguna mascota rompe un invariante
// o si hay ids repetidos.
func ParseFixtures(raw []byte) ([]Pet, []Testimonial, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("parse fixtures: %w", err)
	}

	seen := map[string]struct{}{}
	pets := make([]Pet, 0, len(f.Pets))
	for _, fp := range f.Pets {
		p := Pet{
			ID:          fp.ID,
			Name:        fp.Name,
			Species:     Species(fp.Species),
			Breed:       fp.Breed,
			Age:         fp.Age,
			Gender:      Gender(fp.Gender),
			Size:        Size(fp.Size),
			Location:    fp.Location,
			Description: fp.Description,
			Personality: fp.Personality,
			Vaccinated:  fp.Vaccinated,
			Spayed:      fp.Spayed,
			Images:      fp.Images,
			AdoptionFee: fp.AdoptionFee,
			Status:      Status(fp.Status),
		}
		if err := Validate(p); err != nil {
			return nil, nil, err
		}
		if _, dup := seen[p.ID]; dup {
			return nil, nil, fmt.Errorf("%w: duplicated pet id %s", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
		pets = append(pets, p)
	}

	testimonials := make([]Testimonial, 0, len(f.Testimonials))
	for _, ft := range f.Testimonials {
		d, err := time.Parse("2006-01-02", ft.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("testimonial %s: date must be YYYY-MM-DD: %w", ft.ID, err)
		}
		testimonials = append(testimonials, Testimonial{
			ID:       ft.ID,
			UserName: ft.UserName,
			PetName:  ft.PetName,
			Story:    ft.Story,
			Image:    ft.Image,
			Date:     d,
		})
	}

	return pets, testimonials, nil
}
