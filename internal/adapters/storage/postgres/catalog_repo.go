package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"care-portals/internal/domain/catalog"
)

// CatalogRepo lee el catálogo desde Postgres. Es solo lectura: el catálogo
// se siembra con Seed y la app nunca lo modifica.
type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const petColumns = `
			id, name, species, breed, age,
			gender, size, location, description,
			personality, vaccinated, spayed,
			images, adoption_fee, status`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CatalogRepo) ListPets(ctx context.Context) ([]catalog.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+petColumns+`
		FROM pets
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) GetPet(ctx context.Context, id string) (catalog.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Pet{}, catalog.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Pet{}, catalog.ErrNotFound
		}
		return catalog.Pet{}, err
	}
	return p, nil
}

func (r *CatalogRepo) ListTestimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_name, pet_name, story, image, date
		FROM testimonials
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Testimonial, 0)
	for rows.Next() {
		var t catalog.Testimonial
		if err := rows.Scan(&t.ID, &t.UserName, &t.PetName, &t.Story, &t.Image, &t.Date); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Seed carga el catálogo (idempotente por id). Se usa al arrancar con DB_DSN
// para que la base tenga los mismos fixtures que el modo in-memory.
func (r *CatalogRepo) Seed(ctx context.Context, pets []catalog.Pet, testimonials []catalog.Testimonial) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, p := range pets {
		personality, _ := json.Marshal(p.Personality)
		images, _ := json.Marshal(p.Images)

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pets (
				id, position, name, species, breed, age,
				gender, size, location, description,
				personality, vaccinated, spayed,
				images, adoption_fee, status
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
			ON CONFLICT (id) DO NOTHING
		`,
			p.ID, i, p.Name, string(p.Species), p.Breed, p.Age,
			string(p.Gender), string(p.Size), p.Location, p.Description,
			personality, p.Vaccinated, p.Spayed,
			images, p.AdoptionFee, string(p.Status),
		); err != nil {
			return fmt.Errorf("seed pet %s: %w", p.ID, err)
		}
	}

	for _, t := range testimonials {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO testimonials (id, user_name, pet_name, story, image, date)
			VALUES ($1,$2,$3,$4,$5,$6)
			ON CONFLICT (id) DO NOTHING
		`, t.ID, t.UserName, t.PetName, t.Story, t.Image, t.Date); err != nil {
			return fmt.Errorf("seed testimonial %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

func scanPet(s rowScanner) (catalog.Pet, error) {
	var p catalog.Pet
	var species, gender, size, status string
	var personality, images []byte

	if err := s.Scan(
		&p.ID,
		&p.Name,
		&species,
		&p.Breed,
		&p.Age,
		&gender,
		&size,
		&p.Location,
		&p.Description,
		&personality,
		&p.Vaccinated,
		&p.Spayed,
		&images,
		&p.AdoptionFee,
		&status,
	); err != nil {
		return catalog.Pet{}, err
	}

	p.Species = catalog.Species(species)
	p.Gender = catalog.Gender(gender)
	p.Size = catalog.Size(size)
	p.Status = catalog.Status(status)

	// personality/images son jsonb (arrays de strings)
	if len(personality) > 0 {
		if err := json.Unmarshal(personality, &p.Personality); err != nil {
			return catalog.Pet{}, fmt.Errorf("pet %s personality: %w", p.ID, err)
		}
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return catalog.Pet{}, fmt.Errorf("pet %s images: %w", p.ID, err)
		}
	}
	return p, nil
}
