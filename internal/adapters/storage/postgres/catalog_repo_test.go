package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"care-portals/internal/domain/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var petCols = []string{
	"id", "name", "species", "breed", "age",
	"gender", "size", "location", "description",
	"personality", "vaccinated", "spayed",
	"images", "adoption_fee", "status",
}

func TestCatalogRepo_ListPets(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(petCols).
		AddRow("1", "Buddy", "dog", "Golden Retriever", 3, "male", "large", "San Francisco, CA", "friendly",
			[]byte(`["friendly","playful"]`), true, true, []byte(`["https://img/1.jpg"]`), 250.0, "available").
		AddRow("2", "Luna", "cat", "Siamese", 2, "female", "medium", "Oakland, CA", "social",
			[]byte(`[]`), true, false, []byte(`["https://img/2.jpg"]`), 150.0, "pending")

	mock.ExpectQuery(regexp.QuoteMeta("FROM pets")).WillReturnRows(rows)

	repo := NewCatalogRepo(db)
	items, err := repo.ListPets(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, catalog.SpeciesDog, items[0].Species)
	assert.Equal(t, []string{"friendly", "playful"}, items[0].Personality)
	assert.Equal(t, []string{"https://img/1.jpg"}, items[0].Images)
	assert.Equal(t, catalog.StatusPending, items[1].Status)
	assert.Equal(t, 150.0, items[1].AdoptionFee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepo_GetPet_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("999").
		WillReturnError(sql.ErrNoRows)

	repo := NewCatalogRepo(db)
	_, err = repo.GetPet(context.Background(), "999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	// id vacío no llega a la base
	_, err = repo.GetPet(context.Background(), " ")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepo_ListTestimonials(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM testimonials")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "pet_name", "story", "image", "date"}).
			AddRow("1", "Sarah Johnson", "Charlie", "best decision", "https://img/t.jpg", d))

	items, err := NewCatalogRepo(db).ListTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Charlie", items[0].PetName)
	assert.True(t, items[0].Date.Equal(d))
}

func TestCatalogRepo_Seed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	pets, testimonials, err := catalog.Fixtures()
	require.NoError(t, err)

	mock.ExpectBegin()
	for range pets {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pets")).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range testimonials {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO testimonials")).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, NewCatalogRepo(db).Seed(context.Background(), pets, testimonials))
	assert.NoError(t, mock.ExpectationsWereMet())
}
