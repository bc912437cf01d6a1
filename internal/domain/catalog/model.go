package catalog

import "time"

// Species define las especies del catálogo.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Gender
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Size
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Status de adopción.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// AgeGroup agrupa edades para los filtros de búsqueda.
type AgeGroup string

const (
	AgeYoung  AgeGroup = "young"  // 0-2
	AgeAdult  AgeGroup = "adult"  // 3-7
	AgeSenior AgeGroup = "senior" // 8+
)

// Pet es inmutable: se carga una vez y nadie la modifica.
type Pet struct {
	ID      string
	Name    string
	Species Species
	Breed   string
	Age     int
	Gender  Gender
	Size    Size

	Location    string
	Description string
	Personality []string

	Vaccinated bool
	Spayed     bool

	Images      []string
	AdoptionFee float64
	Status      Status
}

type Testimonial struct {
	ID       string
	UserName string
	PetName  string
	Story    string
	Image    string
	Date     time.Time
}

// Filter replica los filtros de la pantalla de búsqueda. Campos vacíos = sin filtro.
type Filter struct {
	Query   string
	Species Species
	Gender  Gender
	Size    Size
	Age     AgeGroup
}
