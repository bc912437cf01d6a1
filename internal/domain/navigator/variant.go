package navigator

import "care-portals/internal/domain/session"

const (
	VariantPetAdoption  = "pet-adoption"
	VariantMentalHealth = "mental-health"

	EntityPet = "pet"
)

// Page describe una página del portal. Roles vacío = pública.
type Page struct {
	ID     string
	Title  string
	Roles  []session.Role
	Entity string // página que necesita ?id= (p.ej. "pet")
	FormID string // formulario que aloja la página
	Nav    bool   // aparece en la barra de navegación
}

// Variant es el set de capacidades de un portal: páginas, logins y homes por rol.
// Implementa session.Targets.
type Variant struct {
	Name    string
	Title   string
	Default string

	pages []Page
	byID  map[string]Page
	login map[session.Role]string
	home  map[session.Role]string
}

func newVariant(name, title, def string, login, home map[session.Role]string, pages ...Page) *Variant {
	v := &Variant{
		Name:    name,
		Title:   title,
		Default: def,
		pages:   pages,
		byID:    make(map[string]Page, len(pages)),
		login:   login,
		home:    home,
	}
	for _, p := range pages {
		v.byID[p.ID] = p
	}
	return v
}

func (v *Variant) Page(id string) (Page, bool) {
	p, ok := v.byID[id]
	return p, ok
}

func (v *Variant) LoginPage(r session.Role) string {
	if p, ok := v.login[r]; ok {
		return p
	}
	return v.login[session.RoleStudent]
}

func (v *Variant) HomePage(r session.Role) string {
	if p, ok := v.home[r]; ok {
		return p
	}
	return v.Default
}

// PageForForm devuelve la página que aloja el formulario.
func (v *Variant) PageForForm(formID string) (Page, bool) {
	for _, p := range v.pages {
		if p.FormID == formID {
			return p, true
		}
	}
	return Page{}, false
}

var (
	student   = []session.Role{session.RoleStudent}
	admin     = []session.Role{session.RoleAdmin}
	withGuest = []session.Role{session.RoleStudent, session.RoleAnonymous}
)

// PetAdoption: todo es público salvo el dashboard del adoptante.
func PetAdoption() *Variant {
	return newVariant(VariantPetAdoption, "PawsomeMatch", "home",
		map[session.Role]string{session.RoleStudent: "login"},
		map[session.Role]string{session.RoleStudent: "dashboard"},
		Page{ID: "home", Title: "Home", Nav: true},
		Page{ID: "browse", Title: "Browse Pets", Nav: true},
		Page{ID: "pet-profile", Title: "Pet Profile", Entity: EntityPet},
		Page{ID: "adoption-form", Title: "Adoption Application", Entity: EntityPet, FormID: "adoption"},
		Page{ID: "about", Title: "About Us", Nav: true},
		Page{ID: "dashboard", Title: "Dashboard", Roles: student, Nav: true},
		Page{ID: "login", Title: "Login"},
	)
}

// MentalHealth: estudiantes y admins con logins separados; el chatbot admite acceso anónimo.
func MentalHealth() *Variant {
	return newVariant(VariantMentalHealth, "MindCare", "dashboard",
		map[session.Role]string{
			session.RoleStudent:   "login",
			session.RoleAnonymous: "login",
			session.RoleAdmin:     "admin-login",
		},
		map[session.Role]string{
			session.RoleStudent:   "dashboard",
			session.RoleAnonymous: "chatbot",
			session.RoleAdmin:     "admin-dashboard",
		},
		Page{ID: "login", Title: "Student Login"},
		Page{ID: "admin-login", Title: "Admin Login"},
		Page{ID: "signup", Title: "Create Account", FormID: "signup"},

		Page{ID: "dashboard", Title: "Dashboard", Roles: student, Nav: true},
		Page{ID: "chatbot", Title: "Chat Support", Roles: withGuest, Nav: true},
		Page{ID: "booking", Title: "Book Session", Roles: student, FormID: "booking", Nav: true},
		Page{ID: "mood-tracker", Title: "Mood Tracker", Roles: student, FormID: "mood-entry", Nav: true},
		Page{ID: "forum", Title: "Peer Forum", Roles: student, Nav: true},
		Page{ID: "resources", Title: "Resources", Roles: student, Nav: true},
		Page{ID: "profile", Title: "Profile", Roles: student, Nav: true},

		Page{ID: "admin-dashboard", Title: "Dashboard", Roles: admin, Nav: true},
		Page{ID: "admin-bookings", Title: "Bookings", Roles: admin, Nav: true},
		Page{ID: "admin-moderation", Title: "Forum Moderation", Roles: admin, Nav: true},
		Page{ID: "admin-analytics", Title: "Analytics", Roles: admin, Nav: true},
	)
}

func DefaultVariants() []*Variant {
	return []*Variant{PetAdoption(), MentalHealth()}
}
