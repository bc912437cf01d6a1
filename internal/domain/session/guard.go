package session

import "slices"

// Targets resuelve a dónde mandar al visitante cuando el guard lo rechaza.
// Lo implementa la variante del portal.
type Targets interface {
	LoginPage(role Role) string
	HomePage(role Role) string
}

type Decision struct {
	Allow    bool
	Redirect string
	Reason   string
}

const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
)

// RequireRole decide el acceso a una página. Es puro: no lee ni escribe el store.
// - sin sesión => login del primer rol requerido
// - rol no permitido => home del rol de la sesión
// - roles vacío => página pública
func RequireRole(s *Session, t Targets, roles ...Role) Decision {
	if len(roles) == 0 {
		return Decision{Allow: true}
	}
	if s == nil {
		return Decision{Redirect: t.LoginPage(roles[0]), Reason: ReasonUnauthenticated}
	}
	if slices.Contains(roles, s.Role) {
		return Decision{Allow: true}
	}
	return Decision{Redirect: t.HomePage(s.Role), Reason: ReasonForbidden}
}
