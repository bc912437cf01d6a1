package navigator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"care-portals/internal/domain/catalog"
	"care-portals/internal/domain/session"
	"care-portals/internal/domain/wizard"
	"care-portals/internal/ports/backend"
)

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrFormNotHosted  = errors.New("form not hosted by variant")
)

const PageNotFound = "pet-not-found"

type Sessions interface {
	Current(ctx context.Context, key string) (session.Session, bool, error)
}

type Forms interface {
	Open(ctx context.Context, key, formID, entityID string) (wizard.Draft, error)
	DiscardOthers(ctx context.Context, key, keepFormID string) error
}

type Catalog interface {
	ListPets(ctx context.Context, f catalog.Filter) ([]catalog.Pet, error)
	GetPet(ctx context.Context, id string) (catalog.Pet, error)
	Featured(ctx context.Context) ([]catalog.Pet, error)
	Similar(ctx context.Context, p catalog.Pet) ([]catalog.Pet, error)
	Testimonials(ctx context.Context) ([]catalog.Testimonial, error)
}

type Deps struct {
	Sessions Sessions
	Forms    Forms
	Catalog  Catalog
	Backend  backend.Backend
}

type Service struct {
	variants map[string]*Variant
	deps     Deps
}

func NewService(deps Deps, variants ...*Variant) *Service {
	if len(variants) == 0 {
		variants = DefaultVariants()
	}
	s := &Service{variants: make(map[string]*Variant, len(variants)), deps: deps}
	for _, v := range variants {
		s.variants[v.Name] = v
	}
	return s
}

func (s *Service) Variant(name string) (*Variant, error) {
	v, ok := s.variants[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
	return v, nil
}

// Request es una navegación: página destino, entidad opcional y query extra (filtros).
type Request struct {
	PageID   string
	EntityID string
	Params   map[string]string
}

func (r Request) param(name string) string {
	if r.Params == nil {
		return ""
	}
	return strings.TrimSpace(r.Params[name])
}

// Navigate resuelve la página a mostrar para el visitante:
// - página desconocida => default de la variante
// - guard rechaza => página de redirect (login o home del rol)
// - entidad inexistente => vista pet-not-found
// Al navegar se descartan los drafts de otros formularios.
func (s *Service) Navigate(ctx context.Context, variant, key string, req Request) (View, error) {
	v, err := s.Variant(variant)
	if err != nil {
		return View{}, err
	}

	current, err := s.current(ctx, key)
	if err != nil {
		return View{}, err
	}

	page, found := v.Page(strings.TrimSpace(req.PageID))
	if !found {
		page, _ = v.Page(v.Default)
	}

	view := View{Variant: v.Name}
	if d := session.RequireRole(current, v, page.Roles...); !d.Allow {
		view.Requested = page.ID
		view.Redirected = true
		view.Reason = d.Reason
		page, _ = v.Page(d.Redirect)
		// el redirect no lleva la entidad de la página original
		req.EntityID = ""
	}
	view.Page = page.ID
	view.Title = page.Title
	view.Nav = navFor(v, current)
	if current != nil {
		view.Session = toSessionView(*current)
	}

	if err := s.deps.Forms.DiscardOthers(ctx, key, page.FormID); err != nil {
		return View{}, err
	}

	if page.Entity == EntityPet {
		pet, err := s.deps.Catalog.GetPet(ctx, req.EntityID)
		if errors.Is(err, catalog.ErrNotFound) {
			return petNotFound(view, page), nil
		}
		if err != nil {
			return View{}, err
		}
		req.EntityID = pet.ID
	}

	if page.FormID != "" {
		d, err := s.deps.Forms.Open(ctx, key, page.FormID, req.EntityID)
		if errors.Is(err, wizard.ErrEntityNotFound) {
			return petNotFound(view, page), nil
		}
		if err != nil {
			return View{}, err
		}
		fv := wizard.ToView(d)
		view.Form = &fv
	}

	data, err := s.pageData(ctx, v, page, current, req)
	if err != nil {
		return View{}, err
	}
	view.Data = data
	return view, nil
}

// AuthorizeForm aplica el guard de la página que aloja el formulario.
// La variante sale del contexto (VariantCtx). Un formulario no alojado por la variante se rechaza.
func (s *Service) AuthorizeForm(ctx context.Context, key, formID string) error {
	v, ok := VariantFromContext(ctx)
	if !ok {
		return ErrUnknownVariant
	}
	page, ok := v.PageForForm(formID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFormNotHosted, formID)
	}

	current, err := s.current(ctx, key)
	if err != nil {
		return err
	}
	if d := session.RequireRole(current, v, page.Roles...); !d.Allow {
		return &DeniedError{Page: page.ID, Decision: d}
	}
	return nil
}

func (s *Service) current(ctx context.Context, key string) (*session.Session, error) {
	sess, ok, err := s.deps.Sessions.Current(ctx, key)
	if err != nil || !ok {
		return nil, err
	}
	return &sess, nil
}

// DeniedError: el guard rechazó la página.
type DeniedError struct {
	Page     string
	Decision session.Decision
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("access to %s denied (%s), redirect to %s", e.Page, e.Decision.Reason, e.Decision.Redirect)
}

func petNotFound(view View, page Page) View {
	msg := "The pet you're looking for doesn't exist."
	if page.FormID != "" {
		msg = "The pet you're applying for doesn't exist."
	}
	view.Requested = page.ID
	view.Page = PageNotFound
	view.Title = "Pet Not Found"
	view.NotFound = &NotFoundView{
		Title:   "Pet Not Found",
		Message: msg,
		Actions: []Action{{Target: "browse", Label: "Browse Other Pets"}},
	}
	return view
}

func navFor(v *Variant, s *session.Session) []NavItem {
	out := []NavItem{}
	for _, p := range v.pages {
		if !p.Nav {
			continue
		}
		if d := session.RequireRole(s, v, p.Roles...); !d.Allow {
			continue
		}
		out = append(out, NavItem{ID: p.ID, Label: p.Title})
	}
	return out
}
