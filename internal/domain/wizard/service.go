package wizard

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"care-portals/internal/platform/logger"

	"github.com/google/uuid"
)

// Binding conecta un formulario con el resto del sistema.
type Binding struct {
	// EntityExists valida el entity id al abrir. nil = sin chequeo.
	EntityExists func(ctx context.Context, id string) (bool, error)

	// OnSubmit recibe el draft ya validado.
	OnSubmit func(ctx context.Context, key string, d Draft) error

	// Async: OnSubmit corre en background y sus errores solo se loguean.
	// Sync: el error vuelve al caller y el draft queda sin enviar.
	Async bool
}

type Service struct {
	reg      *Registry
	repo     Repository
	log      logger.Logger
	bindings map[string]Binding

	now   func() time.Time
	newID func() string

	inflight sync.WaitGroup

	// locks serializa load/modify/put por visitante y formulario.
	locks [64]sync.Mutex
}

func NewService(reg *Registry, repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		reg:      reg,
		repo:     repo,
		log:      log.With(map[string]any{"module": "wizard"}),
		bindings: map[string]Binding{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Bind se llama al armar el router, antes de servir requests.
func (s *Service) Bind(formID string, b Binding) {
	s.bindings[formID] = b
}

func (s *Service) Definition(formID string) (*Definition, error) {
	def, ok := s.reg.Get(formID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownForm, formID)
	}
	return def, nil
}

// Open abre el formulario o retoma el draft en curso si es de la misma entidad.
// Un draft ya enviado se reemplaza por uno nuevo.
func (s *Service) Open(ctx context.Context, key, formID, entityID string) (Draft, error) {
	def, err := s.Definition(formID)
	if err != nil {
		return Draft{}, err
	}
	entityID = strings.TrimSpace(entityID)

	if def.Entity != "" {
		if entityID == "" {
			return Draft{}, fmt.Errorf("%w: %s id required", ErrEntityNotFound, def.Entity)
		}
		if check := s.bindings[formID].EntityExists; check != nil {
			ok, err := check(ctx, entityID)
			if err != nil {
				return Draft{}, err
			}
			if !ok {
				return Draft{}, fmt.Errorf("%w: %s %q", ErrEntityNotFound, def.Entity, entityID)
			}
		}
	} else {
		entityID = ""
	}

	unlock := s.lock(key, formID)
	defer unlock()

	existing, err := s.load(ctx, key, def)
	switch {
	case err == nil && !existing.Submitted && existing.EntityID == entityID:
		return existing, nil
	case err != nil && !errors.Is(err, ErrDraftNotFound):
		return Draft{}, err
	}

	d := NewDraft(def, s.newID(), entityID)
	if err := s.repo.Put(ctx, key, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, key, formID string) (Draft, error) {
	def, err := s.Definition(formID)
	if err != nil {
		return Draft{}, err
	}
	return s.load(ctx, key, def)
}

// Edit aplica todos los valores o ninguno. Se aplican en orden de nombre
// para que el error reportado sea determinístico.
func (s *Service) Edit(ctx context.Context, key, formID string, values map[string]string) (Draft, error) {
	return s.update(ctx, key, formID, func(d *Draft) error {
		for _, name := range slices.Sorted(maps.Keys(values)) {
			if err := d.Edit(name, values[name]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) Next(ctx context.Context, key, formID string) (Draft, error) {
	return s.update(ctx, key, formID, func(d *Draft) error {
		d.Next()
		return nil
	})
}

func (s *Service) Prev(ctx context.Context, key, formID string) (Draft, error) {
	return s.update(ctx, key, formID, func(d *Draft) error {
		d.Prev()
		return nil
	})
}

// Submit valida del lado servidor y dispara el hook del formulario.
// Dos submits concurrentes del mismo draft disparan el hook una sola vez.
func (s *Service) Submit(ctx context.Context, key, formID string) (Draft, error) {
	def, err := s.Definition(formID)
	if err != nil {
		return Draft{}, err
	}
	unlock := s.lock(key, formID)
	defer unlock()

	d, err := s.load(ctx, key, def)
	if err != nil {
		return Draft{}, err
	}
	if err := d.Validate(); err != nil {
		return Draft{}, err
	}

	b := s.bindings[formID]
	payload := d.Clone()
	if b.OnSubmit != nil && !b.Async {
		if err := b.OnSubmit(ctx, key, payload); err != nil {
			return Draft{}, err
		}
	}

	if err := d.Submit(s.now()); err != nil {
		return Draft{}, err
	}
	if err := s.repo.Put(ctx, key, d); err != nil {
		return Draft{}, err
	}

	if b.OnSubmit != nil && b.Async {
		payload.Submitted, payload.SubmittedAt = d.Submitted, d.SubmittedAt
		s.dispatch(ctx, key, payload, b.OnSubmit)
	}
	return d, nil
}

// dispatch corre el hook sin esperar y sin atarse a la cancelación del request.
// El resultado no vuelve al visitante: si falla, solo queda en el log.
func (s *Service) dispatch(ctx context.Context, key string, d Draft, hook func(context.Context, string, Draft) error) {
	bg := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		fields := map[string]any{"form": d.FormID, "draft_id": d.ID}
		if err := hook(bg, key, d); err != nil {
			fields["error"] = err
			s.log.Warn("submit hook failed", fields)
			return
		}
		s.log.Info("submit hook done", fields)
	}()
}

func (s *Service) lock(key, formID string) func() {
	h := fnv.New32a()
	h.Write([]byte(key + "|" + formID))
	mu := &s.locks[h.Sum32()%uint32(len(s.locks))]
	mu.Lock()
	return mu.Unlock
}

// Wait bloquea hasta que terminen los hooks en background (shutdown y tests).
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) Discard(ctx context.Context, key, formID string) error {
	return s.repo.Delete(ctx, key, formID)
}

// DiscardOthers se llama al navegar: solo sobrevive el draft del formulario destino.
func (s *Service) DiscardOthers(ctx context.Context, key, keepFormID string) error {
	return s.repo.DeleteExcept(ctx, key, keepFormID)
}

func (s *Service) load(ctx context.Context, key string, def *Definition) (Draft, error) {
	d, err := s.repo.Get(ctx, key, def.ID)
	if err != nil {
		return Draft{}, err
	}
	d = d.Clone()
	d.def = def
	return d, nil
}

func (s *Service) update(ctx context.Context, key, formID string, fn func(*Draft) error) (Draft, error) {
	def, err := s.Definition(formID)
	if err != nil {
		return Draft{}, err
	}
	unlock := s.lock(key, formID)
	defer unlock()

	d, err := s.load(ctx, key, def)
	if err != nil {
		return Draft{}, err
	}
	if err := fn(&d); err != nil {
		return Draft{}, err
	}
	if err := s.repo.Put(ctx, key, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}
