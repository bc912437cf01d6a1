package wizard

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

var (
	ErrUnknownForm          = errors.New("unknown form")
	ErrUnknownField         = errors.New("unknown field")
	ErrInvalidOption        = errors.New("invalid option")
	ErrInvalidValue         = errors.New("invalid value")
	ErrAlreadySubmitted     = errors.New("form already submitted")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrEntityNotFound       = errors.New("entity not found")
	ErrDraftNotFound        = errors.New("draft not found")
	ErrNotFinalStep         = errors.New("form not at final step")
)

// ValidationError lista lo que falta para poder enviar.
type ValidationError struct {
	Missing    []string
	Unaccepted []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unaccepted) > 0 {
		parts = append(parts, "agreements not accepted: "+strings.Join(e.Unaccepted, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrMissingRequiredField }

// Draft es el estado de un formulario abierto por un visitante.
// Step es 1-based y siempre está en [1, TotalSteps].
type Draft struct {
	ID          string            `json:"id"`
	FormID      string            `json:"form_id"`
	EntityID    string            `json:"entity_id,omitempty"`
	Step        int               `json:"step"`
	Values      map[string]string `json:"values"`
	Submitted   bool              `json:"submitted"`
	SubmittedAt *time.Time        `json:"submitted_at,omitempty"`

	def *Definition
}

func NewDraft(def *Definition, id, entityID string) Draft {
	return Draft{
		ID:       id,
		FormID:   def.ID,
		EntityID: entityID,
		Step:     1,
		Values:   map[string]string{},
		def:      def,
	}
}

// Clone copia el mapa de valores; los repos guardan clones.
func (d Draft) Clone() Draft {
	out := d
	out.Values = maps.Clone(d.Values)
	if out.Values == nil {
		out.Values = map[string]string{}
	}
	if d.SubmittedAt != nil {
		t := *d.SubmittedAt
		out.SubmittedAt = &t
	}
	return out
}

// Edit setea un campo. No hay validación por paso: se puede editar cualquier campo.
func (d *Draft) Edit(name, value string) error {
	if d.Submitted {
		return ErrAlreadySubmitted
	}
	f, _, ok := d.def.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	v, err := normalize(f, value)
	if err != nil {
		return err
	}
	d.Values[name] = v
	return nil
}

func normalize(f Field, value string) (string, error) {
	switch {
	case f.Kind.boolean():
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "on", "1", "yes":
			return "true", nil
		case "false", "off", "0", "no", "":
			return "false", nil
		}
		return "", fmt.Errorf("%w: %s expects a boolean", ErrInvalidValue, f.Name)

	case f.Kind == KindSelect:
		if value == "" || f.hasOption(value) {
			return value, nil
		}
		return "", fmt.Errorf("%w: %s=%q", ErrInvalidOption, f.Name, value)

	case f.Kind == KindMultiSelect:
		items := splitList(value)
		for _, it := range items {
			if !f.hasOption(it) {
				return "", fmt.Errorf("%w: %s=%q", ErrInvalidOption, f.Name, it)
			}
		}
		return strings.Join(items, ","), nil

	case f.Kind == KindDate:
		v := strings.TrimSpace(value)
		if v == "" {
			return "", nil
		}
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return "", fmt.Errorf("%w: %s expects YYYY-MM-DD", ErrInvalidValue, f.Name)
		}
		return v, nil
	}
	return value, nil
}

// splitList separa "a, b,b" en [a b] sin repetidos, respetando el orden.
func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" || slices.Contains(out, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Next avanza un paso; en el último no hace nada. No exige completar el paso actual.
func (d *Draft) Next() {
	if d.Submitted || d.Step >= d.def.TotalSteps() {
		return
	}
	d.Step++
}

// Prev retrocede un paso; en el primero no hace nada.
func (d *Draft) Prev() {
	if d.Submitted || d.Step <= 1 {
		return
	}
	d.Step--
}

// Visible indica si el campo se muestra con los valores actuales.
func (d Draft) Visible(f Field) bool {
	if f.ShowIf == nil {
		return true
	}
	return d.Values[f.ShowIf.Field] == f.ShowIf.Equals
}

// Missing devuelve requeridos vacíos y agreements sin aceptar, en orden de formulario.
// Los campos ocultos no cuentan.
func (d Draft) Missing() (missing, unaccepted []string) {
	for _, st := range d.def.Steps {
		for _, f := range st.Fields {
			if !d.Visible(f) {
				continue
			}
			switch {
			case f.Kind == KindAgreement:
				if d.Values[f.Name] != "true" {
					unaccepted = append(unaccepted, f.Name)
				}
			case f.Required:
				if strings.TrimSpace(d.Values[f.Name]) == "" {
					missing = append(missing, f.Name)
				}
			}
		}
	}
	return missing, unaccepted
}

// CanSubmit es el affordance de la UI (botón habilitado, solo en el último paso).
func (d Draft) CanSubmit() bool {
	if d.Submitted || !d.atFinalStep() {
		return false
	}
	missing, unaccepted := d.Missing()
	return len(missing) == 0 && len(unaccepted) == 0
}

// Validate repite el chequeo del affordance del lado servidor.
func (d Draft) Validate() error {
	if d.Submitted {
		return ErrAlreadySubmitted
	}
	if !d.atFinalStep() {
		return fmt.Errorf("%w: step %d of %d", ErrNotFinalStep, d.Step, d.def.TotalSteps())
	}
	missing, unaccepted := d.Missing()
	if len(missing) > 0 || len(unaccepted) > 0 {
		return &ValidationError{Missing: missing, Unaccepted: unaccepted}
	}
	return nil
}

func (d Draft) atFinalStep() bool { return d.Step == d.def.TotalSteps() }

// Submit congela el draft. Después no acepta más ediciones y los
// passwords no quedan guardados.
func (d *Draft) Submit(now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for _, st := range d.def.Steps {
		for _, f := range st.Fields {
			if f.Kind == KindPassword {
				delete(d.Values, f.Name)
			}
		}
	}
	d.Submitted = true
	t := now.UTC()
	d.SubmittedAt = &t
	return nil
}
