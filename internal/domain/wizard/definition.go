package wizard

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type FieldKind string

const (
	KindText        FieldKind = "text"
	KindEmail       FieldKind = "email"
	KindPassword    FieldKind = "password"
	KindTextarea    FieldKind = "textarea"
	KindDate        FieldKind = "date"
	KindSelect      FieldKind = "select"
	KindMultiSelect FieldKind = "multiselect"
	KindCheckbox    FieldKind = "checkbox"
	// KindAgreement es un checkbox que tiene que quedar en true para enviar.
	KindAgreement FieldKind = "agreement"
)

func (k FieldKind) valid() bool {
	switch k {
	case KindText, KindEmail, KindPassword, KindTextarea, KindDate,
		KindSelect, KindMultiSelect, KindCheckbox, KindAgreement:
		return true
	}
	return false
}

func (k FieldKind) boolean() bool {
	return k == KindCheckbox || k == KindAgreement
}

type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Condition muestra un campo solo cuando otro tiene cierto valor.
type Condition struct {
	Field  string `yaml:"field" json:"field"`
	Equals string `yaml:"equals" json:"equals"`
}

type Field struct {
	Name     string     `yaml:"name"`
	Label    string     `yaml:"label"`
	Kind     FieldKind  `yaml:"kind"`
	Required bool       `yaml:"required"`
	Options  []Option   `yaml:"options"`
	ShowIf   *Condition `yaml:"show_if"`
}

func (f Field) hasOption(v string) bool {
	for _, o := range f.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

type Step struct {
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
}

type Action struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Confirmation es la vista que reemplaza al formulario una vez enviado.
// RedirectTo + RedirectAfter: navegación automática (0 = inmediata).
type Confirmation struct {
	Title         string        `yaml:"title"`
	Message       string        `yaml:"message"`
	Actions       []Action      `yaml:"actions"`
	RedirectTo    string        `yaml:"redirect_to"`
	RedirectAfter time.Duration `yaml:"redirect_after"`
}

type Definition struct {
	ID           string       `yaml:"id"`
	Variant      string       `yaml:"variant"`
	Title        string       `yaml:"title"`
	Entity       string       `yaml:"entity"`
	Steps        []Step       `yaml:"steps"`
	Confirmation Confirmation `yaml:"confirmation"`

	fields map[string]fieldRef
}

type fieldRef struct {
	step  int // 1-based
	field Field
}

func (d *Definition) TotalSteps() int {
	return len(d.Steps)
}

func (d *Definition) Field(name string) (Field, int, bool) {
	ref, ok := d.fields[name]
	return ref.field, ref.step, ok
}

// StepAt devuelve el paso n (1-based).
func (d *Definition) StepAt(n int) Step {
	return d.Steps[n-1]
}

func (d *Definition) index() error {
	d.fields = map[string]fieldRef{}
	for i, st := range d.Steps {
		for _, f := range st.Fields {
			if strings.TrimSpace(f.Name) == "" {
				return fmt.Errorf("form %s step %d: field without name", d.ID, i+1)
			}
			if _, dup := d.fields[f.Name]; dup {
				return fmt.Errorf("form %s: duplicate field %q", d.ID, f.Name)
			}
			if !f.Kind.valid() {
				return fmt.Errorf("form %s field %s: unknown kind %q", d.ID, f.Name, f.Kind)
			}
			if (f.Kind == KindSelect || f.Kind == KindMultiSelect) && len(f.Options) == 0 {
				return fmt.Errorf("form %s field %s: select without options", d.ID, f.Name)
			}
			d.fields[f.Name] = fieldRef{step: i + 1, field: f}
		}
	}
	for _, ref := range d.fields {
		if c := ref.field.ShowIf; c != nil {
			if _, ok := d.fields[c.Field]; !ok {
				return fmt.Errorf("form %s field %s: show_if references unknown field %q", d.ID, ref.field.Name, c.Field)
			}
		}
	}
	return nil
}

// Registry es el set de formularios cargados. Solo lectura después de Load.
type Registry struct {
	order []string
	forms map[string]*Definition
}

//go:embed forms.yaml
var formsYAML []byte

// DefaultRegistry carga forms.yaml embebido.
func DefaultRegistry() (*Registry, error) {
	return LoadRegistry(formsYAML)
}

func LoadRegistry(raw []byte) (*Registry, error) {
	var doc struct {
		Forms []*Definition `yaml:"forms"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse forms: %w", err)
	}

	reg := &Registry{forms: map[string]*Definition{}}
	for _, d := range doc.Forms {
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("form without id")
		}
		if _, dup := reg.forms[d.ID]; dup {
			return nil, fmt.Errorf("duplicate form %q", d.ID)
		}
		if len(d.Steps) == 0 {
			return nil, fmt.Errorf("form %s: no steps", d.ID)
		}
		if err := d.index(); err != nil {
			return nil, err
		}
		reg.order = append(reg.order, d.ID)
		reg.forms[d.ID] = d
	}
	return reg, nil
}

func (r *Registry) Get(id string) (*Definition, bool) {
	d, ok := r.forms[id]
	return d, ok
}

func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}
