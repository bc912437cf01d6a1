package wizard

// DraftView es lo que ve la UI de un formulario: el paso actual con sus
// campos visibles, el affordance de envío y, si ya se envió, la confirmación.
type DraftView struct {
	DraftID    string            `json:"draft_id"`
	FormID     string            `json:"form_id"`
	Title      string            `json:"title"`
	EntityID   string            `json:"entity_id,omitempty"`
	Step       int               `json:"step"`
	TotalSteps int               `json:"total_steps"`
	StepTitle  string            `json:"step_title"`
	Steps      []string          `json:"steps"`
	Fields     []FieldView       `json:"fields"`
	Values     map[string]string `json:"values"`
	CanPrev    bool              `json:"can_prev"`
	CanNext    bool              `json:"can_next"`
	CanSubmit  bool              `json:"can_submit"`
	Missing    []string          `json:"missing"`
	Unaccepted []string          `json:"unaccepted"`
	Submitted  bool              `json:"submitted"`

	Confirmation *ConfirmationView `json:"confirmation,omitempty"`
}

type FieldView struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Options  []Option  `json:"options,omitempty"`
	Value    string    `json:"value"`
}

type ConfirmationView struct {
	Title           string   `json:"title"`
	Message         string   `json:"message"`
	Actions         []Action `json:"actions"`
	RedirectTo      string   `json:"redirect_to,omitempty"`
	RedirectAfterMS int64    `json:"redirect_after_ms"`
}

// ToView arma la vista del draft. Los campos con password no devuelven su valor.
func ToView(d Draft) DraftView {
	def := d.def
	step := def.StepAt(d.Step)

	v := DraftView{
		DraftID:    d.ID,
		FormID:     d.FormID,
		Title:      def.Title,
		EntityID:   d.EntityID,
		Step:       d.Step,
		TotalSteps: def.TotalSteps(),
		StepTitle:  step.Title,
		Steps:      make([]string, 0, def.TotalSteps()),
		Fields:     make([]FieldView, 0, len(step.Fields)),
		Values:     make(map[string]string, len(d.Values)),
		CanPrev:    !d.Submitted && d.Step > 1,
		CanNext:    !d.Submitted && d.Step < def.TotalSteps(),
		CanSubmit:  d.CanSubmit(),
		Submitted:  d.Submitted,
	}
	for _, st := range def.Steps {
		v.Steps = append(v.Steps, st.Title)
	}
	for name, val := range d.Values {
		if f, _, ok := def.Field(name); ok && f.Kind == KindPassword {
			continue
		}
		v.Values[name] = val
	}
	for _, f := range step.Fields {
		if !d.Visible(f) {
			continue
		}
		fv := FieldView{
			Name:     f.Name,
			Label:    f.Label,
			Kind:     f.Kind,
			Required: f.Required || f.Kind == KindAgreement,
			Options:  f.Options,
			Value:    d.Values[f.Name],
		}
		if f.Kind == KindPassword {
			fv.Value = ""
		}
		v.Fields = append(v.Fields, fv)
	}

	if !d.Submitted {
		v.Missing, v.Unaccepted = d.Missing()
	}
	if v.Missing == nil {
		v.Missing = []string{}
	}
	if v.Unaccepted == nil {
		v.Unaccepted = []string{}
	}

	if d.Submitted {
		c := def.Confirmation
		actions := c.Actions
		if actions == nil {
			actions = []Action{}
		}
		v.Confirmation = &ConfirmationView{
			Title:           c.Title,
			Message:         c.Message,
			Actions:         actions,
			RedirectTo:      c.RedirectTo,
			RedirectAfterMS: c.RedirectAfter.Milliseconds(),
		}
	}
	return v
}
