package wizard

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// valueFor elige un valor válido (o vacío) para el campo según choice.
func valueFor(f Field, choice int) string {
	switch {
	case f.Kind.boolean():
		if choice%2 == 0 {
			return "true"
		}
		return "false"
	case f.Kind == KindSelect || f.Kind == KindMultiSelect:
		if choice%(len(f.Options)+1) == 0 {
			return ""
		}
		return f.Options[choice%len(f.Options)].Value
	case f.Kind == KindDate:
		if choice%3 == 0 {
			return ""
		}
		return "2024-01-15"
	}
	if choice%3 == 0 {
		return ""
	}
	return "x"
}

func allFields(def *Definition) []Field {
	out := []Field{}
	for _, st := range def.Steps {
		out = append(out, st.Fields...)
	}
	return out
}

// Cada op se codifica en un uint16: 2 bits de operación, el resto elige campo y valor.
func applyOp(d *Draft, fields []Field, op uint16) {
	switch op % 4 {
	case 0:
		d.Next()
	case 1:
		d.Prev()
	case 2:
		f := fields[int(op/4)%len(fields)]
		_ = d.Edit(f.Name, valueFor(f, int(op/256)))
	case 3:
		_ = d.Submit(time.Now())
	}
}

func TestDraft_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 300
	properties := gopter.NewProperties(params)

	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range reg.IDs() {
		def, _ := reg.Get(id)
		fields := allFields(def)

		properties.Property(id+": step stays within [1, total]", prop.ForAll(
			func(ops []uint16) bool {
				d := NewDraft(def, "d", "e")
				for _, op := range ops {
					applyOp(&d, fields, op)
					if d.Step < 1 || d.Step > def.TotalSteps() {
						return false
					}
				}
				return true
			},
			gen.SliceOf(gen.UInt16()),
		))

		properties.Property(id+": submitted implies final step, required filled and agreements accepted", prop.ForAll(
			func(ops []uint16) bool {
				d := NewDraft(def, "d", "e")
				for _, op := range ops {
					before := d.Clone()
					applyOp(&d, fields, op)
					if d.Submitted && !before.Submitted {
						if before.Step != def.TotalSteps() {
							return false
						}
						missing, unaccepted := before.Missing()
						if len(missing) > 0 || len(unaccepted) > 0 {
							return false
						}
					}
				}
				return true
			},
			gen.SliceOf(gen.UInt16()),
		))
	}

	properties.TestingRun(t)
}
