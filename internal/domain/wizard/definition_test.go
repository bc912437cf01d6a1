package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg, err := DefaultRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{"adoption", "booking", "mood-entry", "signup"}, reg.IDs())

	adoption, ok := reg.Get("adoption")
	require.True(t, ok)
	assert.Equal(t, "pet", adoption.Entity)
	require.Equal(t, 4, adoption.TotalSteps())
	titles := []string{}
	for _, st := range adoption.Steps {
		titles = append(titles, st.Title)
	}
	assert.Equal(t, []string{"Personal Info", "Housing", "Experience", "Final Details"}, titles)

	f, step, ok := adoption.Field("agrees_to_home_visit")
	require.True(t, ok)
	assert.Equal(t, KindAgreement, f.Kind)
	assert.Equal(t, 4, step)

	booking, ok := reg.Get("booking")
	require.True(t, ok)
	assert.Equal(t, 2, booking.TotalSteps())
	assert.Equal(t, "dashboard", booking.Confirmation.RedirectTo)
	assert.Equal(t, 3*time.Second, booking.Confirmation.RedirectAfter)

	time9, _, ok := booking.Field("time")
	require.True(t, ok)
	assert.Len(t, time9.Options, 9)
}

func TestDefaultRegistry_QuestionLabels(t *testing.T) {
	adoption := mustDef(t, "adoption")
	for name, label := range map[string]string{
		"exercise_commitment": "How will you meet the pet's exercise needs?",
		"why_adopt":           "Why do you want to adopt a pet?",
		"why_this_pet":        "Why are you interested in this pet specifically?",
		"emergency_plan":      "What is your plan if you can no longer care for the pet?",
	} {
		f, _, ok := adoption.Field(name)
		require.True(t, ok, name)
		assert.Equal(t, label, f.Label)
	}
}

func TestLoadRegistry_Invalid(t *testing.T) {
	cases := map[string]string{
		"duplicate field": `
forms:
  - id: f
    steps:
      - title: a
        fields:
          - { name: x, kind: text }
          - { name: x, kind: text }
`,
		"unknown kind": `
forms:
  - id: f
    steps:
      - title: a
        fields:
          - { name: x, kind: slider }
`,
		"select without options": `
forms:
  - id: f
    steps:
      - title: a
        fields:
          - { name: x, kind: select }
`,
		"show_if unknown": `
forms:
  - id: f
    steps:
      - title: a
        fields:
          - { name: x, kind: text, show_if: { field: y, equals: "1" } }
`,
		"no steps":     "forms:\n  - id: f\n",
		"duplicate id": "forms:\n  - id: f\n    steps: [{title: a}]\n  - id: f\n    steps: [{title: a}]\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadRegistry([]byte(raw))
			assert.Error(t, err)
		})
	}
}
