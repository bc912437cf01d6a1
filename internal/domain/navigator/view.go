package navigator

import (
	"care-portals/internal/domain/session"
	"care-portals/internal/domain/wizard"
)

// View es el view model de una página. Data depende de la página.
type View struct {
	Variant    string `json:"variant"`
	Page       string `json:"page"`
	Title      string `json:"title"`
	Requested  string `json:"requested,omitempty"`
	Redirected bool   `json:"redirected"`
	Reason     string `json:"reason,omitempty"`

	Session *SessionView `json:"session,omitempty"`
	Nav     []NavItem    `json:"nav"`

	Data     any               `json:"data,omitempty"`
	Form     *wizard.DraftView `json:"form,omitempty"`
	NotFound *NotFoundView     `json:"not_found,omitempty"`
}

// SessionView no expone el token.
type SessionView struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email,omitempty"`
	Role  session.Role `json:"role"`
}

type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Action struct {
	Target string `json:"target"`
	Label  string `json:"label"`
}

type NotFoundView struct {
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Actions []Action `json:"actions"`
}

func toSessionView(s session.Session) *SessionView {
	return &SessionView{ID: s.ID, Name: s.Name, Email: s.Email, Role: s.Role}
}
