package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testTargets struct{}

func (testTargets) LoginPage(r Role) string {
	if r == RoleAdmin {
		return "admin-login"
	}
	return "login"
}

func (testTargets) HomePage(r Role) string {
	switch r {
	case RoleAdmin:
		return "admin-dashboard"
	case RoleAnonymous:
		return "chatbot"
	}
	return "dashboard"
}

func TestRequireRole(t *testing.T) {
	student := &Session{ID: "1", Role: RoleStudent}
	admin := &Session{ID: "a", Role: RoleAdmin}

	tests := []struct {
		name  string
		sess  *Session
		roles []Role
		want  Decision
	}{
		{"public page", nil, nil, Decision{Allow: true}},
		{"unauthenticated student page", nil, []Role{RoleStudent}, Decision{Redirect: "login", Reason: ReasonUnauthenticated}},
		{"unauthenticated admin page", nil, []Role{RoleAdmin}, Decision{Redirect: "admin-login", Reason: ReasonUnauthenticated}},
		{"student allowed", student, []Role{RoleStudent}, Decision{Allow: true}},
		{"student on admin page", student, []Role{RoleAdmin}, Decision{Redirect: "dashboard", Reason: ReasonForbidden}},
		{"admin on student page", admin, []Role{RoleStudent}, Decision{Redirect: "admin-dashboard", Reason: ReasonForbidden}},
		{"anonymous chatbot", &Session{Role: RoleAnonymous}, []Role{RoleStudent, RoleAnonymous}, Decision{Allow: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RequireRole(tc.sess, testTargets{}, tc.roles...))
		})
	}
}
