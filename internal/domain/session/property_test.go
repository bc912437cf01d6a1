package session

import (
	"context"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Solo el par exacto de la allow-list entra por el gate de estudiante.
func TestLogin_StudentGateProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	emails := gen.OneGenOf(gen.Const("student@test.com"), gen.Const("admin@test.com"), gen.AlphaString())
	passwords := gen.OneGenOf(gen.Const("password"), gen.Const("admin123"), gen.AlphaString())

	properties.Property("student login succeeds iff credentials match", prop.ForAll(
		func(email, password string) bool {
			svc := newTestService(newTestStore())
			s, err := svc.Login(context.Background(), "k", RoleStudent, Credentials{Email: email, Password: password})

			if email == "student@test.com" && password == "password" {
				return err == nil && s.Role == RoleStudent
			}
			return errors.Is(err, ErrInvalidCredentials)
		},
		emails, passwords,
	))

	properties.TestingRun(t)
}
