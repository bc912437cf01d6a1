package router

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"care-portals/internal/domain/catalog"
	"care-portals/internal/domain/session"
	"care-portals/internal/domain/wizard"
	"care-portals/internal/ports/backend"
)

// bindForms conecta cada formulario con su efecto:
// - adoption: la mascota tiene que existir; el envío va al backend en background
// - booking y mood-entry: fire-and-forget al backend
// - signup: sync, crea la sesión y sus errores vuelven al visitante
func bindForms(forms *wizard.Service, pets *catalog.Service, sessions *session.Service, remote backend.Backend) {
	forms.Bind("adoption", wizard.Binding{
		EntityExists: func(ctx context.Context, id string) (bool, error) {
			err := pets.Exists(ctx, id)
			if errors.Is(err, catalog.ErrNotFound) {
				return false, nil
			}
			return err == nil, err
		},
		OnSubmit: func(ctx context.Context, _ string, d wizard.Draft) error {
			_, err := remote.SubmitApplication(ctx, backend.ApplicationRequest{
				PetID:  d.EntityID,
				Fields: d.Values,
			})
			return err
		},
		Async: true,
	})

	forms.Bind("booking", wizard.Binding{
		OnSubmit: func(ctx context.Context, _ string, d wizard.Draft) error {
			_, err := remote.CreateBooking(ctx, toBookingRequest(d))
			return err
		},
		Async: true,
	})

	forms.Bind("mood-entry", wizard.Binding{
		OnSubmit: func(ctx context.Context, _ string, d wizard.Draft) error {
			in, err := toMoodEntryRequest(d)
			if err != nil {
				return err
			}
			_, err = remote.SaveMoodEntry(ctx, in)
			return err
		},
		Async: true,
	})

	forms.Bind("signup", wizard.Binding{
		OnSubmit: func(ctx context.Context, key string, d wizard.Draft) error {
			_, err := sessions.Signup(ctx, key, session.SignupInput{
				FirstName:       d.Values["first_name"],
				LastName:        d.Values["last_name"],
				Email:           d.Values["email"],
				Password:        d.Values["password"],
				ConfirmPassword: d.Values["confirm_password"],
			})
			switch {
			case errors.Is(err, session.ErrPasswordMismatch):
				return wizard.HookError{Msg: "Passwords do not match"}
			case errors.Is(err, session.ErrInvalidInput):
				return wizard.HookError{Msg: err.Error()}
			}
			return err
		},
	})
}

func toBookingRequest(d wizard.Draft) backend.BookingRequest {
	v := d.Values
	return backend.BookingRequest{
		Date:      v["date"],
		Time:      v["time"],
		Counselor: v["counselor"],
		Type:      backend.SessionType(v["session_type"]),
		Reason:    v["reason"],
		Urgency:   v["urgency"],
		Notes:     v["notes"],
	}
}

func toMoodEntryRequest(d wizard.Draft) (backend.MoodEntryRequest, error) {
	mood, err := strconv.Atoi(d.Values["mood"])
	if err != nil {
		return backend.MoodEntryRequest{}, fmt.Errorf("mood %q: %w", d.Values["mood"], err)
	}
	var activities []string
	for _, a := range strings.Split(d.Values["activities"], ",") {
		if a = strings.TrimSpace(a); a != "" {
			activities = append(activities, a)
		}
	}
	return backend.MoodEntryRequest{
		Mood:       mood,
		Notes:      d.Values["notes"],
		Activities: activities,
	}, nil
}
