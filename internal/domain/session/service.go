package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"care-portals/internal/platform/latency"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrNotFound           = errors.New("session not found")
)

type Options struct {
	// Demora simulada de login/signup. 0 = sin espera.
	Latency time.Duration

	// Allow-list. Vacío => DemoAccounts().
	Accounts []Account
}

type Service struct {
	store    Store
	tokens   *Tokens
	accounts []Account
	latency  time.Duration

	wait  func(ctx context.Context, d time.Duration) error
	now   func() time.Time
	newID func() string
}

func NewService(store Store, tokens *Tokens, opts Options) *Service {
	accounts := opts.Accounts
	if len(accounts) == 0 {
		accounts = DemoAccounts()
	}
	return &Service{
		store:    store,
		tokens:   tokens,
		accounts: accounts,
		latency:  opts.Latency,
		wait:     latency.Sleep,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Login compara literal contra la allow-list del rol pedido.
// No hay reintentos ni bloqueo por intentos fallidos.
func (s *Service) Login(ctx context.Context, key string, role Role, c Credentials) (Session, error) {
	if strings.TrimSpace(key) == "" {
		return Session{}, fmt.Errorf("%w: session key required", ErrInvalidInput)
	}
	if role != RoleStudent && role != RoleAdmin {
		return Session{}, fmt.Errorf("%w: role %q cannot log in", ErrInvalidInput, role)
	}

	if err := s.wait(ctx, s.latency); err != nil {
		return Session{}, err
	}

	for _, a := range s.accounts {
		if a.Role == role && a.Email == c.Email && a.Password == c.Password {
			return s.start(ctx, key, Session{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role})
		}
	}
	return Session{}, ErrInvalidCredentials
}

// Signup crea una sesión de estudiante; no hay registro real de usuarios.
func (s *Service) Signup(ctx context.Context, key string, in SignupInput) (Session, error) {
	if strings.TrimSpace(key) == "" {
		return Session{}, fmt.Errorf("%w: session key required", ErrInvalidInput)
	}

	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(in.Email)
	if first == "" || last == "" || email == "" || in.Password == "" {
		return Session{}, fmt.Errorf("%w: first name, last name, email and password are required", ErrInvalidInput)
	}
	if in.Password != in.ConfirmPassword {
		return Session{}, ErrPasswordMismatch
	}

	if err := s.wait(ctx, s.latency); err != nil {
		return Session{}, err
	}

	return s.start(ctx, key, Session{
		ID:    s.newID(),
		Name:  first + " " + last,
		Email: email,
		Role:  RoleStudent,
	})
}

// Guest abre una sesión anónima (acceso al chatbot sin cuenta).
func (s *Service) Guest(ctx context.Context, key string) (Session, error) {
	if strings.TrimSpace(key) == "" {
		return Session{}, fmt.Errorf("%w: session key required", ErrInvalidInput)
	}
	return s.start(ctx, key, Session{
		ID:   "anon-" + s.newID(),
		Name: "Anonymous",
		Role: RoleAnonymous,
	})
}

// Logout borra sin condiciones; llamarlo dos veces no es error.
func (s *Service) Logout(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	return s.store.Delete(ctx, key)
}

// Current no modifica nada.
func (s *Service) Current(ctx context.Context, key string) (Session, bool, error) {
	if strings.TrimSpace(key) == "" {
		return Session{}, false, nil
	}
	sess, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	return sess, true, nil
}

func (s *Service) start(ctx context.Context, key string, sess Session) (Session, error) {
	sess.CreatedAt = s.now().UTC()

	token, err := s.tokens.Issue(sess)
	if err != nil {
		return Session{}, err
	}
	sess.Token = token

	if err := s.store.Put(ctx, key, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}
