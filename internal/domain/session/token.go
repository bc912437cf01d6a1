package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"care-portals/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "care-portals"

var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Tokens firma y verifica los bearer de sesión (HS256).
// No llevan exp: un token sigue siendo válido después del logout.
// Es un stub de demo, no un mecanismo de seguridad.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), now: time.Now}
}

func (t *Tokens) Issue(s Session) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   tokenIssuer,
			Subject:  s.ID,
			IssuedAt: jwt.NewNumericDate(t.now()),
		},
		Name:  s.Name,
		Email: s.Email,
		Role:  s.Role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify implementa auth.AuthVerifier.
func (t *Tokens) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return auth.Claims{}, fmt.Errorf("%w: missing subject or role", ErrInvalidToken)
	}

	return auth.Claims{
		UserID: claims.Subject,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   string(claims.Role),
	}, nil
}
