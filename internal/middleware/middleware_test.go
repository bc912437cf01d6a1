package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"care-portals/internal/platform/logger"
	"care-portals/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func keyEcho(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(GetVisitorKey(r.Context())))
}

func TestVisitorKey_HeaderWins(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(VisitorHeader, "from-header")
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "from-cookie"})

	VisitorKey(http.HandlerFunc(keyEcho)).ServeHTTP(rec, req)

	assert.Equal(t, "from-header", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestVisitorKey_CookieThenGenerated(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "from-cookie"})
	VisitorKey(http.HandlerFunc(keyEcho)).ServeHTTP(rec, req)
	assert.Equal(t, "from-cookie", rec.Body.String())

	rec = httptest.NewRecorder()
	VisitorKey(http.HandlerFunc(keyEcho)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	key := rec.Body.String()
	require.NotEmpty(t, key)
	assert.Equal(t, key, rec.Header().Get(VisitorHeader))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, VisitorCookie, cookies[0].Name)
	assert.Equal(t, key, cookies[0].Value)
}

func TestScopeVisitor(t *testing.T) {
	h := VisitorKey(ScopeVisitor(func(*http.Request) string { return "mental-health" })(http.HandlerFunc(keyEcho)))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(VisitorHeader, "abc")
	h.ServeHTTP(rec, req)

	assert.Equal(t, "mental-health:abc", rec.Body.String())
}

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (v stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return v.claims, v.err
}

func TestRequireClaims(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	verifier := stubVerifier{claims: auth.Claims{UserID: "1", Role: "student"}}

	cases := []struct {
		name   string
		header string
		roles  []string
		want   int
	}{
		{"no token", "", nil, http.StatusUnauthorized},
		{"bad token", "Bearer nope", nil, http.StatusUnauthorized},
		{"any role", "Bearer good", nil, http.StatusNoContent},
		{"allowed role", "Bearer good", []string{"student"}, http.StatusNoContent},
		{"wrong role", "bearer good", []string{"admin"}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := AuthContext(verifier)(RequireClaims(tc.roles...)(ok))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestAuthContext_NilVerifierNeverSetsClaims(t *testing.T) {
	var found bool
	h := AuthContext(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, found = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, found)
}

func TestRequestLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.FromZap(zap.New(core))

	h := chimw.RequestID(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/boom", nil))

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, first.Level)
	ctx := first.ContextMap()
	assert.Equal(t, "GET", ctx["method"])
	assert.Equal(t, "/health", ctx["path"])
	assert.EqualValues(t, 200, ctx["status"])
	assert.NotEmpty(t, ctx["request_id"])

	second := logs.All()[1]
	assert.Equal(t, zapcore.ErrorLevel, second.Level)
	assert.EqualValues(t, 500, second.ContextMap()["status"])
}
