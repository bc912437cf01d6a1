package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"care-portals/internal/adapters/remote/mock"
	"care-portals/internal/config"
	"care-portals/internal/middleware"
	"care-portals/internal/ports/backend"
	"care-portals/internal/router"
)

// recordingBackend es el mock sin latencia que además guarda los bookings recibidos.
type recordingBackend struct {
	backend.Backend

	mu       sync.Mutex
	bookings []backend.BookingRequest
}

func (b *recordingBackend) CreateBooking(ctx context.Context, in backend.BookingRequest) (backend.Booking, error) {
	b.mu.Lock()
	b.bookings = append(b.bookings, in)
	b.mu.Unlock()
	return b.Backend.CreateBooking(ctx, in)
}

func newTestApp(t *testing.T) (*httptest.Server, *router.App, *recordingBackend) {
	t.Helper()

	cfg := config.Default()
	cfg.Latency = config.LatencyConfig{}

	remote := &recordingBackend{Backend: mock.New(mock.Options{})}
	app, err := router.New(context.Background(), router.Options{Config: cfg, Remote: remote})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	ts := httptest.NewServer(app.Handler)
	t.Cleanup(func() {
		ts.Close()
		app.Wait()
	})
	return ts, app, remote
}

type pageView struct {
	Page       string `json:"page"`
	Requested  string `json:"requested"`
	Redirected bool   `json:"redirected"`
	NotFound   *struct {
		Title   string `json:"title"`
		Actions []struct {
			Target string `json:"target"`
		} `json:"actions"`
	} `json:"not_found"`
}

type formView struct {
	Step         int  `json:"step"`
	CanSubmit    bool `json:"can_submit"`
	Submitted    bool `json:"submitted"`
	Confirmation *struct {
		Title      string `json:"title"`
		RedirectTo string `json:"redirect_to"`
	} `json:"confirmation"`
}

func TestHTTP_EndToEnd_LoginLogoutGate(t *testing.T) {
	ts, _, _ := newTestApp(t)
	key := "browser-1"

	// 1) Sin sesión el dashboard manda al login
	{
		v := getPage(t, ts.URL, "/mental-health/pages/dashboard", key)
		if v.Page != "login" || !v.Redirected || v.Requested != "dashboard" {
			t.Fatalf("expected redirect to login, got %+v", v)
		}
	}

	// 2) Login con credenciales de demo
	token := login(t, ts.URL, "/mental-health", key, "student", "student@test.com", "password")
	if token == "" {
		t.Fatalf("login: missing token")
	}

	// 3) Ahora el dashboard se ve
	{
		v := getPage(t, ts.URL, "/mental-health/pages/dashboard", key)
		if v.Page != "dashboard" || v.Redirected {
			t.Fatalf("expected dashboard, got %+v", v)
		}
	}

	// 4) Logout, dos veces (idempotente)
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "DELETE", "/mental-health/session", key, "", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d body=%s", st, string(body))
		}
	}

	// 5) Vuelve al login
	{
		v := getPage(t, ts.URL, "/mental-health/pages/dashboard", key)
		if v.Page != "login" || !v.Redirected {
			t.Fatalf("expected login after logout, got %+v", v)
		}
	}
}

func TestHTTP_Login_InvalidCredentials(t *testing.T) {
	ts, _, _ := newTestApp(t)

	st, body := doReq(t, ts.URL, "POST", "/mental-health/session/login", "k", "", map[string]any{
		"role": "student", "email": "student@test.com", "password": "wrong",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", st, string(body))
	}
}

func TestHTTP_SessionsAreScopedPerPortal(t *testing.T) {
	ts, _, _ := newTestApp(t)
	key := "browser-1"

	login(t, ts.URL, "/mental-health", key, "student", "student@test.com", "password")

	v := getPage(t, ts.URL, "/pet-adoption/pages/dashboard", key)
	if v.Page != "login" {
		t.Fatalf("expected pet portal login, got %+v", v)
	}
}

func TestHTTP_AdoptionForm_UnknownPet(t *testing.T) {
	ts, _, _ := newTestApp(t)

	v := getPage(t, ts.URL, "/pet-adoption/pages/adoption-form?id=999", "k")
	if v.Page != "pet-not-found" || v.NotFound == nil {
		t.Fatalf("expected pet-not-found, got %+v", v)
	}
	if v.NotFound.Title != "Pet Not Found" {
		t.Fatalf("unexpected title %q", v.NotFound.Title)
	}
	if len(v.NotFound.Actions) != 1 || v.NotFound.Actions[0].Target != "browse" {
		t.Fatalf("expected single browse action, got %+v", v.NotFound.Actions)
	}

	st, _ := doReq(t, ts.URL, "POST", "/pet-adoption/forms/adoption?id=999", "k", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 opening adoption form, got %d", st)
	}
}

func TestHTTP_BookingWizard_FireAndForget(t *testing.T) {
	ts, app, remote := newTestApp(t)
	key := "browser-1"

	// 1) Sin sesión no se puede abrir
	{
		st, _ := doReq(t, ts.URL, "POST", "/mental-health/forms/booking", key, "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 without session, got %d", st)
		}
	}

	login(t, ts.URL, "/mental-health", key, "student", "student@test.com", "password")

	// 2) Abrir y completar el primer paso
	{
		st, body := doReq(t, ts.URL, "POST", "/mental-health/forms/booking", key, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 open, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "PATCH", "/mental-health/forms/booking", key, "", map[string]string{
			"date":         "2024-03-10",
			"time":         "10:00 AM",
			"counselor":    "dr-smith",
			"session_type": "video",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 edit, got %d body=%s", st, string(body))
		}
		var fv formView
		_ = json.Unmarshal(body, &fv)
		if fv.CanSubmit {
			t.Fatalf("expected no can_submit before the last step, body=%s", string(body))
		}
	}

	// 3) Next avanza, Next de nuevo se queda en el último paso
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "POST", "/mental-health/forms/booking/next", key, "", nil)
		var fv formView
		_ = json.Unmarshal(body, &fv)
		if st != http.StatusOK || fv.Step != 2 || !fv.CanSubmit {
			t.Fatalf("expected step 2 with can_submit, got %d body=%s", st, string(body))
		}
	}

	// 4) Enviar
	{
		st, body := doReq(t, ts.URL, "POST", "/mental-health/forms/booking/submit", key, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 submit, got %d body=%s", st, string(body))
		}
		var fv formView
		_ = json.Unmarshal(body, &fv)
		if !fv.Submitted || fv.Confirmation == nil || fv.Confirmation.RedirectTo != "dashboard" {
			t.Fatalf("unexpected confirmation body=%s", string(body))
		}
	}

	// 5) El envío llegó al backend
	app.Wait()
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if len(remote.bookings) != 1 {
		t.Fatalf("expected 1 booking sent, got %d", len(remote.bookings))
	}
	if got := remote.bookings[0]; got.Counselor != "dr-smith" || got.Type != backend.SessionVideo {
		t.Fatalf("unexpected booking request %+v", got)
	}
}

func TestHTTP_BookingWizard_SubmitMissingFields(t *testing.T) {
	ts, _, _ := newTestApp(t)
	key := "browser-1"
	login(t, ts.URL, "/mental-health", key, "student", "student@test.com", "password")

	doReq(t, ts.URL, "POST", "/mental-health/forms/booking", key, "", nil)

	// En el primer paso el submit se rechaza antes de mirar los campos
	st, body := doReq(t, ts.URL, "POST", "/mental-health/forms/booking/submit", key, "", nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 before the last step, got %d body=%s", st, string(body))
	}

	doReq(t, ts.URL, "POST", "/mental-health/forms/booking/next", key, "", nil)
	st, body = doReq(t, ts.URL, "POST", "/mental-health/forms/booking/submit", key, "", nil)
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", st, string(body))
	}
}

func TestHTTP_FormOfOtherPortalIsNotFound(t *testing.T) {
	ts, _, _ := newTestApp(t)

	st, _ := doReq(t, ts.URL, "POST", "/mental-health/forms/adoption?id=1", "k", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
}

func TestHTTP_SignupWizard(t *testing.T) {
	ts, _, _ := newTestApp(t)
	key := "browser-1"

	doReq(t, ts.URL, "POST", "/mental-health/forms/signup", key, "", nil)
	doReq(t, ts.URL, "PATCH", "/mental-health/forms/signup", key, "", map[string]string{
		"first_name":       "Ana",
		"last_name":        "Pérez",
		"email":            "ana@test.com",
		"password":         "secret",
		"confirm_password": "other",
	})

	// 1) Passwords distintas => 400 y el draft sigue abierto
	{
		st, body := doReq(t, ts.URL, "POST", "/mental-health/forms/signup/submit", key, "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", st, string(body))
		}
	}

	// 2) Corrige y envía
	doReq(t, ts.URL, "PATCH", "/mental-health/forms/signup", key, "", map[string]string{"confirm_password": "secret"})
	{
		st, body := doReq(t, ts.URL, "POST", "/mental-health/forms/signup/submit", key, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 submit, got %d body=%s", st, string(body))
		}
	}

	// 3) Quedó logueado como estudiante
	{
		st, body := doReq(t, ts.URL, "GET", "/mental-health/session", key, "", nil)
		var got struct {
			Authenticated bool   `json:"authenticated"`
			Name          string `json:"name"`
			Role          string `json:"role"`
		}
		_ = json.Unmarshal(body, &got)
		if st != http.StatusOK || !got.Authenticated || got.Role != "student" || got.Name != "Ana Pérez" {
			t.Fatalf("unexpected session %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_API_RequiresBearer(t *testing.T) {
	ts, _, _ := newTestApp(t)

	{
		st, _ := doReq(t, ts.URL, "GET", "/api/bookings", "k", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", st)
		}
	}

	student := login(t, ts.URL, "/mental-health", "k", "student", "student@test.com", "password")
	{
		st, body := doReq(t, ts.URL, "GET", "/api/bookings", "k", student, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with token, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/admin/stats", "k", student, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for student on admin api, got %d", st)
		}
	}

	admin := login(t, ts.URL, "/mental-health", "k2", "admin", "admin@test.com", "admin123")
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/stats", "k2", admin, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for admin, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_HealthAndCatalog(t *testing.T) {
	ts, _, _ := newTestApp(t)

	if st, _ := doReq(t, ts.URL, "GET", "/health", "", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pets?species=dog", "", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 pets, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pets/999", "", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown pet, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/bank/pages/home", "", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown portal, got %d", st)
	}
}

func login(t *testing.T, baseURL, portal, key, role, email, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", portal+"/session/login", key, "", map[string]any{
		"role": role, "email": email, "password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}
	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	return resp.Token
}

func getPage(t *testing.T, baseURL, path, key string) pageView {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, key, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 page %s, got %d body=%s", path, st, string(body))
	}
	var v pageView
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	return v
}

func doReq(t *testing.T, baseURL, method, path, visitor, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if visitor != "" {
		req.Header.Set(middleware.VisitorHeader, visitor)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
