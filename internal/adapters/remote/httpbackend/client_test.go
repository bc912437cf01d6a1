package httpbackend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"care-portals/internal/ports/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.False(t, c.IsConfigured())

	_, err = c.DashboardStats(context.Background())
	assert.ErrorIs(t, err, ErrBackendNotConfigured)
}

func TestClient_SendsAPIKeyAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k-1", r.Header.Get("X-Api-Key"))
		switch r.URL.Path {
		case "/v1/admin/bookings/42":
			assert.Equal(t, http.MethodPatch, r.Method)
			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			_ = json.NewEncoder(w).Encode(backend.BookingStatusUpdate{ID: "42", Status: backend.BookingStatus(in["status"])})
		case "/v1/resources":
			assert.Equal(t, "audio", r.URL.Query().Get("type"))
			_ = json.NewEncoder(w).Encode([]backend.Resource{{ID: "1", Type: "audio"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k-1"})
	require.NoError(t, err)

	u, err := c.UpdateBookingStatus(context.Background(), "42", backend.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, backend.BookingConfirmed, u.Status)

	res, err := c.ListResources(context.Background(), backend.ResourceFilter{Type: "audio"})
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestClient_MapsStatusErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/bookings" {
			http.Error(w, "no", http.StatusUnauthorized)
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = c.ListBookings(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnauthorized)

	_, err = c.Analytics(context.Background())
	assert.ErrorIs(t, err, ErrBackendUpstream)
	assert.Contains(t, err.Error(), "boom")
}
