// Package httpbackend implementa backend.Backend contra un API JSON real.
package httpbackend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"care-portals/internal/platform/httpclient"
	"care-portals/internal/ports/backend"
)

var (
	ErrBackendNotConfigured = errors.New("remote backend not configured")
	ErrBackendUnauthorized  = errors.New("remote backend unauthorized")
	ErrBackendUpstream      = errors.New("remote backend upstream error")
)

// Config del backend remoto. Vienen de REMOTE_BASE_URL / REMOTE_API_KEY.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional; default "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

type Client struct {
	http       *httpclient.Client
	configured bool
}

var _ backend.Backend = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	headers := map[string]string{}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		headers[h] = key
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   timeout,
		Headers:   headers,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, configured: hc.BaseURL != ""}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.configured
}

// do normaliza errores de transporte y de status a los sentinels del paquete.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if !c.IsConfigured() {
		return ErrBackendNotConfigured
	}

	err := c.http.DoJSON(ctx, method, path, nil, in, out)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch httpclient.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrBackendUnauthorized
	default:
		return fmt.Errorf("%w: %v", ErrBackendUpstream, err)
	}
}

func (c *Client) SendChatMessage(ctx context.Context, message string) (backend.ChatReply, error) {
	var out backend.ChatReply
	err := c.do(ctx, http.MethodPost, "/v1/chat/messages", map[string]string{"message": message}, &out)
	return out, err
}

func (c *Client) CreateBooking(ctx context.Context, in backend.BookingRequest) (backend.Booking, error) {
	var out backend.Booking
	err := c.do(ctx, http.MethodPost, "/v1/bookings", in, &out)
	return out, err
}

func (c *Client) ListBookings(ctx context.Context) ([]backend.Booking, error) {
	var out []backend.Booking
	err := c.do(ctx, http.MethodGet, "/v1/bookings", nil, &out)
	return out, err
}

func (c *Client) SaveMoodEntry(ctx context.Context, in backend.MoodEntryRequest) (backend.MoodEntry, error) {
	var out backend.MoodEntry
	err := c.do(ctx, http.MethodPost, "/v1/mood/entries", in, &out)
	return out, err
}

func (c *Client) MoodHistory(ctx context.Context) ([]backend.MoodPoint, error) {
	var out []backend.MoodPoint
	err := c.do(ctx, http.MethodGet, "/v1/mood/history", nil, &out)
	return out, err
}

func (c *Client) ListForumPosts(ctx context.Context) ([]backend.ForumPost, error) {
	var out []backend.ForumPost
	err := c.do(ctx, http.MethodGet, "/v1/forum/posts", nil, &out)
	return out, err
}

func (c *Client) CreateForumPost(ctx context.Context, in backend.ForumPostRequest) (backend.ForumPost, error) {
	var out backend.ForumPost
	err := c.do(ctx, http.MethodPost, "/v1/forum/posts", in, &out)
	return out, err
}

func (c *Client) ListResources(ctx context.Context, f backend.ResourceFilter) ([]backend.Resource, error) {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	path := "/v1/resources"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []backend.Resource
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) SubmitApplication(ctx context.Context, in backend.ApplicationRequest) (backend.Application, error) {
	var out backend.Application
	err := c.do(ctx, http.MethodPost, "/v1/applications", in, &out)
	return out, err
}

func (c *Client) ListApplications(ctx context.Context) ([]backend.Application, error) {
	var out []backend.Application
	err := c.do(ctx, http.MethodGet, "/v1/applications", nil, &out)
	return out, err
}

func (c *Client) ListConversations(ctx context.Context) ([]backend.Conversation, error) {
	var out []backend.Conversation
	err := c.do(ctx, http.MethodGet, "/v1/conversations", nil, &out)
	return out, err
}

func (c *Client) DashboardStats(ctx context.Context) (backend.DashboardStats, error) {
	var out backend.DashboardStats
	err := c.do(ctx, http.MethodGet, "/v1/admin/stats", nil, &out)
	return out, err
}

func (c *Client) ListAllBookings(ctx context.Context) ([]backend.AdminBooking, error) {
	var out []backend.AdminBooking
	err := c.do(ctx, http.MethodGet, "/v1/admin/bookings", nil, &out)
	return out, err
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, status backend.BookingStatus) (backend.BookingStatusUpdate, error) {
	var out backend.BookingStatusUpdate
	err := c.do(ctx, http.MethodPatch, "/v1/admin/bookings/"+url.PathEscape(bookingID),
		map[string]backend.BookingStatus{"status": status}, &out)
	return out, err
}

func (c *Client) FlaggedContent(ctx context.Context) ([]backend.FlaggedItem, error) {
	var out []backend.FlaggedItem
	err := c.do(ctx, http.MethodGet, "/v1/admin/flagged", nil, &out)
	return out, err
}

func (c *Client) ModerateContent(ctx context.Context, contentID string, action backend.ModerationAction) (backend.ModerationResult, error) {
	var out backend.ModerationResult
	err := c.do(ctx, http.MethodPost, "/v1/admin/flagged/"+url.PathEscape(contentID)+"/moderate",
		map[string]backend.ModerationAction{"action": action}, &out)
	return out, err
}

func (c *Client) Analytics(ctx context.Context) (backend.Analytics, error) {
	var out backend.Analytics
	err := c.do(ctx, http.MethodGet, "/v1/admin/analytics", nil, &out)
	return out, err
}
