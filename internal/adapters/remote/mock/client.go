// Package mock implementa backend.Backend sin red: espera una latencia fija
// y devuelve datos armados a mano. Nunca falla salvo que se cancele el ctx.
package mock

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"care-portals/internal/platform/latency"
	"care-portals/internal/ports/backend"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Options struct {
	// Fast: lecturas y guardados simples (~500ms).
	Fast time.Duration
	// Slow: chat, reservas y analytics (~1s).
	Slow time.Duration

	// Fuente de aleatoriedad para las series sintéticas. nil => semilla por tiempo.
	Rand *rand.Rand
	Now  func() time.Time
}

type Client struct {
	fast time.Duration
	slow time.Duration

	mu  sync.Mutex
	rnd *rand.Rand

	now   func() time.Time
	newID func() string
}

var _ backend.Backend = (*Client)(nil)

func New(opts Options) *Client {
	rnd := opts.Rand
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Client{
		fast:  opts.Fast,
		slow:  opts.Slow,
		rnd:   rnd,
		now:   now,
		newID: uuid.NewString,
	}
}

// intn devuelve [0,n). *rand.Rand no es seguro para uso concurrente.
func (c *Client) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.IntN(n)
}

func (c *Client) float() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.Float64()
}

func (c *Client) SendChatMessage(ctx context.Context, message string) (backend.ChatReply, error) {
	if err := latency.Sleep(ctx, c.slow); err != nil {
		return backend.ChatReply{}, err
	}
	return backend.ChatReply{
		ID:        c.newID(),
		Message:   chatResponses[c.intn(len(chatResponses))],
		Timestamp: c.now().UTC(),
	}, nil
}

func (c *Client) CreateBooking(ctx context.Context, in backend.BookingRequest) (backend.Booking, error) {
	if err := latency.Sleep(ctx, c.slow); err != nil {
		return backend.Booking{}, err
	}
	created := c.now().UTC()
	return backend.Booking{
		ID:        c.newID(),
		Date:      in.Date,
		Time:      in.Time,
		Counselor: in.Counselor,
		Type:      in.Type,
		Reason:    in.Reason,
		Urgency:   in.Urgency,
		Notes:     in.Notes,
		Status:    backend.BookingPending,
		CreatedAt: &created,
	}, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]backend.Booking, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return nil, err
	}
	return studentBookings(), nil
}

func (c *Client) SaveMoodEntry(ctx context.Context, in backend.MoodEntryRequest) (backend.MoodEntry, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return backend.MoodEntry{}, err
	}
	return backend.MoodEntry{
		ID:         c.newID(),
		Mood:       in.Mood,
		Notes:      in.Notes,
		Activities: append([]string(nil), in.Activities...),
		Date:       c.now().UTC().Format(dateLayout),
	}, nil
}

// MoodHistory: 31 días terminando hoy; mood/energy/sleep en 3..7, stress en 2..6.
func (c *Client) MoodHistory(ctx context.Context) ([]backend.MoodPoint, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return nil, err
	}
	today := c.now().UTC()
	out := make([]backend.MoodPoint, 0, 31)
	for i := 30; i >= 0; i-- {
		out = append(out, backend.MoodPoint{
			Date:   today.AddDate(0, 0, -i).Format(dateLayout),
			Mood:   c.intn(5) + 3,
			Stress: c.intn(5) + 2,
			Energy: c.intn(5) + 3,
			Sleep:  c.intn(5) + 3,
		})
	}
	return out, nil
}

func (c *Client) ListForumPosts(ctx context.Context) ([]backend.ForumPost, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return nil, err
	}
	return forumPosts(), nil
}

func (c *Client) CreateForumPost(ctx context.Context, in backend.ForumPostRequest) (backend.ForumPost, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return backend.ForumPost{}, err
	}
	return backend.ForumPost{
		ID:        c.newID(),
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		Category:  in.Category,
		Timestamp: c.now().UTC().Format(time.RFC3339),
		Likes:     0,
		Comments:  []backend.ForumComment{},
	}, nil
}

func (c *Client) ListResources(ctx context.Context, f backend.ResourceFilter) ([]backend.Resource, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return nil, err
	}
	out := make([]backend.Resource, 0, len(resources))
	for _, r := range resources {
		if f.Type != "" && f.Type != r.Type {
			continue
		}
		if f.Category != "" && f.Category != r.Category {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (c *Client) SubmitApplication(ctx context.Context, in backend.ApplicationRequest) (backend.Application, error) {
	if err := latency.Sleep(ctx, c.slow); err != nil {
		return backend.Application{}, err
	}
	now := c.now().UTC()
	return backend.Application{
		ID:          c.newID(),
		PetID:       in.PetID,
		Status:      backend.ApplicationPending,
		SubmittedAt: now,
		LastUpdate:  now,
		NextStep:    "Application review (1-2 days)",
	}, nil
}

func (c *Client) ListApplications(ctx context.Context) ([]backend.Application, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return nil, err
	}
	return applications(), nil
}

func (c *Client) ListConversations(ctx context.Context) ([]backend.Conversation, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return nil, err
	}
	return conversations(), nil
}

func (c *Client) DashboardStats(ctx context.Context) (backend.DashboardStats, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return backend.DashboardStats{}, err
	}
	return backend.DashboardStats{
		ActiveStudents:  1247,
		TotalBookings:   156,
		PendingBookings: 23,
		ChatbotSessions: 892,
		ForumPosts:      45,
		FlaggedContent:  3,
	}, nil
}

func (c *Client) ListAllBookings(ctx context.Context) ([]backend.AdminBooking, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return nil, err
	}
	return adminBookings(), nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, status backend.BookingStatus) (backend.BookingStatusUpdate, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return backend.BookingStatusUpdate{}, err
	}
	return backend.BookingStatusUpdate{
		ID:        bookingID,
		Status:    status,
		UpdatedAt: c.now().UTC(),
	}, nil
}

func (c *Client) FlaggedContent(ctx context.Context) ([]backend.FlaggedItem, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return nil, err
	}
	return flaggedItems(), nil
}

func (c *Client) ModerateContent(ctx context.Context, contentID string, action backend.ModerationAction) (backend.ModerationResult, error) {
	if err := latency.Sleep(ctx, c.fast); err != nil {
		return backend.ModerationResult{}, err
	}
	return backend.ModerationResult{
		ID:          contentID,
		Action:      action,
		ModeratedAt: c.now().UTC(),
	}, nil
}

// Analytics: 31 días de ánimo promedio (5..8), 8 días de chatbot y 6 meses de reservas.
func (c *Client) Analytics(ctx context.Context) (backend.Analytics, error) {
	if err := latency.Sleep(ctx, c.slow); err != nil {
		return backend.Analytics{}, err
	}
	today := c.now().UTC()

	out := backend.Analytics{
		MoodTrends:      make([]backend.MoodTrend, 0, 31),
		ChatbotActivity: make([]backend.ChatbotActivity, 0, 8),
		BookingDemand:   make([]backend.BookingDemand, 0, len(demandMonths)),
	}
	for i := 30; i >= 0; i-- {
		out.MoodTrends = append(out.MoodTrends, backend.MoodTrend{
			Date:         today.AddDate(0, 0, -i).Format(dateLayout),
			AvgMood:      c.float()*3 + 5,
			TotalEntries: c.intn(50) + 100,
		})
	}
	for i := 7; i >= 0; i-- {
		out.ChatbotActivity = append(out.ChatbotActivity, backend.ChatbotActivity{
			Date:     today.AddDate(0, 0, -i).Format(dateLayout),
			Sessions: c.intn(100) + 50,
			Messages: c.intn(500) + 200,
		})
	}
	for _, m := range demandMonths {
		out.BookingDemand = append(out.BookingDemand, backend.BookingDemand{
			Month:     m,
			Bookings:  c.intn(100) + 50,
			Completed: c.intn(80) + 40,
		})
	}
	return out, nil
}
