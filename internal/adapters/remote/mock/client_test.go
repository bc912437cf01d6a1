package mock

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"care-portals/internal/ports/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestClient() *Client {
	return New(Options{
		Rand: rand.New(rand.NewPCG(1, 2)),
		Now:  func() time.Time { return fixedNow },
	})
}

func TestMoodHistory_ShapeAndRanges(t *testing.T) {
	c := newTestClient()

	points, err := c.MoodHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 31)

	assert.Equal(t, "2024-01-31", points[0].Date)
	assert.Equal(t, "2024-03-01", points[30].Date)
	for _, p := range points {
		assert.True(t, p.Mood >= 3 && p.Mood <= 7, "mood %d", p.Mood)
		assert.True(t, p.Stress >= 2 && p.Stress <= 6, "stress %d", p.Stress)
		assert.True(t, p.Energy >= 3 && p.Energy <= 7, "energy %d", p.Energy)
		assert.True(t, p.Sleep >= 3 && p.Sleep <= 7, "sleep %d", p.Sleep)
	}
}

func TestMoodHistory_DeterministicWithSeed(t *testing.T) {
	a, err := newTestClient().MoodHistory(context.Background())
	require.NoError(t, err)
	b, err := newTestClient().MoodHistory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAnalytics_ShapeAndRanges(t *testing.T) {
	a, err := newTestClient().Analytics(context.Background())
	require.NoError(t, err)

	require.Len(t, a.MoodTrends, 31)
	require.Len(t, a.ChatbotActivity, 8)
	require.Len(t, a.BookingDemand, 6)

	for _, m := range a.MoodTrends {
		assert.True(t, m.AvgMood >= 5 && m.AvgMood < 8)
		assert.True(t, m.TotalEntries >= 100 && m.TotalEntries <= 149)
	}
	for _, d := range a.ChatbotActivity {
		assert.True(t, d.Sessions >= 50 && d.Sessions <= 149)
		assert.True(t, d.Messages >= 200 && d.Messages <= 699)
	}
	assert.Equal(t, "Jan", a.BookingDemand[0].Month)
	assert.Equal(t, "Jun", a.BookingDemand[5].Month)
}

func TestSendChatMessage_PicksCannedReply(t *testing.T) {
	reply, err := newTestClient().SendChatMessage(context.Background(), "I feel stressed")
	require.NoError(t, err)
	assert.Contains(t, chatResponses, reply.Message)
	assert.NotEmpty(t, reply.ID)
	assert.Equal(t, fixedNow, reply.Timestamp)
}

func TestCreateBooking_EchoesInputAsPending(t *testing.T) {
	in := backend.BookingRequest{Date: "2024-03-04", Time: "09:00 AM", Counselor: "dr-smith", Type: backend.SessionVideo}

	b, err := newTestClient().CreateBooking(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, backend.BookingPending, b.Status)
	assert.Equal(t, "dr-smith", b.Counselor)
	require.NotNil(t, b.CreatedAt)
}

func TestSaveMoodEntry_StampsToday(t *testing.T) {
	e, err := newTestClient().SaveMoodEntry(context.Background(), backend.MoodEntryRequest{Mood: 4, Activities: []string{"Exercise"}})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", e.Date)
	assert.Equal(t, []string{"Exercise"}, e.Activities)
}

func TestCannedLists(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	bookings, err := c.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	posts, err := c.ListForumPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Len(t, posts[0].Comments, 1)

	stats, err := c.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1247, stats.ActiveStudents)
	assert.Equal(t, 3, stats.FlaggedContent)

	apps, err := c.ListApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 3)

	convs, err := c.ListConversations(ctx)
	require.NoError(t, err)
	assert.Len(t, convs, 2)
}

func TestListResources_Filter(t *testing.T) {
	c := newTestClient()

	all, err := c.ListResources(context.Background(), backend.ResourceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	none, err := c.ListResources(context.Background(), backend.ResourceFilter{Type: "video"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAdminActionsEchoInput(t *testing.T) {
	c := newTestClient()

	u, err := c.UpdateBookingStatus(context.Background(), "7", backend.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "7", u.ID)
	assert.Equal(t, backend.BookingConfirmed, u.Status)

	m, err := c.ModerateContent(context.Background(), "9", backend.ModerationRemove)
	require.NoError(t, err)
	assert.Equal(t, backend.ModerationRemove, m.Action)
}

func TestLatency_CancelledContext(t *testing.T) {
	c := New(Options{Fast: time.Hour, Slow: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.SendChatMessage(ctx, "hi")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = c.ListBookings(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLatency_Waits(t *testing.T) {
	c := New(Options{Fast: 15 * time.Millisecond})

	start := time.Now()
	_, err := c.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}
