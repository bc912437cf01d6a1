package backend

import "context"

// Backend es el "API remoto" de los portales. Hoy lo implementa un mock con
// latencia artificial; el adapter HTTP habla con un servidor real con la misma forma.
type Backend interface {
	// Estudiante
	SendChatMessage(ctx context.Context, message string) (ChatReply, error)
	CreateBooking(ctx context.Context, in BookingRequest) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	SaveMoodEntry(ctx context.Context, in MoodEntryRequest) (MoodEntry, error)
	MoodHistory(ctx context.Context) ([]MoodPoint, error)
	ListForumPosts(ctx context.Context) ([]ForumPost, error)
	CreateForumPost(ctx context.Context, in ForumPostRequest) (ForumPost, error)
	ListResources(ctx context.Context, f ResourceFilter) ([]Resource, error)

	// Portal de adopción
	SubmitApplication(ctx context.Context, in ApplicationRequest) (Application, error)
	ListApplications(ctx context.Context) ([]Application, error)
	ListConversations(ctx context.Context) ([]Conversation, error)

	// Admin
	DashboardStats(ctx context.Context) (DashboardStats, error)
	ListAllBookings(ctx context.Context) ([]AdminBooking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status BookingStatus) (BookingStatusUpdate, error)
	FlaggedContent(ctx context.Context) ([]FlaggedItem, error)
	ModerateContent(ctx context.Context, contentID string, action ModerationAction) (ModerationResult, error)
	Analytics(ctx context.Context) (Analytics, error)
}
