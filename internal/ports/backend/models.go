package backend

import "time"

type ChatReply struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionType string

const (
	SessionVideo SessionType = "video"
	SessionPhone SessionType = "phone"
	SessionChat  SessionType = "chat"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type BookingRequest struct {
	Date      string      `json:"date"` // YYYY-MM-DD
	Time      string      `json:"time"` // "10:00 AM"
	Counselor string      `json:"counselor"`
	Type      SessionType `json:"type"`
	Reason    string      `json:"reason"`
	Urgency   string      `json:"urgency"`
	Notes     string      `json:"notes"`
}

type Booking struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Counselor string        `json:"counselor"`
	Type      SessionType   `json:"type"`
	Reason    string        `json:"reason,omitempty"`
	Urgency   string        `json:"urgency,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
}

type MoodEntryRequest struct {
	Mood       int      `json:"mood"` // 0 (very sad) .. 4 (happy)
	Notes      string   `json:"notes"`
	Activities []string `json:"activities"`
}

type MoodEntry struct {
	ID         string   `json:"id"`
	Mood       int      `json:"mood"`
	Notes      string   `json:"notes"`
	Activities []string `json:"activities"`
	Date       string   `json:"date"`
}

type MoodPoint struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Stress int    `json:"stress"`
	Energy int    `json:"energy"`
	Sleep  int    `json:"sleep"`
}

type ForumComment struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
}

type ForumPost struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    string         `json:"author"`
	Timestamp string         `json:"timestamp"`
	Category  string         `json:"category"`
	Likes     int            `json:"likes"`
	Comments  []ForumComment `json:"comments"`
}

type ForumPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

type ResourceFilter struct {
	Type     string `json:"type,omitempty"`
	Category string `json:"category,omitempty"`
}

type Resource struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Thumbnail   string  `json:"thumbnail"`
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ApplicationRequest es lo que manda el wizard de adopción al enviar.
type ApplicationRequest struct {
	PetID  string            `json:"pet_id"`
	Fields map[string]string `json:"fields"`
}

type Application struct {
	ID          string            `json:"id"`
	PetID       string            `json:"pet_id"`
	PetName     string            `json:"pet_name,omitempty"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submitted_at"`
	LastUpdate  time.Time         `json:"last_update"`
	NextStep    string            `json:"next_step"`
}

type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"` // shelter | user
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type Conversation struct {
	ID          string    `json:"id"`
	PetName     string    `json:"pet_name"`
	LastMessage string    `json:"last_message"`
	Timestamp   time.Time `json:"timestamp"`
	Unread      bool      `json:"unread"`
	Messages    []Message `json:"messages"`
}

type DashboardStats struct {
	ActiveStudents  int `json:"active_students"`
	TotalBookings   int `json:"total_bookings"`
	PendingBookings int `json:"pending_bookings"`
	ChatbotSessions int `json:"chatbot_sessions"`
	ForumPosts      int `json:"forum_posts"`
	FlaggedContent  int `json:"flagged_content"`
}

type AdminBooking struct {
	ID           string        `json:"id"`
	StudentName  string        `json:"student_name"`
	StudentEmail string        `json:"student_email"`
	Counselor    string        `json:"counselor"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Type         SessionType   `json:"type"`
	Status       BookingStatus `json:"status"`
	Reason       string        `json:"reason"`
}

type BookingStatusUpdate struct {
	ID        string        `json:"id"`
	Status    BookingStatus `json:"status"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type FlaggedItem struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"` // post | comment
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	ReportReason string    `json:"report_reason"`
	ReportedAt   time.Time `json:"reported_at"`
	Status       string    `json:"status"`
}

type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationRemove  ModerationAction = "remove"
	ModerationWarn    ModerationAction = "warn"
)

func (a ModerationAction) Valid() bool {
	switch a {
	case ModerationApprove, ModerationRemove, ModerationWarn:
		return true
	}
	return false
}

type ModerationResult struct {
	ID          string           `json:"id"`
	Action      ModerationAction `json:"action"`
	ModeratedAt time.Time        `json:"moderated_at"`
}

type MoodTrend struct {
	Date         string  `json:"date"`
	AvgMood      float64 `json:"avg_mood"`
	TotalEntries int     `json:"total_entries"`
}

type ChatbotActivity struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
	Messages int    `json:"messages"`
}

type BookingDemand struct {
	Month     string `json:"month"`
	Bookings  int    `json:"bookings"`
	Completed int    `json:"completed"`
}

type Analytics struct {
	MoodTrends      []MoodTrend       `json:"mood_trends"`
	ChatbotActivity []ChatbotActivity `json:"chatbot_activity"`
	BookingDemand   []BookingDemand   `json:"booking_demand"`
}
