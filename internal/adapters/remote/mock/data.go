package mock

import (
	"time"

	"care-portals/internal/ports/backend"
)

var chatResponses = []string{
	"I hear you, and your feelings are completely valid. It takes courage to share how you're feeling.",
	"Thank you for trusting me with this. You're not alone in what you're experiencing.",
	"It sounds like you're going through a challenging time. What's one small thing that might help you feel a bit better today?",
	"Your wellbeing matters. Have you been able to take care of your basic needs today?",
	"I'm glad you reached out today. That shows real strength, even when things feel difficult.",
}

var demandMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

var resources = []backend.Resource{
	{
		ID:          "1",
		Title:       "10-Minute Guided Meditation for Anxiety",
		Description: "A gentle guided meditation to help calm anxious thoughts.",
		Type:        "audio",
		Category:    "anxiety",
		Duration:    "10 min",
		Rating:      4.8,
		Thumbnail:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	},
}

// Los fixtures se arman en cada llamada para que nadie mute los compartidos.

func studentBookings() []backend.Booking {
	return []backend.Booking{
		{ID: "1", Date: "2024-01-15", Time: "10:00 AM", Counselor: "Dr. Sarah Smith", Type: backend.SessionVideo, Status: backend.BookingConfirmed},
		{ID: "2", Date: "2024-01-22", Time: "2:00 PM", Counselor: "Dr. Michael Johnson", Type: backend.SessionPhone, Status: backend.BookingPending},
	}
}

func forumPosts() []backend.ForumPost {
	return []backend.ForumPost{
		{
			ID:        "1",
			Title:     "Feeling overwhelmed with finals season",
			Content:   "Does anyone else feel like they're drowning in assignments?",
			Author:    "Anonymous Student",
			Timestamp: "2 hours ago",
			Category:  "academic",
			Likes:     12,
			Comments: []backend.ForumComment{
				{
					ID:        "1",
					Content:   "I totally understand! Breaking things down into smaller tasks has really helped me.",
					Author:    "StudyBuddy",
					Timestamp: "1 hour ago",
					Likes:     5,
				},
			},
		},
	}
}

func adminBookings() []backend.AdminBooking {
	return []backend.AdminBooking{
		{
			ID:           "1",
			StudentName:  "Anonymous Student",
			StudentEmail: "student1@test.com",
			Counselor:    "Dr. Sarah Smith",
			Date:         "2024-01-15",
			Time:         "10:00 AM",
			Type:         backend.SessionVideo,
			Status:       backend.BookingPending,
			Reason:       "anxiety",
		},
	}
}

func flaggedItems() []backend.FlaggedItem {
	return []backend.FlaggedItem{
		{
			ID:           "1",
			Type:         "post",
			Content:      "Sample flagged post content...",
			Author:       "Anonymous",
			ReportReason: "Inappropriate content",
			ReportedAt:   time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			Status:       "pending",
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, time.UTC)
}

func applications() []backend.Application {
	return []backend.Application{
		{ID: "1", PetID: "1", PetName: "Buddy", Status: backend.ApplicationPending, SubmittedAt: day(2024, 1, 15), LastUpdate: day(2024, 1, 16), NextStep: "Reference check in progress"},
		{ID: "2", PetID: "2", PetName: "Luna", Status: backend.ApplicationApproved, SubmittedAt: day(2024, 1, 10), LastUpdate: day(2024, 1, 18), NextStep: "Schedule meet & greet"},
		{ID: "3", PetID: "3", PetName: "Max", Status: backend.ApplicationRejected, SubmittedAt: day(2024, 1, 5), LastUpdate: day(2024, 1, 12), NextStep: "Application closed"},
	}
}

func conversations() []backend.Conversation {
	return []backend.Conversation{
		{
			ID:          "1",
			PetName:     "Buddy",
			LastMessage: "Thank you for your application. We'll be in touch soon!",
			Timestamp:   at(2024, 1, 16, 14, 30),
			Unread:      true,
			Messages: []backend.Message{
				{ID: "1", Sender: "shelter", Text: "Hi! Thank you for your interest in Buddy. We've received your application.", Timestamp: at(2024, 1, 15, 10, 0)},
				{ID: "2", Sender: "user", Text: "Thank you! I'm very excited about the possibility of adopting Buddy. When can I schedule a meet and greet?", Timestamp: at(2024, 1, 15, 10, 30)},
				{ID: "3", Sender: "shelter", Text: "We're currently reviewing your application and checking references. We'll contact you within 2-3 business days to schedule a meeting.", Timestamp: at(2024, 1, 16, 14, 30)},
			},
		},
		{
			ID:          "2",
			PetName:     "Luna",
			LastMessage: "Great news! Your application has been approved.",
			Timestamp:   at(2024, 1, 18, 9, 15),
			Unread:      false,
			Messages: []backend.Message{
				{ID: "1", Sender: "shelter", Text: "Great news! Your application for Luna has been approved. Congratulations!", Timestamp: at(2024, 1, 18, 9, 15)},
			},
		},
	}
}
