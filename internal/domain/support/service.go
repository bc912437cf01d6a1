// Package support expone las operaciones del backend remoto bajo /api.
package support

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"care-portals/internal/ports/backend"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	minMood = 0
	maxMood = 4
)

// Service valida lo mínimo antes de delegar al backend (el mock no valida nada).
type Service struct {
	remote backend.Backend
}

func NewService(remote backend.Backend) *Service {
	return &Service{remote: remote}
}

func (s *Service) Chat(ctx context.Context, message string) (backend.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return backend.ChatReply{}, fmt.Errorf("%w: message required", ErrInvalidInput)
	}
	return s.remote.SendChatMessage(ctx, message)
}

func (s *Service) CreateBooking(ctx context.Context, in backend.BookingRequest) (backend.Booking, error) {
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" || strings.TrimSpace(in.Counselor) == "" {
		return backend.Booking{}, fmt.Errorf("%w: date, time and counselor are required", ErrInvalidInput)
	}
	switch in.Type {
	case backend.SessionVideo, backend.SessionPhone, backend.SessionChat:
	default:
		return backend.Booking{}, fmt.Errorf("%w: session type %q", ErrInvalidInput, in.Type)
	}
	return s.remote.CreateBooking(ctx, in)
}

func (s *Service) Bookings(ctx context.Context) ([]backend.Booking, error) {
	return s.remote.ListBookings(ctx)
}

func (s *Service) SaveMood(ctx context.Context, in backend.MoodEntryRequest) (backend.MoodEntry, error) {
	if in.Mood < minMood || in.Mood > maxMood {
		return backend.MoodEntry{}, fmt.Errorf("%w: mood must be between %d and %d", ErrInvalidInput, minMood, maxMood)
	}
	return s.remote.SaveMoodEntry(ctx, in)
}

func (s *Service) MoodHistory(ctx context.Context) ([]backend.MoodPoint, error) {
	return s.remote.MoodHistory(ctx)
}

func (s *Service) ForumPosts(ctx context.Context) ([]backend.ForumPost, error) {
	return s.remote.ListForumPosts(ctx)
}

func (s *Service) CreateForumPost(ctx context.Context, in backend.ForumPostRequest) (backend.ForumPost, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return backend.ForumPost{}, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Author) == "" {
		in.Author = "Anonymous Student"
	}
	return s.remote.CreateForumPost(ctx, in)
}

func (s *Service) Resources(ctx context.Context, f backend.ResourceFilter) ([]backend.Resource, error) {
	return s.remote.ListResources(ctx, f)
}

func (s *Service) SubmitApplication(ctx context.Context, in backend.ApplicationRequest) (backend.Application, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return backend.Application{}, fmt.Errorf("%w: pet_id required", ErrInvalidInput)
	}
	return s.remote.SubmitApplication(ctx, in)
}

func (s *Service) Applications(ctx context.Context) ([]backend.Application, error) {
	return s.remote.ListApplications(ctx)
}

func (s *Service) Conversations(ctx context.Context) ([]backend.Conversation, error) {
	return s.remote.ListConversations(ctx)
}

func (s *Service) Stats(ctx context.Context) (backend.DashboardStats, error) {
	return s.remote.DashboardStats(ctx)
}

func (s *Service) AllBookings(ctx context.Context) ([]backend.AdminBooking, error) {
	return s.remote.ListAllBookings(ctx)
}

func (s *Service) UpdateBookingStatus(ctx context.Context, id string, status backend.BookingStatus) (backend.BookingStatusUpdate, error) {
	if strings.TrimSpace(id) == "" || !status.Valid() {
		return backend.BookingStatusUpdate{}, fmt.Errorf("%w: booking id and valid status required", ErrInvalidInput)
	}
	return s.remote.UpdateBookingStatus(ctx, id, status)
}

func (s *Service) Flagged(ctx context.Context) ([]backend.FlaggedItem, error) {
	return s.remote.FlaggedContent(ctx)
}

func (s *Service) Moderate(ctx context.Context, id string, action backend.ModerationAction) (backend.ModerationResult, error) {
	if strings.TrimSpace(id) == "" || !action.Valid() {
		return backend.ModerationResult{}, fmt.Errorf("%w: content id and valid action required", ErrInvalidInput)
	}
	return s.remote.ModerateContent(ctx, id, action)
}

func (s *Service) Analytics(ctx context.Context) (backend.Analytics, error) {
	return s.remote.Analytics(ctx)
}
