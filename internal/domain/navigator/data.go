package navigator

import (
	"context"

	"care-portals/internal/domain/catalog"
	"care-portals/internal/domain/session"
	"care-portals/internal/ports/backend"
)

const (
	savedPetsCount = 4
	chatGreeting   = "Hello! I'm Alex, your AI wellness companion. I'm here to listen and support you. How are you feeling today?"
)

type HomeData struct {
	Featured     []catalog.PetResponse         `json:"featured"`
	Testimonials []catalog.TestimonialResponse `json:"testimonials"`
}

type BrowseData struct {
	Pets  []catalog.PetResponse `json:"pets"`
	Total int                   `json:"total"`
}

type PetProfileData struct {
	Pet     catalog.PetResponse   `json:"pet"`
	Similar []catalog.PetResponse `json:"similar"`
}

type ApplicationCard struct {
	backend.Application
	PetImage string `json:"pet_image,omitempty"`
}

type AdopterDashboardData struct {
	Applications  []ApplicationCard      `json:"applications"`
	SavedPets     []catalog.PetResponse  `json:"saved_pets"`
	Conversations []backend.Conversation `json:"conversations"`
}

type StudentDashboardData struct {
	Bookings    []backend.Booking   `json:"bookings"`
	MoodHistory []backend.MoodPoint `json:"mood_history"`
}

type ChatData struct {
	Greeting string `json:"greeting"`
	Guest    bool   `json:"guest"`
}

type MoodTrackerData struct {
	History []backend.MoodPoint `json:"history"`
}

type ForumData struct {
	Posts []backend.ForumPost `json:"posts"`
}

type ResourcesData struct {
	Filter    backend.ResourceFilter `json:"filter"`
	Resources []backend.Resource     `json:"resources"`
}

type ProfileData struct {
	Bookings []backend.Booking `json:"bookings"`
}

type AdminBookingsData struct {
	Bookings []backend.AdminBooking `json:"bookings"`
}

type ModerationData struct {
	Flagged []backend.FlaggedItem `json:"flagged"`
}

// pageData carga los datos de la página ya autorizada. nil = página sin datos.
func (s *Service) pageData(ctx context.Context, v *Variant, p Page, sess *session.Session, req Request) (any, error) {
	if v.Name == VariantPetAdoption {
		return s.adoptionData(ctx, p, req)
	}
	return s.mentalHealthData(ctx, p, sess, req)
}

func (s *Service) adoptionData(ctx context.Context, p Page, req Request) (any, error) {
	switch p.ID {
	case "home":
		featured, err := s.deps.Catalog.Featured(ctx)
		if err != nil {
			return nil, err
		}
		ts, err := s.deps.Catalog.Testimonials(ctx)
		if err != nil {
			return nil, err
		}
		return HomeData{
			Featured:     catalog.ToPetResponses(featured),
			Testimonials: catalog.ToTestimonialResponses(ts),
		}, nil

	case "browse":
		f, err := catalog.ParseFilter(req.param("q"), req.param("species"), req.param("gender"), req.param("size"), req.param("age"))
		if err != nil {
			return nil, err
		}
		pets, err := s.deps.Catalog.ListPets(ctx, f)
		if err != nil {
			return nil, err
		}
		return BrowseData{Pets: catalog.ToPetResponses(pets), Total: len(pets)}, nil

	case "pet-profile":
		pet, err := s.deps.Catalog.GetPet(ctx, req.EntityID)
		if err != nil {
			return nil, err
		}
		similar, err := s.deps.Catalog.Similar(ctx, pet)
		if err != nil {
			return nil, err
		}
		return PetProfileData{Pet: catalog.ToPetResponse(pet), Similar: catalog.ToPetResponses(similar)}, nil

	case "dashboard":
		return s.adopterDashboard(ctx)
	}
	return nil, nil
}

func (s *Service) adopterDashboard(ctx context.Context) (AdopterDashboardData, error) {
	apps, err := s.deps.Backend.ListApplications(ctx)
	if err != nil {
		return AdopterDashboardData{}, err
	}
	convs, err := s.deps.Backend.ListConversations(ctx)
	if err != nil {
		return AdopterDashboardData{}, err
	}
	pets, err := s.deps.Catalog.ListPets(ctx, catalog.Filter{})
	if err != nil {
		return AdopterDashboardData{}, err
	}

	byID := make(map[string]catalog.Pet, len(pets))
	for _, p := range pets {
		byID[p.ID] = p
	}
	cards := make([]ApplicationCard, 0, len(apps))
	for _, a := range apps {
		card := ApplicationCard{Application: a}
		if p, ok := byID[a.PetID]; ok {
			if card.PetName == "" {
				card.PetName = p.Name
			}
			if len(p.Images) > 0 {
				card.PetImage = p.Images[0]
			}
		}
		cards = append(cards, card)
	}

	if len(pets) > savedPetsCount {
		pets = pets[:savedPetsCount]
	}
	return AdopterDashboardData{
		Applications:  cards,
		SavedPets:     catalog.ToPetResponses(pets),
		Conversations: convs,
	}, nil
}

func (s *Service) mentalHealthData(ctx context.Context, p Page, sess *session.Session, req Request) (any, error) {
	b := s.deps.Backend
	switch p.ID {
	case "dashboard":
		bookings, err := b.ListBookings(ctx)
		if err != nil {
			return nil, err
		}
		history, err := b.MoodHistory(ctx)
		if err != nil {
			return nil, err
		}
		return StudentDashboardData{Bookings: bookings, MoodHistory: history}, nil

	case "chatbot":
		return ChatData{Greeting: chatGreeting, Guest: sess != nil && sess.Role == session.RoleAnonymous}, nil

	case "mood-tracker":
		history, err := b.MoodHistory(ctx)
		if err != nil {
			return nil, err
		}
		return MoodTrackerData{History: history}, nil

	case "forum":
		posts, err := b.ListForumPosts(ctx)
		if err != nil {
			return nil, err
		}
		return ForumData{Posts: posts}, nil

	case "resources":
		f := backend.ResourceFilter{Type: req.param("type"), Category: req.param("category")}
		items, err := b.ListResources(ctx, f)
		if err != nil {
			return nil, err
		}
		return ResourcesData{Filter: f, Resources: items}, nil

	case "profile":
		bookings, err := b.ListBookings(ctx)
		if err != nil {
			return nil, err
		}
		return ProfileData{Bookings: bookings}, nil

	case "admin-dashboard":
		return b.DashboardStats(ctx)

	case "admin-bookings":
		items, err := b.ListAllBookings(ctx)
		if err != nil {
			return nil, err
		}
		return AdminBookingsData{Bookings: items}, nil

	case "admin-moderation":
		items, err := b.FlaggedContent(ctx)
		if err != nil {
			return nil, err
		}
		return ModerationData{Flagged: items}, nil

	case "admin-analytics":
		return b.Analytics(ctx)
	}
	return nil, nil
}
