package service

import (
	"context"
	"time"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/pricing"
	"pulse-events/backend/internal/repository"

	"github.com/google/uuid"
)

type EventService interface {
	CreateEvent(ctx context.Context, event *domain.Event) error
	BatchCreateEvents(ctx context.Context, events []*domain.Event) error
	UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) error
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, request domain.SearchRequest) ([]domain.Event, int, error)
	// Register validates the attendee, prices the tickets and persists the
	// registration with an atomic capacity check.
	Register(ctx context.Context, eventID string, dto domain.RegistrationDTO) (*domain.RegistrationResponse, error)
	// Quote prices a prospective registration without persisting anything.
	Quote(ctx context.Context, eventID string, quantity int, discountCode string) (*domain.PriceBreakdown, error)
	// EventCategoryMap maps event id to category id over all events; fed to
	// the analytics aggregator.
	EventCategoryMap(ctx context.Context) (map[string]string, error)
	// EventTitleMap maps event id to title; fed to the registrations export.
	EventTitleMap(ctx context.Context) (map[string]string, error)
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	if event.Title == "" {
		return domain.ErrValidation("event title is required")
	}
	return s.repo.Save(ctx, event)
}

func (s *eventService) BatchCreateEvents(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return domain.ErrValidation("no events to create")
	}

	now := time.Now().UTC()
	for _, event := range events {
		if event.ID == "" {
			event.ID = uuid.New().String()
		}
		if event.CreatedAt.IsZero() {
			event.CreatedAt = now
		}
		if event.Title == "" {
			return domain.ErrValidation("event title is required for all items")
		}
	}
	return s.repo.BatchSave(ctx, events)
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) error {
	if id == "" {
		return domain.ErrValidation("id is required for update")
	}
	if len(updates) == 0 {
		return domain.ErrValidation("no fields to update")
	}

	// remove "id" from updates map if present to prevent primary key tampering
	delete(updates, "id")

	return s.repo.Update(ctx, id, updates)
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		return nil, domain.ErrValidation("id is required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrValidation("id is required")
	}
	return s.repo.Delete(ctx, id)
}

func (s *eventService) ListEvents(ctx context.Context, req domain.SearchRequest) ([]domain.Event, int, error) {
	if req.PageSize > 100 {
		req.PageSize = 100
	}
	return s.repo.List(ctx, req)
}

func (s *eventService) Register(ctx context.Context, eventID string, dto domain.RegistrationDTO) (*domain.RegistrationResponse, error) {
	if eventID == "" {
		return nil, domain.ErrValidation("event id is required")
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	quantity := dto.Quantity
	if quantity == 0 {
		quantity = 1
	}

	discount, err := pricing.ApplyCode(dto.DiscountCode)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.Breakdown(event.Price, quantity, discount)

	reg := &domain.Registration{
		ID:            uuid.New().String(),
		EventID:       event.ID,
		AttendeeName:  dto.AttendeeName,
		AttendeeEmail: dto.AttendeeEmail,
		AttendeePhone: dto.AttendeePhone,
		Quantity:      quantity,
		Pricing:       breakdown,
		RegisteredAt:  time.Now().UTC(),
	}
	if discount != nil {
		reg.DiscountCode = discount.Code
	}

	if err := s.repo.SaveRegistration(ctx, reg); err != nil {
		return nil, err
	}

	return &domain.RegistrationResponse{
		Success:        true,
		Message:        "You have successfully registered for this event.",
		RegistrationID: reg.ID,
		Attendee: &domain.Attendee{
			Name:         reg.AttendeeName,
			Email:        reg.AttendeeEmail,
			GroupSize:    reg.Quantity,
			RegisteredAt: reg.RegisteredAt,
		},
		Pricing: &reg.Pricing,
	}, nil
}

func (s *eventService) Quote(ctx context.Context, eventID string, quantity int, discountCode string) (*domain.PriceBreakdown, error) {
	if eventID == "" {
		return nil, domain.ErrValidation("event id is required")
	}
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	discount, err := pricing.ApplyCode(discountCode)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.Breakdown(event.Price, quantity, discount)
	return &breakdown, nil
}

func (s *eventService) EventCategoryMap(ctx context.Context) (map[string]string, error) {
	mapping := map[string]string{}
	err := s.forEachEvent(ctx, func(event *domain.Event) {
		if event.CategoryID != "" {
			mapping[event.ID] = event.CategoryID
		}
	})
	return mapping, err
}

func (s *eventService) EventTitleMap(ctx context.Context) (map[string]string, error) {
	titles := map[string]string{}
	err := s.forEachEvent(ctx, func(event *domain.Event) {
		titles[event.ID] = event.Title
	})
	return titles, err
}

// forEachEvent pages through the full collection.
func (s *eventService) forEachEvent(ctx context.Context, fn func(*domain.Event)) error {
	req := domain.SearchRequest{PageSize: 100, Page: 1}
	for {
		events, total, err := s.repo.List(ctx, req)
		if err != nil {
			return err
		}
		for i := range events {
			fn(&events[i])
		}
		if req.Page*req.PageSize >= total || len(events) == 0 {
			return nil
		}
		req.Page++
	}
}
