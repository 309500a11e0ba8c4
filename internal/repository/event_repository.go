package repository

import (
	"context"
	"strings"
	"time"

	"pulse-events/backend/internal/domain"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CollectionEvents        = "events"
	CollectionRegistrations = "registrations"
)

// ErrSoldOut is surfaced when a registration would exceed event capacity.
var ErrSoldOut = domain.ErrValidation("event is sold out")

type EventRepository interface {
	Save(ctx context.Context, event *domain.Event) error
	// BatchSave persists several events in one bulk write.
	BatchSave(ctx context.Context, events []*domain.Event) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, search domain.SearchRequest) ([]domain.Event, int, error)
	// SaveRegistration atomically checks capacity, increments the event's
	// registered counter and persists the registration document.
	SaveRegistration(ctx context.Context, reg *domain.Registration) error
	ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error)
}

type eventRepo struct {
	client *firestore.Client
}

func NewEventRepository(client *firestore.Client) EventRepository {
	return &eventRepo{client: client}
}

func (r *eventRepo) Save(ctx context.Context, event *domain.Event) error {
	_, err := r.client.Collection(CollectionEvents).Doc(event.ID).Set(ctx, event)
	return err
}

func (r *eventRepo) BatchSave(ctx context.Context, events []*domain.Event) error {
	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(events))
	for _, event := range events {
		job, err := bw.Set(r.client.Collection(CollectionEvents).Doc(event.ID), event)
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
	}
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return err
		}
	}
	return nil
}

func (r *eventRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	_, err := r.client.Collection(CollectionEvents).Doc(id).Set(ctx, updates, firestore.MergeAll)
	return err
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionEvents).Doc(id).Delete(ctx)
	return err
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	doc, err := r.client.Collection(CollectionEvents).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var event domain.Event
	if err := doc.DataTo(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// List applies the structured filters in Firestore and the free-text search
// in memory, then pages the result. Total reflects the filtered count before
// paging so the client can render page controls.
func (r *eventRepo) List(ctx context.Context, search domain.SearchRequest) ([]domain.Event, int, error) {
	q := r.client.Collection(CollectionEvents).Query

	f := search.Filters
	if f.Category != "" {
		q = q.Where("category_id", "==", f.Category)
	}
	if f.Type != "" {
		q = q.Where("type", "==", string(f.Type))
	}
	if f.Date != nil {
		dayStart := f.Date.Truncate(24 * time.Hour)
		q = q.Where("date", ">=", dayStart).Where("date", "<", dayStart.AddDate(0, 0, 1))
	}
	q = q.OrderBy("date", firestore.Asc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var events []domain.Event
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		var e domain.Event
		if err := doc.DataTo(&e); err != nil {
			return nil, 0, err
		}
		if !matchesSearch(&e, f.Search) {
			continue
		}
		events = append(events, e)
	}

	total := len(events)

	limit := search.PageSize
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	page := search.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset >= len(events) {
		return []domain.Event{}, total, nil
	}
	end := offset + limit
	if end > len(events) {
		end = len(events)
	}
	return events[offset:end], total, nil
}

// matchesSearch does a case-insensitive substring match over title and
// description. Firestore has no native full-text search, so this runs on the
// already-filtered result set.
func matchesSearch(e *domain.Event, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Title), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle)
}

func (r *eventRepo) SaveRegistration(ctx context.Context, reg *domain.Registration) error {
	eventRef := r.client.Collection(CollectionEvents).Doc(reg.EventID)
	regRef := r.client.Collection(CollectionRegistrations).Doc(reg.ID)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(eventRef)
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		var event domain.Event
		if err := doc.DataTo(&event); err != nil {
			return err
		}
		if event.Capacity > 0 && event.Registered+reg.Quantity > event.Capacity {
			return ErrSoldOut
		}
		if err := tx.Update(eventRef, []firestore.Update{
			{Path: "registered", Value: event.Registered + reg.Quantity},
		}); err != nil {
			return err
		}
		return tx.Set(regRef, reg)
	})
}

func (r *eventRepo) ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	q := r.client.Collection(CollectionRegistrations).Query
	if eventID != "" {
		q = q.Where("event_id", "==", eventID)
	}
	iter := q.Documents(ctx)
	defer iter.Stop()

	var regs []domain.Registration
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var reg domain.Registration
		if err := doc.DataTo(&reg); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, nil
}
