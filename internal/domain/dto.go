package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// AuditLogDTO is the API input for POST /tracking. The id and timestamp are
// assigned server-side at append time.
type AuditLogDTO struct {
	Action     string         `json:"action" validate:"required,oneof=view register search filter click"`
	Resource   string         `json:"resource" validate:"required"`
	ResourceID string         `json:"resourceId"`
	Metadata   map[string]any `json:"metadata"`
	UserID     string         `json:"userId"`
}

// RegistrationDTO is the API input for POST /events/{id}/register.
type RegistrationDTO struct {
	AttendeeName  string `json:"attendeeName" validate:"required,min=2"`
	AttendeeEmail string `json:"attendeeEmail" validate:"required,email"`
	AttendeePhone string `json:"attendeePhone" validate:"omitempty,min=5"`
	Quantity      int    `json:"quantity" validate:"omitempty,gte=1,lte=10"`
	DiscountCode  string `json:"discountCode"`
}

// QuoteDTO is the API input for POST /events/{id}/quote: the on-screen price
// summary recomputed as the user edits quantity or discount code.
type QuoteDTO struct {
	Quantity     int    `json:"quantity" validate:"required,gte=1,lte=10"`
	DiscountCode string `json:"discountCode"`
}

// EventDTO is the API input for creating events.
type EventDTO struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	CategoryID  string   `json:"categoryId"`
	Category    string   `json:"category"`
	Type        string   `json:"type" validate:"omitempty,oneof=online physical"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Price       float64  `json:"price" validate:"gte=0"`
	Image       string   `json:"image"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

// BatchEventRequest is the API input for bulk-seeding events.
type BatchEventRequest struct {
	Events []EventDTO `json:"events" validate:"required,min=1,max=100,dive"`
}

// EventListDTO binds and validates the query parameters of GET /events.
type EventListDTO struct {
	Category string `validate:"omitempty"`
	Type     string `validate:"omitempty,oneof=online physical"`
	Search   string
	Date     string `validate:"omitempty,datetime=2006-01-02"`
	PageSize int    `validate:"gte=1,lte=100"`
	Page     int    `validate:"gte=1"`
}

// BannerDTO is the API input for creating or replacing a marketing banner.
type BannerDTO struct {
	Title           string `json:"title" validate:"required"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	CTAText         string `json:"ctaText"`
	CTALink         string `json:"ctaLink"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Enabled         bool   `json:"enabled"`
	Priority        int    `json:"priority" validate:"gte=0"`
}

// CategoryDTO is the API input for creating or replacing a category.
type CategoryDTO struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

// EventDTOToModel converts a validated EventDTO into an Event.
func EventDTOToModel(dto *EventDTO) (*Event, error) {
	date, err := time.Parse(time.RFC3339, dto.Date)
	if err != nil {
		return nil, err
	}
	return &Event{
		Title:        dto.Title,
		Description:  dto.Description,
		Date:         date,
		Time:         dto.Time,
		Location:     dto.Location,
		CategoryID:   dto.CategoryID,
		CategoryName: dto.Category,
		Type:         EventType(dto.Type),
		Capacity:     dto.Capacity,
		Price:        dto.Price,
		Image:        dto.Image,
		Organizer:    dto.Organizer,
		Tags:         dto.Tags,
	}, nil
}
