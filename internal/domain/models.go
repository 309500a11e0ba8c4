package domain

import (
	"time"
)

// Action classifies an audit log entry. The set is closed; anything else is
// rejected at the transport boundary.
type Action string

const (
	ActionView     Action = "view"
	ActionRegister Action = "register"
	ActionSearch   Action = "search"
	ActionFilter   Action = "filter"
	ActionClick    Action = "click"
)

// Conventional metadata keys used by audit log writers.
const (
	MetaAttendeeName   = "attendeeName"
	MetaAttendeeEmail  = "attendeeEmail"
	MetaRegistrationID = "registrationId"
	MetaSearchTerm     = "searchTerm"
	MetaButtonText     = "buttonText"
)

// AuditLogEntry is a single immutable record of a user interaction.
// The whole collection is persisted as one JSON document in the key-value
// store, capped at 1000 entries with oldest-first eviction.
type AuditLogEntry struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Action     Action         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID string         `json:"resourceId,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	UserID     string         `json:"userId,omitempty"`
}

// EventStat pairs an event with its view and registration counts.
type EventStat struct {
	EventID       string `json:"eventId"`
	Views         int    `json:"views"`
	Registrations int    `json:"registrations"`
}

// SearchTermStat is a search term with its frequency.
type SearchTermStat struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// DateRange bounds the analytics window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AnalyticsData is the snapshot derived from the audit log over the trailing
// 30-day window. It is recomputed on every request and never persisted.
type AnalyticsData struct {
	TotalViews            int                    `json:"totalViews"`
	TotalRegistrations    int                    `json:"totalRegistrations"`
	TotalSearches         int                    `json:"totalSearches"`
	CategoryViews         map[string]int         `json:"categoryViews"`
	CategoryRegistrations map[string]int         `json:"categoryRegistrations"`
	CategoryEventCounts   map[string]int         `json:"categoryEventCounts"`
	EventViews            map[string]int         `json:"eventViews"`
	RegistrationCounts    map[string]int         `json:"registrationCounts"`
	PopularEvents         []EventStat            `json:"popularEvents"`
	EventsByCategory      map[string][]EventStat `json:"eventsByCategory"`
	SearchTerms           []SearchTermStat       `json:"searchTerms"`
	DateRange             DateRange              `json:"dateRange"`
}

// DiscountType distinguishes percentage codes from fixed per-ticket amounts.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DiscountCode is an entry in the static discount table.
type DiscountCode struct {
	Code     string       `json:"code"`
	Type     DiscountType `json:"type"`
	Discount float64      `json:"discount"`
}

// PriceBreakdown is the computed cost summary for a registration.
type PriceBreakdown struct {
	PricePerTicket float64 `json:"pricePerTicket" firestore:"price_per_ticket"`
	Quantity       int     `json:"quantity" firestore:"quantity"`
	Subtotal       float64 `json:"subtotal" firestore:"subtotal"`
	DiscountAmount float64 `json:"discountAmount" firestore:"discount_amount"`
	Total          float64 `json:"total" firestore:"total"`
}

// EventType distinguishes online from physical events.
type EventType string

const (
	EventOnline   EventType = "online"
	EventPhysical EventType = "physical"
)

// Event represents the database entity and the DTO returned to clients.
type Event struct {
	ID           string    `json:"id" firestore:"id"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description,omitempty" firestore:"description"`
	Date         time.Time `json:"date" firestore:"date"`
	Time         string    `json:"time,omitempty" firestore:"time"`
	Location     string    `json:"location,omitempty" firestore:"location"`
	CategoryID   string    `json:"categoryId,omitempty" firestore:"category_id"`
	CategoryName string    `json:"category,omitempty" firestore:"category_name"`
	Type         EventType `json:"type,omitempty" firestore:"type"`
	Capacity     int       `json:"capacity,omitempty" firestore:"capacity"`
	Registered   int       `json:"registered" firestore:"registered"`
	Price        float64   `json:"price" firestore:"price"`
	Image        string    `json:"image,omitempty" firestore:"image"`
	Organizer    string    `json:"organizer,omitempty" firestore:"organizer"`
	Tags         []string  `json:"tags,omitempty" firestore:"tags"`
	CreatedAt    time.Time `json:"created_at" firestore:"created_at"`
}

// Registration is a persisted event registration, pricing included.
type Registration struct {
	ID            string         `json:"registrationId" firestore:"id"`
	EventID       string         `json:"eventId" firestore:"event_id"`
	AttendeeName  string         `json:"attendeeName" firestore:"attendee_name"`
	AttendeeEmail string         `json:"attendeeEmail" firestore:"attendee_email"`
	AttendeePhone string         `json:"attendeePhone,omitempty" firestore:"attendee_phone"`
	Quantity      int            `json:"quantity" firestore:"quantity"`
	DiscountCode  string         `json:"discountCode,omitempty" firestore:"discount_code"`
	Pricing       PriceBreakdown `json:"pricing" firestore:"pricing"`
	RegisteredAt  time.Time      `json:"registeredAt" firestore:"registered_at"`
}

// RegistrationResponse mirrors the shape the web client expects back from
// POST /events/{id}/register.
type RegistrationResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message,omitempty"`
	RegistrationID string          `json:"registrationId,omitempty"`
	Attendee       *Attendee       `json:"attendee,omitempty"`
	Pricing        *PriceBreakdown `json:"pricing,omitempty"`
}

// Attendee is the confirmation payload for a successful registration.
type Attendee struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	GroupSize    int       `json:"groupSize,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// FilterRequest encapsulates event listing filters.
type FilterRequest struct {
	Category string
	Type     EventType
	Search   string
	Date     *time.Time
}

// SearchRequest is the composite request object for listing events.
type SearchRequest struct {
	Filters  FilterRequest
	PageSize int
	Page     int
}

// CategoryConfig is a managed event category.
type CategoryConfig struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Icon            string `json:"icon,omitempty"`
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

// MarketingBanner is a managed homepage banner.
type MarketingBanner struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	Description     string `json:"description,omitempty"`
	CTAText         string `json:"ctaText,omitempty"`
	CTALink         string `json:"ctaLink,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Enabled         bool   `json:"enabled"`
	Priority        int    `json:"priority"`
}

// PromotionalFeature is one bullet of the promotional block.
type PromotionalFeature struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// PromotionalContent is the headline block shown next to the banners.
type PromotionalContent struct {
	Headline string               `json:"headline"`
	Features []PromotionalFeature `json:"features"`
}

// MarketingContent is the full managed marketing document.
type MarketingContent struct {
	Banners            []MarketingBanner  `json:"banners"`
	PromotionalContent PromotionalContent `json:"promotionalContent"`
}

// APIResponse is a standard wrapper for responses.
type APIResponse struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
	Meta  interface{} `json:"meta,omitempty"`
}

// Meta carries pagination info.
type Meta struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
	Total    int `json:"total,omitempty"`
}
