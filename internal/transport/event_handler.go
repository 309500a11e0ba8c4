package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/service"
)

type EventHandler struct {
	service service.EventService
	audit   service.AuditService
	mux     *http.ServeMux
}

func NewEventHandler(svc service.EventService, audit service.AuditService) *EventHandler {
	h := &EventHandler{
		service: svc,
		audit:   audit,
		mux:     http.NewServeMux(),
	}
	h.routes()
	return h
}

func (h *EventHandler) routes() {
	// Collection routes (matched at root of stripped prefix)
	h.mux.HandleFunc("GET /{$}", h.handleList)
	h.mux.HandleFunc("POST /{$}", h.handleCreate)
	h.mux.HandleFunc("POST /batch", h.handleBatchCreate)

	// Item routes (matched with path value)
	h.mux.HandleFunc("GET /{id}", h.handleGet)
	h.mux.HandleFunc("PUT /{id}", h.handleUpdate)
	h.mux.HandleFunc("DELETE /{id}", h.handleDelete)
	h.mux.HandleFunc("POST /{id}/register", h.handleRegister)
	h.mux.HandleFunc("POST /{id}/quote", h.handleQuote)
}

func (h *EventHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.mux.ServeHTTP(w, r)
}

// handleCreate creates a new event
// @Summary Create Event
// @Description Create a new event item
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.EventDTO true "Event Data"
// @Success 201 {object} domain.APIResponse{data=string} "Returns Event ID"
// @Failure 400 {object} domain.APIResponse{error=string}
// @Router /events [post]
func (h *EventHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var dto domain.EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, domain.ErrValidation("Invalid JSON body"))
		return
	}
	if err := domain.Validate.Struct(dto); err != nil {
		respondError(w, domain.ErrValidation(err.Error()))
		return
	}
	event, err := domain.EventDTOToModel(&dto)
	if err != nil {
		respondError(w, domain.ErrValidation(err.Error()))
		return
	}
	if err := h.service.CreateEvent(r.Context(), event); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: event.ID})
}

// handleBatchCreate creates multiple events
// @Summary Batch Create Events
// @Description Create multiple events in one go
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch body domain.BatchEventRequest true "Batch Data"
// @Success 201 {object} domain.APIResponse{data=string}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Router /events/batch [post]
func (h *EventHandler) handleBatchCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.BatchEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation("Invalid JSON body"))
		return
	}
	if err := domain.Validate.Struct(req); err != nil {
		respondError(w, domain.ErrValidation(err.Error()))
		return
	}

	var events []*domain.Event
	for i, dto := range req.Events {
		model, err := domain.EventDTOToModel(&dto)
		if err != nil {
			respondError(w, domain.ErrValidation(fmt.Sprintf("Item %d: %v", i, err)))
			return
		}
		events = append(events, model)
	}

	if err := h.service.BatchCreateEvents(r.Context(), events); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: fmt.Sprintf("Successfully created %d events", len(events))})
}

// handleUpdate updates an existing event
// @Summary Update Event
// @Description Update specific fields of an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body map[string]interface{} true "Fields to update"
// @Success 200 {object} domain.APIResponse{data=string}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Router /events/{id} [put]
func (h *EventHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var updates map[string]interface{}
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&updates); err != nil {
		respondError(w, domain.ErrValidation("Invalid JSON body"))
		return
	}
	for k, v := range updates {
		if num, ok := v.(json.Number); ok {
			if f, err := num.Float64(); err == nil {
				updates[k] = f
			}
		}
	}
	if err := h.service.UpdateEvent(r.Context(), id, updates); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "Updated successfully"})
}

// handleList lists events with filtering and search
// @Summary List Events
// @Description Get a list of events with optional filters
// @Tags events
// @Accept json
// @Produce json
// @Param category query string false "Filter by Category ID"
// @Param type query string false "Filter by Type (online, physical)"
// @Param search query string false "Free-text search over title and description"
// @Param date query string false "Filter by Day (2006-01-02)"
// @Param page_size query int false "Page Size (1-100)"
// @Param page query int false "Page Number"
// @Success 200 {object} domain.APIResponse{data=[]domain.Event}
// @Router /events [get]
func (h *EventHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dto := domain.EventListDTO{
		Category: q.Get("category"),
		Type:     q.Get("type"),
		Search:   q.Get("search"),
		Date:     q.Get("date"),
		PageSize: 20,
		Page:     1,
	}
	if val := q.Get("page_size"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			respondError(w, domain.ErrValidation("page_size must be a valid integer"))
			return
		}
		dto.PageSize = i
	}
	if val := q.Get("page"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			respondError(w, domain.ErrValidation("page must be a valid integer"))
			return
		}
		dto.Page = i
	}
	if dto.Category == "all" {
		dto.Category = ""
	}
	if err := domain.Validate.Struct(dto); err != nil {
		respondError(w, domain.ErrValidation(err.Error()))
		return
	}

	filters := domain.FilterRequest{
		Category: dto.Category,
		Type:     domain.EventType(dto.Type),
		Search:   dto.Search,
	}
	if dto.Date != "" {
		// Format already validated by the DTO.
		t, _ := time.Parse("2006-01-02", dto.Date)
		filters.Date = &t
	}

	events, total, err := h.service.ListEvents(r.Context(), domain.SearchRequest{
		Filters:  filters,
		PageSize: dto.PageSize,
		Page:     dto.Page,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	if dto.Search != "" {
		h.audit.LogAction(r.Context(), domain.AuditLogEntry{
			Action:   domain.ActionSearch,
			Resource: "events",
			Metadata: map[string]any{domain.MetaSearchTerm: dto.Search},
		})
	} else if dto.Category != "" || dto.Type != "" || dto.Date != "" {
		h.audit.LogAction(r.Context(), domain.AuditLogEntry{
			Action:   domain.ActionFilter,
			Resource: "events",
			Metadata: map[string]any{"category": dto.Category, "type": dto.Type, "date": dto.Date},
		})
	}

	_ = json.NewEncoder(w).Encode(domain.APIResponse{
		Data: events,
		Meta: &domain.Meta{Page: dto.Page, PageSize: dto.PageSize, Total: total},
	})
}

// handleGet retrieves a single event
// @Summary Get Event
// @Description Get details of a specific event by ID
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.APIResponse{data=domain.Event}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Router /events/{id} [get]
func (h *EventHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	event, err := h.service.GetEvent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	h.audit.LogAction(r.Context(), domain.AuditLogEntry{
		Action:     domain.ActionView,
		Resource:   "event",
		ResourceID: event.ID,
	})

	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: event})
}

// handleDelete deletes an event
// @Summary Delete Event
// @Description Remove an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} domain.APIResponse{data=string}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Router /events/{id} [delete]
func (h *EventHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.DeleteEvent(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "Deleted successfully"})
}

// handleRegister registers an attendee for an event
// @Summary Register for Event
// @Description Register an attendee with ticket quantity and optional discount code
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param registration body domain.RegistrationDTO true "Registration Data"
// @Success 201 {object} domain.APIResponse{data=domain.RegistrationResponse}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Router /events/{id}/register [post]
func (h *EventHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var dto domain.RegistrationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, domain.ErrValidation("Invalid JSON body"))
		return
	}
	if err := domain.Validate.Struct(dto); err != nil {
		respondError(w, domain.ErrValidation(err.Error()))
		return
	}

	resp, err := h.service.Register(r.Context(), id, dto)
	if err != nil {
		respondError(w, err)
		return
	}

	// Best-effort audit trail; the registration already succeeded.
	h.audit.LogAction(r.Context(), domain.AuditLogEntry{
		Action:     domain.ActionRegister,
		Resource:   "event",
		ResourceID: id,
		Metadata: map[string]any{
			domain.MetaAttendeeName:   dto.AttendeeName,
			domain.MetaAttendeeEmail:  dto.AttendeeEmail,
			domain.MetaRegistrationID: resp.RegistrationID,
			"quantity":                resp.Attendee.GroupSize,
			"total":                   resp.Pricing.Total,
		},
	})

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: resp})
}

// handleQuote prices a prospective registration
// @Summary Quote Registration Price
// @Description Compute subtotal, discount and total for a quantity and optional discount code
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param quote body domain.QuoteDTO true "Quote Data"
// @Success 200 {object} domain.APIResponse{data=domain.PriceBreakdown}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Router /events/{id}/quote [post]
func (h *EventHandler) handleQuote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var dto domain.QuoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, domain.ErrValidation("Invalid JSON body"))
		return
	}
	if err := domain.Validate.Struct(dto); err != nil {
		respondError(w, domain.ErrValidation(err.Error()))
		return
	}

	breakdown, err := h.service.Quote(r.Context(), id, dto.Quantity, dto.DiscountCode)
	if err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: breakdown})
}
