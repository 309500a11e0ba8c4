package transport

import (
	"encoding/json"
	"net/http"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/service"
)

type TrackingHandler struct {
	audit service.AuditService
	mux   *http.ServeMux
}

func NewTrackingHandler(audit service.AuditService) *TrackingHandler {
	h := &TrackingHandler{
		audit: audit,
		mux:   http.NewServeMux(),
	}
	h.routes()
	return h
}

func (h *TrackingHandler) routes() {
	// POST /tracking/ (Append)
	h.mux.HandleFunc("POST /{$}", h.handleCreate)
}

func (h *TrackingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.mux.ServeHTTP(w, r)
}

// handleCreate appends an audit log entry
// @Summary Log Interaction
// @Description Append a user interaction to the audit log. Persistence is best-effort; a valid entry is always accepted.
// @Tags tracking
// @Accept json
// @Produce json
// @Param entry body domain.AuditLogDTO true "Audit Log Entry"
// @Success 202 {object} domain.APIResponse{data=string}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Router /tracking [post]
func (h *TrackingHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var dto domain.AuditLogDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, domain.ErrValidation("Invalid JSON"))
		return
	}
	if err := domain.Validate.Struct(dto); err != nil {
		respondError(w, domain.ErrValidation(err.Error()))
		return
	}

	h.audit.LogAction(r.Context(), domain.AuditLogEntry{
		Action:     domain.Action(dto.Action),
		Resource:   dto.Resource,
		ResourceID: dto.ResourceID,
		Metadata:   dto.Metadata,
		UserID:     dto.UserID,
	})

	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "accepted"})
}
