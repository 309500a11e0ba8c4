package transport

import (
	"encoding/json"
	"net/http"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/service"
)

// AdminHandler bundles the dashboard surface: analytics, audit log
// management and content management. The whole subtree is mounted behind
// WithAdminAuth.
type AdminHandler struct {
	events  service.EventService
	audit   service.AuditService
	content service.ContentService
	mux     *http.ServeMux
}

func NewAdminHandler(events service.EventService, audit service.AuditService, content service.ContentService) *AdminHandler {
	h := &AdminHandler{
		events:  events,
		audit:   audit,
		content: content,
		mux:     http.NewServeMux(),
	}
	h.routes()
	return h
}

func (h *AdminHandler) routes() {
	h.mux.HandleFunc("GET /analytics", h.handleAnalytics)

	h.mux.HandleFunc("GET /audit/{$}", h.handleAuditList)
	h.mux.HandleFunc("DELETE /audit/{$}", h.handleAuditClear)
	h.mux.HandleFunc("GET /audit/export", h.handleAuditExportJSON)
	h.mux.HandleFunc("GET /audit/export.csv", h.handleAuditExportCSV)
	h.mux.HandleFunc("GET /registrations/export.csv", h.handleRegistrationsExportCSV)

	h.mux.HandleFunc("GET /content", h.handleMarketingContent)
	h.mux.HandleFunc("POST /banners", h.handleBannerCreate)
	h.mux.HandleFunc("PUT /banners/{id}", h.handleBannerUpdate)
	h.mux.HandleFunc("DELETE /banners/{id}", h.handleBannerDelete)
	h.mux.HandleFunc("PUT /promotional", h.handlePromotionalUpdate)

	h.mux.HandleFunc("POST /categories", h.handleCategoryCreate)
	h.mux.HandleFunc("PUT /categories/{id}", h.handleCategoryUpdate)
	h.mux.HandleFunc("DELETE /categories/{id}", h.handleCategoryDelete)
}

func (h *AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// handleAnalytics derives the analytics snapshot
// @Summary Analytics Snapshot
// @Description Aggregate views, registrations and searches over the trailing 30 days
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.APIResponse{data=domain.AnalyticsData}
// @Router /admin/analytics [get]
func (h *AdminHandler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categoryMap, err := h.events.EventCategoryMap(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	data := h.audit.GetAnalyticsData(r.Context(), categoryMap)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: data})
}

// handleAuditList lists the audit log
// @Summary List Audit Logs
// @Description Get all audit log entries, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.APIResponse{data=[]domain.AuditLogEntry}
// @Router /admin/audit [get]
func (h *AdminHandler) handleAuditList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	logs := h.audit.GetAuditLogs(r.Context())
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: logs})
}

// handleAuditClear deletes the audit log
// @Summary Clear Audit Logs
// @Description Delete the entire audit log collection
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.APIResponse{data=string}
// @Router /admin/audit [delete]
func (h *AdminHandler) handleAuditClear(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.audit.ClearAuditLogs(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "Cleared successfully"})
}

// handleAuditExportJSON exports the audit log as JSON
// @Summary Export Audit Logs (JSON)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {string} string "Indented JSON document"
// @Router /admin/audit/export [get]
func (h *AdminHandler) handleAuditExportJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="audit-logs.json"`)
	_, _ = w.Write([]byte(h.audit.ExportAuditLogs(r.Context())))
}

// handleAuditExportCSV exports the audit log as CSV
// @Summary Export Audit Logs (CSV)
// @Tags admin
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "CSV document"
// @Router /admin/audit/export.csv [get]
func (h *AdminHandler) handleAuditExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="audit-logs.csv"`)
	_, _ = w.Write([]byte(h.audit.ExportAuditLogsToCSV(r.Context())))
}

// handleRegistrationsExportCSV exports register actions as CSV
// @Summary Export Registrations (CSV)
// @Tags admin
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "CSV document"
// @Router /admin/registrations/export.csv [get]
func (h *AdminHandler) handleRegistrationsExportCSV(w http.ResponseWriter, r *http.Request) {
	titles, err := h.events.EventTitleMap(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		respondError(w, err)
		return
	}
	logs := h.audit.GetAuditLogs(r.Context())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="registrations.csv"`)
	_, _ = w.Write([]byte(h.audit.ExportRegistrationsToCSV(logs, titles)))
}

// handleMarketingContent returns the full marketing document
// @Summary Marketing Content
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.APIResponse{data=domain.MarketingContent}
// @Router /admin/content [get]
func (h *AdminHandler) handleMarketingContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	content, err := h.content.GetMarketingContent(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: content})
}

// handleBannerCreate adds a marketing banner
// @Summary Create Banner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param banner body domain.BannerDTO true "Banner Data"
// @Success 201 {object} domain.APIResponse{data=domain.MarketingBanner}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Router /admin/banners [post]
func (h *AdminHandler) handleBannerCreate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	dto, err := decodeBanner(r)
	if err != nil {
		respondError(w, err)
		return
	}
	banner, err := h.content.AddBanner(r.Context(), bannerFromDTO(dto, ""))
	if err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: banner})
}

// handleBannerUpdate replaces a marketing banner
// @Summary Update Banner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Param banner body domain.BannerDTO true "Banner Data"
// @Success 200 {object} domain.APIResponse{data=string}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Router /admin/banners/{id} [put]
func (h *AdminHandler) handleBannerUpdate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := r.PathValue("id")
	dto, err := decodeBanner(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.content.UpdateBanner(r.Context(), id, bannerFromDTO(dto, id)); err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "Updated successfully"})
}

// handleBannerDelete removes a marketing banner
// @Summary Delete Banner
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 200 {object} domain.APIResponse{data=string}
// @Router /admin/banners/{id} [delete]
func (h *AdminHandler) handleBannerDelete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.content.DeleteBanner(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "Deleted successfully"})
}

// handlePromotionalUpdate replaces the promotional block
// @Summary Update Promotional Content
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param content body domain.PromotionalContent true "Promotional Content"
// @Success 200 {object} domain.APIResponse{data=string}
// @Router /admin/promotional [put]
func (h *AdminHandler) handlePromotionalUpdate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var promo domain.PromotionalContent
	if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
		respondError(w, domain.ErrValidation("Invalid JSON body"))
		return
	}
	if err := h.content.UpdatePromotionalContent(r.Context(), promo); err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "Updated successfully"})
}

// handleCategoryCreate adds a category
// @Summary Create Category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body domain.CategoryDTO true "Category Data"
// @Success 201 {object} domain.APIResponse{data=domain.CategoryConfig}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Router /admin/categories [post]
func (h *AdminHandler) handleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	dto, err := decodeCategory(r)
	if err != nil {
		respondError(w, err)
		return
	}
	category, err := h.content.AddCategory(r.Context(), categoryFromDTO(dto, ""))
	if err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: category})
}

// handleCategoryUpdate replaces a category
// @Summary Update Category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body domain.CategoryDTO true "Category Data"
// @Success 200 {object} domain.APIResponse{data=string}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Router /admin/categories/{id} [put]
func (h *AdminHandler) handleCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := r.PathValue("id")
	dto, err := decodeCategory(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.content.UpdateCategory(r.Context(), id, categoryFromDTO(dto, id)); err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "Updated successfully"})
}

// handleCategoryDelete removes a category
// @Summary Delete Category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} domain.APIResponse{data=string}
// @Router /admin/categories/{id} [delete]
func (h *AdminHandler) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.content.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: "Deleted successfully"})
}

func decodeBanner(r *http.Request) (*domain.BannerDTO, error) {
	var dto domain.BannerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		return nil, domain.ErrValidation("Invalid JSON body")
	}
	if err := domain.Validate.Struct(dto); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	return &dto, nil
}

func bannerFromDTO(dto *domain.BannerDTO, id string) domain.MarketingBanner {
	return domain.MarketingBanner{
		ID:              id,
		Title:           dto.Title,
		Subtitle:        dto.Subtitle,
		Description:     dto.Description,
		CTAText:         dto.CTAText,
		CTALink:         dto.CTALink,
		BackgroundColor: dto.BackgroundColor,
		TextColor:       dto.TextColor,
		Enabled:         dto.Enabled,
		Priority:        dto.Priority,
	}
}

func decodeCategory(r *http.Request) (*domain.CategoryDTO, error) {
	var dto domain.CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		return nil, domain.ErrValidation("Invalid JSON body")
	}
	if err := domain.Validate.Struct(dto); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	return &dto, nil
}

func categoryFromDTO(dto *domain.CategoryDTO, id string) domain.CategoryConfig {
	return domain.CategoryConfig{
		ID:              id,
		Name:            dto.Name,
		Description:     dto.Description,
		Icon:            dto.Icon,
		Color:           dto.Color,
		BackgroundColor: dto.BackgroundColor,
		TextColor:       dto.TextColor,
	}
}
