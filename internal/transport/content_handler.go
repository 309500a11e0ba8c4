package transport

import (
	"encoding/json"
	"net/http"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/service"
)

// ContentHandler serves the public read side of the managed content:
// active banners and the category list. Management lives under /admin/.
type ContentHandler struct {
	service service.ContentService
	mux     *http.ServeMux
}

func NewContentHandler(svc service.ContentService) *ContentHandler {
	h := &ContentHandler{
		service: svc,
		mux:     http.NewServeMux(),
	}
	h.routes()
	return h
}

func (h *ContentHandler) routes() {
	h.mux.HandleFunc("GET /banners", h.handleBanners)
	h.mux.HandleFunc("GET /categories", h.handleCategories)
}

func (h *ContentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.mux.ServeHTTP(w, r)
}

// handleBanners lists active marketing banners
// @Summary Active Banners
// @Description Get enabled marketing banners ordered by priority
// @Tags content
// @Produce json
// @Success 200 {object} domain.APIResponse{data=[]domain.MarketingBanner}
// @Router /content/banners [get]
func (h *ContentHandler) handleBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.ActiveBanners(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: banners})
}

// handleCategories lists managed categories
// @Summary Categories
// @Description Get the managed category configuration
// @Tags content
// @Produce json
// @Success 200 {object} domain.APIResponse{data=[]domain.CategoryConfig}
// @Router /content/categories [get]
func (h *ContentHandler) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Data: categories})
}
