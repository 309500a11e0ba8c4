package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/transport"
)

// MockEventService implements service.EventService for handler testing
type MockEventService struct {
	CreateFunc      func(ctx context.Context, event *domain.Event) error
	BatchFunc       func(ctx context.Context, events []*domain.Event) error
	UpdateFunc      func(ctx context.Context, id string, updates map[string]interface{}) error
	GetFunc         func(ctx context.Context, id string) (*domain.Event, error)
	DeleteFunc      func(ctx context.Context, id string) error
	ListFunc        func(ctx context.Context, req domain.SearchRequest) ([]domain.Event, int, error)
	RegisterFunc    func(ctx context.Context, eventID string, dto domain.RegistrationDTO) (*domain.RegistrationResponse, error)
	QuoteFunc       func(ctx context.Context, eventID string, quantity int, code string) (*domain.PriceBreakdown, error)
	CategoryMapFunc func(ctx context.Context) (map[string]string, error)
	TitleMapFunc    func(ctx context.Context) (map[string]string, error)
}

func (m *MockEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}
func (m *MockEventService) BatchCreateEvents(ctx context.Context, events []*domain.Event) error {
	if m.BatchFunc != nil {
		return m.BatchFunc(ctx, events)
	}
	return nil
}
func (m *MockEventService) UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, updates)
	}
	return nil
}
func (m *MockEventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &domain.Event{ID: id}, nil
}
func (m *MockEventService) DeleteEvent(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
func (m *MockEventService) ListEvents(ctx context.Context, req domain.SearchRequest) ([]domain.Event, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, req)
	}
	return []domain.Event{}, 0, nil
}
func (m *MockEventService) Register(ctx context.Context, eventID string, dto domain.RegistrationDTO) (*domain.RegistrationResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, eventID, dto)
	}
	return &domain.RegistrationResponse{Success: true, Attendee: &domain.Attendee{}, Pricing: &domain.PriceBreakdown{}}, nil
}
func (m *MockEventService) Quote(ctx context.Context, eventID string, quantity int, code string) (*domain.PriceBreakdown, error) {
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, eventID, quantity, code)
	}
	return &domain.PriceBreakdown{}, nil
}
func (m *MockEventService) EventCategoryMap(ctx context.Context) (map[string]string, error) {
	if m.CategoryMapFunc != nil {
		return m.CategoryMapFunc(ctx)
	}
	return map[string]string{}, nil
}
func (m *MockEventService) EventTitleMap(ctx context.Context) (map[string]string, error) {
	if m.TitleMapFunc != nil {
		return m.TitleMapFunc(ctx)
	}
	return map[string]string{}, nil
}

// MockAuditService implements service.AuditService for handler testing
type MockAuditService struct {
	LogFunc        func(ctx context.Context, entry domain.AuditLogEntry)
	GetLogsFunc    func(ctx context.Context) []domain.AuditLogEntry
	AnalyticsFunc  func(ctx context.Context, categoryMap map[string]string) domain.AnalyticsData
	ClearFunc      func(ctx context.Context) error
	ExportFunc     func(ctx context.Context) string
	ExportCSVFunc  func(ctx context.Context) string
	ExportRegsFunc func(logs []domain.AuditLogEntry, titles map[string]string) string
}

func (m *MockAuditService) LogAction(ctx context.Context, entry domain.AuditLogEntry) {
	if m.LogFunc != nil {
		m.LogFunc(ctx, entry)
	}
}
func (m *MockAuditService) GetAuditLogs(ctx context.Context) []domain.AuditLogEntry {
	if m.GetLogsFunc != nil {
		return m.GetLogsFunc(ctx)
	}
	return []domain.AuditLogEntry{}
}
func (m *MockAuditService) GetAnalyticsData(ctx context.Context, categoryMap map[string]string) domain.AnalyticsData {
	if m.AnalyticsFunc != nil {
		return m.AnalyticsFunc(ctx, categoryMap)
	}
	return domain.AnalyticsData{}
}
func (m *MockAuditService) ClearAuditLogs(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return nil
}
func (m *MockAuditService) ExportAuditLogs(ctx context.Context) string {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx)
	}
	return "[]"
}
func (m *MockAuditService) ExportAuditLogsToCSV(ctx context.Context) string {
	if m.ExportCSVFunc != nil {
		return m.ExportCSVFunc(ctx)
	}
	return "No data available"
}
func (m *MockAuditService) ExportRegistrationsToCSV(logs []domain.AuditLogEntry, titles map[string]string) string {
	if m.ExportRegsFunc != nil {
		return m.ExportRegsFunc(logs, titles)
	}
	return "No registration data available"
}

// MockContentService implements service.ContentService for handler testing
type MockContentService struct {
	GetContentFunc     func(ctx context.Context) (*domain.MarketingContent, error)
	ActiveBannersFunc  func(ctx context.Context) ([]domain.MarketingBanner, error)
	AddBannerFunc      func(ctx context.Context, banner domain.MarketingBanner) (*domain.MarketingBanner, error)
	UpdateBannerFunc   func(ctx context.Context, id string, banner domain.MarketingBanner) error
	DeleteBannerFunc   func(ctx context.Context, id string) error
	UpdatePromoFunc    func(ctx context.Context, content domain.PromotionalContent) error
	GetCategoriesFunc  func(ctx context.Context) ([]domain.CategoryConfig, error)
	AddCategoryFunc    func(ctx context.Context, category domain.CategoryConfig) (*domain.CategoryConfig, error)
	UpdateCategoryFunc func(ctx context.Context, id string, category domain.CategoryConfig) error
	DeleteCategoryFunc func(ctx context.Context, id string) error
}

func (m *MockContentService) GetMarketingContent(ctx context.Context) (*domain.MarketingContent, error) {
	if m.GetContentFunc != nil {
		return m.GetContentFunc(ctx)
	}
	return &domain.MarketingContent{Banners: []domain.MarketingBanner{}}, nil
}
func (m *MockContentService) ActiveBanners(ctx context.Context) ([]domain.MarketingBanner, error) {
	if m.ActiveBannersFunc != nil {
		return m.ActiveBannersFunc(ctx)
	}
	return []domain.MarketingBanner{}, nil
}
func (m *MockContentService) AddBanner(ctx context.Context, banner domain.MarketingBanner) (*domain.MarketingBanner, error) {
	if m.AddBannerFunc != nil {
		return m.AddBannerFunc(ctx, banner)
	}
	return &banner, nil
}
func (m *MockContentService) UpdateBanner(ctx context.Context, id string, banner domain.MarketingBanner) error {
	if m.UpdateBannerFunc != nil {
		return m.UpdateBannerFunc(ctx, id, banner)
	}
	return nil
}
func (m *MockContentService) DeleteBanner(ctx context.Context, id string) error {
	if m.DeleteBannerFunc != nil {
		return m.DeleteBannerFunc(ctx, id)
	}
	return nil
}
func (m *MockContentService) UpdatePromotionalContent(ctx context.Context, content domain.PromotionalContent) error {
	if m.UpdatePromoFunc != nil {
		return m.UpdatePromoFunc(ctx, content)
	}
	return nil
}
func (m *MockContentService) GetCategories(ctx context.Context) ([]domain.CategoryConfig, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	return []domain.CategoryConfig{}, nil
}
func (m *MockContentService) AddCategory(ctx context.Context, category domain.CategoryConfig) (*domain.CategoryConfig, error) {
	if m.AddCategoryFunc != nil {
		return m.AddCategoryFunc(ctx, category)
	}
	return &category, nil
}
func (m *MockContentService) UpdateCategory(ctx context.Context, id string, category domain.CategoryConfig) error {
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(ctx, id, category)
	}
	return nil
}
func (m *MockContentService) DeleteCategory(ctx context.Context, id string) error {
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, id)
	}
	return nil
}

func newTestRouter(events *MockEventService, audit *MockAuditService, content *MockContentService) http.Handler {
	if events == nil {
		events = &MockEventService{}
	}
	if audit == nil {
		audit = &MockAuditService{}
	}
	if content == nil {
		content = &MockContentService{}
	}
	return transport.NewRouter(events, audit, content)
}

func TestHandler_ListEvents_QueryParams(t *testing.T) {
	mockSvc := &MockEventService{
		ListFunc: func(ctx context.Context, req domain.SearchRequest) ([]domain.Event, int, error) {
			if req.Filters.Category != "music" {
				t.Errorf("Expected category 'music', got '%s'", req.Filters.Category)
			}
			if req.Filters.Type != domain.EventOnline {
				t.Errorf("Expected type 'online', got '%s'", req.Filters.Type)
			}
			if req.Filters.Date == nil || req.Filters.Date.Format("2006-01-02") != "2026-04-01" {
				t.Errorf("Expected date 2026-04-01, got %v", req.Filters.Date)
			}
			if req.PageSize != 20 || req.Page != 2 {
				t.Errorf("Expected page 2 size 20, got page %d size %d", req.Page, req.PageSize)
			}
			return []domain.Event{}, 0, nil
		},
	}

	router := newTestRouter(mockSvc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/events/?category=music&type=online&date=2026-04-01&page_size=20&page=2", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d (body: %s)", w.Result().StatusCode, w.Body.String())
	}
}

func TestHandler_ListEvents_AllCategoryMeansNoFilter(t *testing.T) {
	mockSvc := &MockEventService{
		ListFunc: func(ctx context.Context, req domain.SearchRequest) ([]domain.Event, int, error) {
			if req.Filters.Category != "" {
				t.Errorf("Expected 'all' mapped to empty filter, got '%s'", req.Filters.Category)
			}
			return []domain.Event{}, 0, nil
		},
	}
	router := newTestRouter(mockSvc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/events/?category=all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Result().StatusCode)
	}
}

func TestHandler_ListEvents_SearchTracked(t *testing.T) {
	var logged *domain.AuditLogEntry
	mockAudit := &MockAuditService{
		LogFunc: func(ctx context.Context, entry domain.AuditLogEntry) {
			logged = &entry
		},
	}
	router := newTestRouter(nil, mockAudit, nil)

	req := httptest.NewRequest(http.MethodGet, "/events/?search=jazz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if logged == nil {
		t.Fatal("Expected a search entry logged")
	}
	if logged.Action != domain.ActionSearch {
		t.Errorf("Expected search action, got %q", logged.Action)
	}
	if logged.Metadata[domain.MetaSearchTerm] != "jazz" {
		t.Errorf("Expected search term 'jazz', got %v", logged.Metadata[domain.MetaSearchTerm])
	}
}

func TestHandler_GetEvent_TracksView(t *testing.T) {
	var logged *domain.AuditLogEntry
	mockAudit := &MockAuditService{
		LogFunc: func(ctx context.Context, entry domain.AuditLogEntry) {
			logged = &entry
		},
	}
	router := newTestRouter(nil, mockAudit, nil)

	req := httptest.NewRequest(http.MethodGet, "/events/evt-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Result().StatusCode)
	}
	if logged == nil || logged.Action != domain.ActionView || logged.ResourceID != "evt-1" {
		t.Errorf("Expected view entry for evt-1, got %+v", logged)
	}
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	mockSvc := &MockEventService{
		GetFunc: func(ctx context.Context, id string) (*domain.Event, error) {
			return nil, domain.ErrNotFound
		},
	}
	router := newTestRouter(mockSvc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Result().StatusCode)
	}
}

func TestHandler_Register(t *testing.T) {
	var logged *domain.AuditLogEntry
	mockAudit := &MockAuditService{
		LogFunc: func(ctx context.Context, entry domain.AuditLogEntry) {
			logged = &entry
		},
	}
	mockSvc := &MockEventService{
		RegisterFunc: func(ctx context.Context, eventID string, dto domain.RegistrationDTO) (*domain.RegistrationResponse, error) {
			if dto.Quantity != 2 || dto.DiscountCode != "SAVE10" {
				t.Errorf("Unexpected dto: %+v", dto)
			}
			return &domain.RegistrationResponse{
				Success:        true,
				RegistrationID: "reg-1",
				Attendee:       &domain.Attendee{Name: dto.AttendeeName, GroupSize: 2},
				Pricing:        &domain.PriceBreakdown{Total: 90},
			}, nil
		},
	}
	router := newTestRouter(mockSvc, mockAudit, nil)

	body := `{"attendeeName":"Ada Lovelace","attendeeEmail":"ada@example.com","quantity":2,"discountCode":"SAVE10"}`
	req := httptest.NewRequest(http.MethodPost, "/events/evt-1/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (body: %s)", w.Result().StatusCode, w.Body.String())
	}
	if logged == nil || logged.Action != domain.ActionRegister {
		t.Fatalf("Expected register entry logged, got %+v", logged)
	}
	if logged.Metadata[domain.MetaRegistrationID] != "reg-1" {
		t.Errorf("Expected registration id in metadata, got %v", logged.Metadata)
	}
}

func TestHandler_Register_RejectsBadEmail(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	body := `{"attendeeName":"Ada","attendeeEmail":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/events/evt-1/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Result().StatusCode)
	}
}

func TestHandler_Quote(t *testing.T) {
	mockSvc := &MockEventService{
		QuoteFunc: func(ctx context.Context, eventID string, quantity int, code string) (*domain.PriceBreakdown, error) {
			if quantity != 3 || code != "WELCOME" {
				t.Errorf("Unexpected quote args: qty=%d code=%q", quantity, code)
			}
			return &domain.PriceBreakdown{Quantity: 3, Subtotal: 30, DiscountAmount: 4.5, Total: 25.5}, nil
		},
	}
	router := newTestRouter(mockSvc, nil, nil)

	body := `{"quantity":3,"discountCode":"WELCOME"}`
	req := httptest.NewRequest(http.MethodPost, "/events/evt-1/quote", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Result().StatusCode)
	}
	if !strings.Contains(w.Body.String(), `"total":25.5`) {
		t.Errorf("Expected breakdown in body, got %s", w.Body.String())
	}
}

func TestTrackingHandler_Accepts(t *testing.T) {
	var logged *domain.AuditLogEntry
	mockAudit := &MockAuditService{
		LogFunc: func(ctx context.Context, entry domain.AuditLogEntry) {
			logged = &entry
		},
	}
	router := newTestRouter(nil, mockAudit, nil)

	body := `{"action":"click","resource":"banner","resourceId":"b-1","metadata":{"buttonText":"Learn More"}}`
	req := httptest.NewRequest(http.MethodPost, "/tracking/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusAccepted {
		t.Fatalf("Expected status 202, got %d (body: %s)", w.Result().StatusCode, w.Body.String())
	}
	if logged == nil || logged.Action != domain.ActionClick || logged.ResourceID != "b-1" {
		t.Errorf("Expected click entry, got %+v", logged)
	}
}

func TestTrackingHandler_RejectsUnknownAction(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	body := `{"action":"explode","resource":"banner"}`
	req := httptest.NewRequest(http.MethodPost, "/tracking/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Result().StatusCode)
	}
}

func TestContentHandler_Banners(t *testing.T) {
	mockContent := &MockContentService{
		ActiveBannersFunc: func(ctx context.Context) ([]domain.MarketingBanner, error) {
			return []domain.MarketingBanner{{ID: "b-1", Title: "Spring Sale", Enabled: true}}, nil
		},
	}
	router := newTestRouter(nil, nil, mockContent)

	req := httptest.NewRequest(http.MethodGet, "/content/banners", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Result().StatusCode)
	}
	if !strings.Contains(w.Body.String(), "Spring Sale") {
		t.Errorf("Expected banner in body, got %s", w.Body.String())
	}
}

func TestAdminHandler_Analytics(t *testing.T) {
	mockSvc := &MockEventService{
		CategoryMapFunc: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{"evt-1": "music"}, nil
		},
	}
	mockAudit := &MockAuditService{
		AnalyticsFunc: func(ctx context.Context, categoryMap map[string]string) domain.AnalyticsData {
			if categoryMap["evt-1"] != "music" {
				t.Errorf("Expected category map passed through, got %v", categoryMap)
			}
			return domain.AnalyticsData{TotalViews: 7}
		},
	}
	router := newTestRouter(mockSvc, mockAudit, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Result().StatusCode)
	}
	if !strings.Contains(w.Body.String(), `"totalViews":7`) {
		t.Errorf("Expected analytics in body, got %s", w.Body.String())
	}
}

func TestAdminHandler_AuditExportCSV(t *testing.T) {
	mockAudit := &MockAuditService{
		ExportCSVFunc: func(ctx context.Context) string {
			return "Timestamp,Action\n2026-04-01 10:00:00,view"
		},
	}
	router := newTestRouter(nil, mockAudit, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/audit/export.csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Result().StatusCode)
	}
	if got := w.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("Expected text/csv, got %q", got)
	}
	if !strings.HasPrefix(w.Body.String(), "Timestamp,Action") {
		t.Errorf("Expected CSV body, got %s", w.Body.String())
	}
}

func TestAdminHandler_ClearAudit(t *testing.T) {
	cleared := false
	mockAudit := &MockAuditService{
		ClearFunc: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}
	router := newTestRouter(nil, mockAudit, nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/audit/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Result().StatusCode)
	}
	if !cleared {
		t.Error("Expected ClearAuditLogs invoked")
	}
}

func TestAdminHandler_CreateBanner(t *testing.T) {
	mockContent := &MockContentService{
		AddBannerFunc: func(ctx context.Context, banner domain.MarketingBanner) (*domain.MarketingBanner, error) {
			if banner.Title != "Flash Sale" || banner.Priority != 1 {
				t.Errorf("Unexpected banner: %+v", banner)
			}
			banner.ID = "b-new"
			return &banner, nil
		},
	}
	router := newTestRouter(nil, nil, mockContent)

	body := `{"title":"Flash Sale","enabled":true,"priority":1}`
	req := httptest.NewRequest(http.MethodPost, "/admin/banners", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (body: %s)", w.Result().StatusCode, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "b-new") {
		t.Errorf("Expected created banner id, got %s", w.Body.String())
	}
}

func TestHandler_BatchCreate(t *testing.T) {
	mockSvc := &MockEventService{
		BatchFunc: func(ctx context.Context, events []*domain.Event) error {
			if len(events) != 2 {
				t.Errorf("Expected 2 events, got %d", len(events))
			}
			if events[0].Title != "Go Meetup" || events[1].Title != "Rust Meetup" {
				t.Errorf("Unexpected titles: %q, %q", events[0].Title, events[1].Title)
			}
			return nil
		},
	}
	router := newTestRouter(mockSvc, nil, nil)

	body := `{"events":[
		{"title":"Go Meetup","date":"2026-05-01T18:00:00Z"},
		{"title":"Rust Meetup","date":"2026-05-02T18:00:00Z"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/events/batch", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (body: %s)", w.Result().StatusCode, w.Body.String())
	}
}

func TestHandler_BatchCreate_EmptyRejected(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/events/batch", strings.NewReader(`{"events":[]}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Result().StatusCode)
	}
}

func TestAdminHandler_UpdateMissingCategory(t *testing.T) {
	mockContent := &MockContentService{
		UpdateCategoryFunc: func(ctx context.Context, id string, category domain.CategoryConfig) error {
			return domain.ErrNotFound
		},
	}
	router := newTestRouter(nil, nil, mockContent)

	body := `{"name":"Music"}`
	req := httptest.NewRequest(http.MethodPut, "/admin/categories/nope", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Result().StatusCode)
	}
}
