package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/repository"

	"github.com/google/uuid"
)

// maxLogEntries caps the persisted audit log. When an append would exceed
// it, the oldest entry is dropped.
const maxLogEntries = 1000

// analyticsWindow is the rolling window analytics are derived over.
const analyticsWindow = 30 * 24 * time.Hour

const (
	csvTimeLayout   = "2006-01-02 15:04:05"
	noDataCSV       = "No data available"
	noRegistrations = "No registration data available"
	unknownEvent    = "Unknown Event"
)

type AuditService interface {
	// LogAction appends an interaction entry, assigning id and timestamp.
	// Logging is best-effort: persistence failures are logged to the
	// diagnostic channel and never surfaced to the caller.
	LogAction(ctx context.Context, entry domain.AuditLogEntry)
	// GetAuditLogs returns all entries oldest first. Missing or corrupt
	// storage reads as empty.
	GetAuditLogs(ctx context.Context) []domain.AuditLogEntry
	// GetAnalyticsData derives the 30-day snapshot. eventCategoryMap maps
	// event ids to category ids and is treated as a pure input.
	GetAnalyticsData(ctx context.Context, eventCategoryMap map[string]string) domain.AnalyticsData
	ClearAuditLogs(ctx context.Context) error
	ExportAuditLogs(ctx context.Context) string
	ExportAuditLogsToCSV(ctx context.Context) string
	ExportRegistrationsToCSV(logs []domain.AuditLogEntry, eventTitles map[string]string) string
}

type auditService struct {
	repo repository.AuditRepository

	// Serializes the read-modify-write of the full collection within this
	// process. Writers in other processes still race last-write-wins.
	mu sync.Mutex
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) LogAction(ctx context.Context, entry domain.AuditLogEntry) {
	if entry.Action == "" || entry.Resource == "" {
		log.Printf("audit: dropping entry without action/resource: %+v", entry)
		return
	}

	entry.ID = uuid.New().String()
	entry.Timestamp = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.Load(ctx)
	if err != nil {
		log.Printf("audit: load before append failed: %v", err)
		return
	}
	entries = append(entries, entry)
	if len(entries) > maxLogEntries {
		entries = entries[1:]
	}
	if err := s.repo.Store(ctx, entries); err != nil {
		log.Printf("audit: append failed: %v", err)
	}
}

func (s *auditService) GetAuditLogs(ctx context.Context) []domain.AuditLogEntry {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		log.Printf("audit: load failed: %v", err)
		return []domain.AuditLogEntry{}
	}
	return entries
}

func (s *auditService) GetAnalyticsData(ctx context.Context, eventCategoryMap map[string]string) domain.AnalyticsData {
	logs := s.GetAuditLogs(ctx)

	// One consistent instant for the whole pass.
	now := time.Now().UTC()
	windowStart := now.Add(-analyticsWindow)

	data := domain.AnalyticsData{
		CategoryViews:         map[string]int{},
		CategoryRegistrations: map[string]int{},
		CategoryEventCounts:   map[string]int{},
		EventViews:            map[string]int{},
		RegistrationCounts:    map[string]int{},
		EventsByCategory:      map[string][]domain.EventStat{},
		PopularEvents:         []domain.EventStat{},
		SearchTerms:           []domain.SearchTermStat{},
		DateRange:             domain.DateRange{Start: windowStart, End: now},
	}

	categoryEventSets := map[string]map[string]struct{}{}
	searchCounts := map[string]int{}

	// Go maps do not preserve insertion order, so first-seen order is
	// tracked explicitly to keep tie-breaking stable.
	var eventOrder []string
	var searchOrder []string

	for _, entry := range logs {
		if entry.Timestamp.Before(windowStart) {
			continue
		}

		switch entry.Action {
		case domain.ActionView:
			data.TotalViews++
			if entry.Resource == "event" && entry.ResourceID != "" {
				if _, seen := data.EventViews[entry.ResourceID]; !seen {
					eventOrder = append(eventOrder, entry.ResourceID)
				}
				data.EventViews[entry.ResourceID]++

				// Category views derived from the event's category.
				if categoryID, ok := eventCategoryMap[entry.ResourceID]; ok && categoryID != "" {
					data.CategoryViews[categoryID]++
					if categoryEventSets[categoryID] == nil {
						categoryEventSets[categoryID] = map[string]struct{}{}
					}
					categoryEventSets[categoryID][entry.ResourceID] = struct{}{}
				}
			} else if entry.Resource == "category" && entry.ResourceID != "" {
				// Direct category views bypass the event map entirely.
				data.CategoryViews[entry.ResourceID]++
			}

		case domain.ActionRegister:
			data.TotalRegistrations++
			if entry.ResourceID != "" {
				data.RegistrationCounts[entry.ResourceID]++
				if categoryID, ok := eventCategoryMap[entry.ResourceID]; ok && categoryID != "" {
					data.CategoryRegistrations[categoryID]++
				}
			}

		case domain.ActionSearch:
			data.TotalSearches++
			if term := metaString(entry.Metadata, domain.MetaSearchTerm); term != "" {
				if _, seen := searchCounts[term]; !seen {
					searchOrder = append(searchOrder, term)
				}
				searchCounts[term]++
			}
		}
	}

	for categoryID, events := range categoryEventSets {
		data.CategoryEventCounts[categoryID] = len(events)
	}

	for _, eventID := range eventOrder {
		stat := domain.EventStat{
			EventID:       eventID,
			Views:         data.EventViews[eventID],
			Registrations: data.RegistrationCounts[eventID],
		}
		data.PopularEvents = append(data.PopularEvents, stat)
		if categoryID, ok := eventCategoryMap[eventID]; ok && categoryID != "" {
			data.EventsByCategory[categoryID] = append(data.EventsByCategory[categoryID], stat)
		}
	}
	sort.SliceStable(data.PopularEvents, func(i, j int) bool {
		return data.PopularEvents[i].Views > data.PopularEvents[j].Views
	})
	if len(data.PopularEvents) > 10 {
		data.PopularEvents = data.PopularEvents[:10]
	}
	for categoryID := range data.EventsByCategory {
		group := data.EventsByCategory[categoryID]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Views > group[j].Views
		})
	}

	for _, term := range searchOrder {
		data.SearchTerms = append(data.SearchTerms, domain.SearchTermStat{Term: term, Count: searchCounts[term]})
	}
	sort.SliceStable(data.SearchTerms, func(i, j int) bool {
		return data.SearchTerms[i].Count > data.SearchTerms[j].Count
	})
	if len(data.SearchTerms) > 10 {
		data.SearchTerms = data.SearchTerms[:10]
	}

	return data
}

func (s *auditService) ClearAuditLogs(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Clear(ctx)
}

func (s *auditService) ExportAuditLogs(ctx context.Context) string {
	logs := s.GetAuditLogs(ctx)
	raw, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		log.Printf("audit: export marshal failed: %v", err)
		return "[]"
	}
	return string(raw)
}

func (s *auditService) ExportAuditLogsToCSV(ctx context.Context) string {
	logs := s.GetAuditLogs(ctx)
	if len(logs) == 0 {
		return noDataCSV
	}

	lines := make([]string, 0, len(logs)+1)
	lines = append(lines, "Timestamp,Action,Resource,Resource ID,Attendee Name,Attendee Email,Registration ID,Search Term,Metadata")

	for _, entry := range logs {
		var metadata string
		if entry.Metadata != nil {
			if raw, err := json.Marshal(entry.Metadata); err == nil {
				metadata = string(raw)
			}
		}
		fields := []string{
			entry.Timestamp.Format(csvTimeLayout),
			string(entry.Action),
			entry.Resource,
			entry.ResourceID,
			metaString(entry.Metadata, domain.MetaAttendeeName),
			metaString(entry.Metadata, domain.MetaAttendeeEmail),
			metaString(entry.Metadata, domain.MetaRegistrationID),
			metaString(entry.Metadata, domain.MetaSearchTerm),
			metadata,
		}
		lines = append(lines, joinCSV(fields))
	}
	return strings.Join(lines, "\n")
}

func (s *auditService) ExportRegistrationsToCSV(logs []domain.AuditLogEntry, eventTitles map[string]string) string {
	var registrations []domain.AuditLogEntry
	for _, entry := range logs {
		if entry.Action == domain.ActionRegister {
			registrations = append(registrations, entry)
		}
	}
	if len(registrations) == 0 {
		return noRegistrations
	}

	lines := make([]string, 0, len(registrations)+1)
	lines = append(lines, "Timestamp,Event ID,Event Title,Attendee Name,Attendee Email,Registration ID")

	for _, entry := range registrations {
		title, ok := eventTitles[entry.ResourceID]
		if !ok || title == "" {
			title = unknownEvent
		}
		fields := []string{
			entry.Timestamp.Format(csvTimeLayout),
			entry.ResourceID,
			title,
			metaString(entry.Metadata, domain.MetaAttendeeName),
			metaString(entry.Metadata, domain.MetaAttendeeEmail),
			metaString(entry.Metadata, domain.MetaRegistrationID),
		}
		lines = append(lines, joinCSV(fields))
	}
	return strings.Join(lines, "\n")
}

// metaString pulls a metadata value as a string; non-string values are
// formatted, absent ones read as empty.
func metaString(metadata map[string]any, key string) string {
	if metadata == nil {
		return ""
	}
	value, ok := metadata[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// joinCSV escapes each field individually: values containing a comma, quote
// or newline are wrapped in quotes with internal quotes doubled, everything
// else is emitted as-is.
func joinCSV(fields []string) string {
	escaped := make([]string, len(fields))
	for i, field := range fields {
		if strings.ContainsAny(field, ",\"\n") {
			field = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		escaped[i] = field
	}
	return strings.Join(escaped, ",")
}
