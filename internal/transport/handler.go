package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/service"

	"github.com/andybalholm/brotli"
)

// NewRouter initializes the main HTTP handler using Go 1.22+ ServeMux.
//
// Public surface: event browsing/registration, price quotes, tracking,
// banners and categories. Everything under /admin/ is mounted behind
// WithAdminAuth by the caller's middleware chain.
func NewRouter(eventSvc service.EventService, auditSvc service.AuditService, contentSvc service.ContentService) http.Handler {
	mux := http.NewServeMux()

	eventHandler := NewEventHandler(eventSvc, auditSvc)
	mux.Handle("/events/", http.StripPrefix("/events", eventHandler))

	trackingHandler := NewTrackingHandler(auditSvc)
	mux.Handle("/tracking/", http.StripPrefix("/tracking", trackingHandler))

	contentHandler := NewContentHandler(contentSvc)
	mux.Handle("/content/", http.StripPrefix("/content", contentHandler))

	adminHandler := NewAdminHandler(eventSvc, auditSvc, contentSvc)
	mux.Handle("/admin/", http.StripPrefix("/admin", adminHandler))

	return mux
}

func respondError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		w.WriteHeader(http.StatusBadRequest)
	} else if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}
	_ = json.NewEncoder(w).Encode(domain.APIResponse{Error: err.Error()})
}

// WithCORS handles preflight requests and sets the allowed origin. An empty
// origin falls back to "*" for local development.
func WithCORS(next http.Handler, allowedOrigin string) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithCompression negotiates brotli on responses.
func WithCompression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "br") {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Encoding", "br")
		br := brotli.NewWriter(w)
		defer func(br *brotli.Writer) {
			_ = br.Close()
		}(br)
		cw := &compressedWriter{w: w, cw: br}
		next.ServeHTTP(cw, r)
	})
}

type compressedWriter struct {
	w  http.ResponseWriter
	cw *brotli.Writer
}

func (cw *compressedWriter) Header() http.Header         { return cw.w.Header() }
func (cw *compressedWriter) Write(b []byte) (int, error) { return cw.cw.Write(b) }
func (cw *compressedWriter) WriteHeader(statusCode int)  { cw.w.WriteHeader(statusCode) }
