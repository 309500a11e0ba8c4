package function

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"pulse-events/backend/internal/repository"
	"pulse-events/backend/internal/service"
	"pulse-events/backend/internal/transport"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	_ "pulse-events/backend/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Pulse Events API
// @version 1.0
// @description Events storefront backend: browsing, registrations with discount pricing, usage tracking and an admin dashboard (Google Cloud Function).

// @host 127.0.0.1:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func init() {
	ctx := context.Background()
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")

	databaseId := os.Getenv("FIRESTORE_DATABASE_ID")
	// projectID is auto-detected in Cloud Functions; the fallback keeps the
	// local emulator happy.
	if projectID == "" {
		projectID = "local-project-id"
	}

	fsClient, err := firestore.NewClientWithDatabase(ctx, projectID, databaseId)
	if err != nil {
		log.Fatalf("Failed to create firestore client: %v", err)
	}

	conf := &firebase.Config{ProjectID: projectID}
	app, err := firebase.NewApp(ctx, conf)
	if err != nil {
		log.Fatalf("error initializing firebase app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("error getting auth client: %v", err)
	}

	// Document-style state (audit log, marketing content, categories) goes
	// through the KVStore abstraction so local runs can skip Firestore.
	var kv repository.KVStore
	switch os.Getenv("STORAGE_DRIVER") {
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "pulse-events.db"
		}
		db, err := repository.OpenSQLite(path)
		if err != nil {
			log.Fatalf("Failed to open sqlite store: %v", err)
		}
		kv = repository.NewSQLiteKV(db)
	default:
		kv = repository.NewFirestoreKV(fsClient)
	}

	eventRepo := repository.NewEventRepository(fsClient)
	auditRepo := repository.NewAuditRepository(kv)
	contentRepo := repository.NewContentRepository(kv)

	eventSvc := service.NewEventService(eventRepo)
	auditSvc := service.NewAuditService(auditRepo)
	contentSvc := service.NewContentService(contentRepo)

	router := transport.NewRouter(eventSvc, auditSvc, contentSvc)

	corsOrigin := os.Getenv("CORS_ALLOWED_ORIGIN")

	isProduction := os.Getenv("APP_ENV") == "production"

	// Guests may browse unless the storefront is explicitly closed.
	publicRead := os.Getenv("PUBLIC_READ") != "false"

	functions.HTTP("PulseEventsFunction", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/swagger/") {
			httpSwagger.Handler(httpSwagger.DeepLinking(false))(w, r)
			return
		}

		// Middleware Chain:
		// CORS -> Security Headers -> Admin Auth -> Compression -> Router
		handler := transport.WithCompression(router)
		handler = transport.WithAdminAuth(handler, authClient, publicRead)
		handler = transport.WithSecurityHeaders(handler, isProduction)
		handler = transport.WithCORS(handler, corsOrigin)

		handler.ServeHTTP(w, r)
	})
}
