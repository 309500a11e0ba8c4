package main

import (
	"context"
	"log"
	"os"
	"time"

	// Load .env before the function package's init runs.
	_ "github.com/joho/godotenv/autoload"

	// Blank-import the function package so init() registers the handler.
	_ "pulse-events/backend"

	emulatorAuth "pulse-events/backend/internal/auth"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
)

const localAdminEmail = "admin@localhost.com"

// main starts the Functions Framework server - only needed when running locally.
func main() {
	port := "5000"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}

	// Seed the admin UID in the Auth Emulator so dashboard tokens verify.
	if os.Getenv("FIREBASE_AUTH_EMULATOR_HOST") != "" {
		go createLocalAdminUser()
	}

	log.Println("Server starting on http://127.0.0.1:" + port)
	log.Println("Swagger UI: http://127.0.0.1:" + port + "/swagger/index.html")

	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}

func createLocalAdminUser() {
	// Give the server/emulator a split second to settle
	time.Sleep(1 * time.Second)

	ctx := context.Background()
	adminUID := os.Getenv("ADMIN_UID")
	if adminUID == "" {
		log.Println("⚠️  Skipping local user creation: ADMIN_UID not set")
		return
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = "local-project-id"
	}

	conf := &firebase.Config{ProjectID: projectID}
	app, err := firebase.NewApp(ctx, conf)
	if err != nil {
		log.Printf("⚠️  [Admin Setup] Failed to init firebase app: %v", err)
		return
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Printf("⚠️  [Admin Setup] Failed to get auth client: %v", err)
		return
	}

	u, err := client.GetUser(ctx, adminUID)
	if err == nil {
		log.Printf("✅ [Admin Setup] User '%s' already exists (UID: %s)", u.DisplayName, adminUID)
	} else {
		params := (&auth.UserToCreate{}).
			UID(adminUID).
			Email(localAdminEmail).
			EmailVerified(true).
			Password("admin123").
			DisplayName("Local Admin")

		if _, err := client.CreateUser(ctx, params); err != nil {
			log.Printf("❌ [Admin Setup] Failed to create user (Emulator might be down): %v", err)
			return
		}
		log.Printf("✅ [Admin Setup] Created user: %s", adminUID)
	}

	token := emulatorAuth.EmulatorToken(projectID, adminUID, localAdminEmail)

	log.Println("---------------------------------------------------------")
	log.Printf("🔑 ADMIN TOKEN (Copy to Swagger 'Authorize'):\nBearer %s", token)
	log.Println("---------------------------------------------------------")
}
