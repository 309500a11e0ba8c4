// Command emulatortoken prints an unsigned admin bearer token for the
// Firebase Auth Emulator.
package main

import (
	"fmt"
	"os"

	"pulse-events/backend/internal/auth"
)

func main() {
	uid := os.Getenv("ADMIN_UID")
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")

	fmt.Printf("Bearer %s\n", auth.EmulatorToken(projectID, uid, "admin@localhost.com"))
}
