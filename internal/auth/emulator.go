package auth

import (
	"encoding/base64"
	"encoding/json"
)

type emulatorClaims struct {
	Issuer   string `json:"iss"`
	Audience string `json:"aud"`
	AuthTime int64  `json:"auth_time"`
	UserID   string `json:"user_id"`
	Subject  string `json:"sub"`
	IssuedAt int64  `json:"iat"`
	Expires  int64  `json:"exp"`
	Email    string `json:"email,omitempty"`
}

// EmulatorToken builds an unsigned JWT the Firebase Auth Emulator accepts
// as a valid ID token. Only useful against the emulator; production token
// verification rejects alg "none".
func EmulatorToken(projectID, uid, email string) string {
	if projectID == "" {
		projectID = "local-project-id"
	}

	claims := emulatorClaims{
		Issuer:   "https://securetoken.google.com/" + projectID,
		Audience: projectID,
		AuthTime: 1,
		UserID:   uid,
		Subject:  uid,
		IssuedAt: 1,
		Expires:  9999999999,
		Email:    email,
	}

	header := `{"alg":"none","typ":"JWT"}`
	body, _ := json.Marshal(claims)
	enc := base64.RawURLEncoding

	// Header.Payload. with an empty signature segment.
	return enc.EncodeToString([]byte(header)) + "." + enc.EncodeToString(body) + "."
}
