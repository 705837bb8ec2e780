package utils

import (
	"testing"
	"time"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	sessionID := "2b1c6f2a-0a1d-4f7e-9c51-9f3d7b6f12ab"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateSessionToken(issuer, sessionID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Error("expected non-empty signed token string")
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		sessionID string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "sid", time.Hour, "key"},
		{"empty session ID", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "sid", 0, "key"},
		{"empty key", "iss", "sid", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.sessionID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	sessionID := "4e0f8c7d-9b3a-4a6e-8d21-5c0a1b2c3d4e"
	key := "secret-key"
	duration := time.Minute * 5

	// First generate a valid token
	token, _ := GenerateSessionToken(issuer, sessionID, duration, key)

	// Now validate it
	parsedSessionID, err := ValidateAndParseSessionToken(token, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedSessionID != sessionID {
		t.Errorf("expected session ID %s, got %s", sessionID, parsedSessionID)
	}
}

func TestValidateAndParseSessionToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	token, _ := GenerateSessionToken(issuer, "sid", time.Hour, key)

	_, err := ValidateAndParseSessionToken(token, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	// Token that expired 1 second ago
	token, _ := GenerateSessionToken(issuer, "sid", -time.Second, key)

	_, err := ValidateAndParseSessionToken(token, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	key := "key"
	token, _ := GenerateSessionToken("real-issuer", "sid", time.Hour, key)

	_, err := ValidateAndParseSessionToken(token, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseSessionToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseSessionToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}
