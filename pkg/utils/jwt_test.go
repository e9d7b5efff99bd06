package utils

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sid-1", 7, "admin", time.Now().Add(time.Hour), "secret")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := ParseSessionToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if claims.SessionID != "sid-1" || claims.AdminID != 7 || claims.Username != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParseSessionTokenErrors(t *testing.T) {
	valid, _ := GenerateSessionToken("sid-1", 1, "admin", time.Now().Add(time.Hour), "secret")
	expired, _ := GenerateSessionToken("sid-1", 1, "admin", time.Now().Add(-time.Minute), "secret")

	tests := []struct {
		name   string
		token  string
		secret string
		want   error
	}{
		{"missing", "", "secret", ErrMissingToken},
		{"wrong secret", valid, "other", ErrInvalidToken},
		{"garbage", "not-a-token", "secret", ErrInvalidToken},
		{"expired", expired, "secret", ErrExpiredToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tt.token, tt.secret); err != tt.want {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	if err != nil {
		t.Fatalf("GenerateSessionID: %v", err)
	}
	b, _ := GenerateSessionID()
	if a == b {
		t.Errorf("expected distinct session ids, got %q twice", a)
	}
	for _, r := range a {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
			t.Fatalf("unexpected character %q in %q", r, a)
		}
	}
}
