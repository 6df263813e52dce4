package util

import (
	"net/http"
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(42, "admin", "secret")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	userID, role, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if userID != 42 || role != "admin" {
		t.Errorf("got %d/%s, want 42/admin", userID, role)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(1, "user", "secret")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestExtractToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer tok", "tok"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic dXNlcg==", ""},
		{"no token part", "Bearer", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if got := ExtractToken(r); got != tt.want {
				t.Errorf("ExtractToken = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword("hunter2", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
