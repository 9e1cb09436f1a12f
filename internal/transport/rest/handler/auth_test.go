package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finadvisor/internal/config"
	"finadvisor/internal/service"
)

func newTestAuthHandler() *AuthHandler {
	return NewAuthHandler(service.NewAuthService(&config.AuthConfig{
		Username:  "admin",
		Password:  "secret",
		JWTSecret: "test-signing-key",
	}))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"malformed body", `not json`, http.StatusBadRequest},
		{"missing fields", `{"username":"admin"}`, http.StatusBadRequest},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"ghost","password":"secret"}`, http.StatusUnauthorized},
		{"valid credentials", `{"username":"admin","password":"secret"}`, http.StatusOK},
	}

	h := newTestAuthHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			h.Login(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}

func TestLoginIssuesToken(t *testing.T) {
	h := newTestAuthHandler()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"admin","password":"secret"}`))
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	var resp struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a signed token")
	}
	if !strings.HasPrefix(resp.UserID, "user_") {
		t.Errorf("userId = %q, want user_ prefix", resp.UserID)
	}
}
