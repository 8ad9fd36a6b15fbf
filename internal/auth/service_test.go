package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	token, err := s.IssueToken("user-1", "sess_1")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := s.ValidateSessionToken(token, "sess_1")
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-1" || claims.SessionID != "sess_1" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := s.ValidateSessionToken(token, "sess_2"); !errors.Is(err, ErrSessionMismatch) {
		t.Errorf("err = %v, want ErrSessionMismatch", err)
	}
}

func TestValidateRejects(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	token, err := s.IssueToken("user-1", "sess_1")
	if err != nil {
		t.Fatal(err)
	}

	other := NewService("other-secret", time.Hour)
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}

	expired := NewService("test-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := expired.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired: err = %v, want ErrInvalidToken", err)
	}

	if _, err := s.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage: err = %v, want ErrInvalidToken", err)
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	token, err := s.IssueToken("user-1", "sess_1")
	if err != nil {
		t.Fatal(err)
	}

	var got *Claims
	h := s.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClaimsFromContext(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"ok", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got = nil
			req := httptest.NewRequest(http.MethodGet, "/api/sessions/sess_1", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
			if tc.want == http.StatusOK && (got == nil || got.SessionID != "sess_1") {
				t.Errorf("claims = %+v", got)
			}
		})
	}
}
