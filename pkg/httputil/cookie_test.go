package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
		ok     bool
	}{
		{"bearer header", "Bearer abc", "", "abc", true},
		{"raw header", "abc", "", "abc", true},
		{"header wins over cookie", "Bearer abc", "def", "abc", true},
		{"cookie only", "", "def", "def", true},
		{"nothing", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: SeatCookieName, Value: tt.cookie})
			}

			got, err := GetTokenFromRequest(r)
			if (err == nil) != tt.ok {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Fatalf("GetTokenFromRequest = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetSeatCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetSeatCookie(w, "abc", time.Hour, false)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SeatCookieName || c.Value != "abc" || c.MaxAge != 3600 || !c.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", c)
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected lax same-site outside production, got %v", c.SameSite)
	}
}
