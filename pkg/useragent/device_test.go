package useragent

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractDeviceInfo(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{"", "Unknown Device"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36", "Chrome on Windows"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 Edg/120.0", "Edge on Windows"},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", "Safari on iOS"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Firefox on Linux"},
		{"curl/8.4.0", "Unknown Browser on Unknown OS"},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.ua != "" {
			r.Header.Set("User-Agent", tt.ua)
		}
		if got := ExtractDeviceInfo(r); got != tt.want {
			t.Fatalf("ExtractDeviceInfo(%q) = %q, want %q", tt.ua, got, tt.want)
		}
	}
}
