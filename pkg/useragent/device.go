package useragent

import (
	"net/http"
	"strings"
)

var browsers = []struct {
	key, name string
}{
	// order matters: Edge and Chrome both claim Safari
	{"Edg/", "Edge"},
	{"Firefox/", "Firefox"},
	{"Chrome/", "Chrome"},
	{"Safari/", "Safari"},
}

var platforms = []struct {
	key, name string
}{
	{"Android", "Android"},
	{"iPhone", "iOS"},
	{"iPad", "iOS"},
	{"Windows", "Windows"},
	{"Mac OS X", "macOS"},
	{"Linux", "Linux"},
}

// ExtractDeviceInfo gives a short "Browser on Platform" label for the
// client that claimed a seat.
func ExtractDeviceInfo(r *http.Request) string {
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		return "Unknown Device"
	}

	browser := "Unknown Browser"
	for _, b := range browsers {
		if strings.Contains(ua, b.key) {
			browser = b.name
			break
		}
	}

	platform := "Unknown OS"
	for _, p := range platforms {
		if strings.Contains(ua, p.key) {
			platform = p.name
			break
		}
	}

	return browser + " on " + platform
}
