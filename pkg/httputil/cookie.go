package httputil

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const SeatCookieName = "seat_token"

// SetSeatCookie stores the seat token so a browser renderer does not have to
// keep it itself.
func SetSeatCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	cookie := &http.Cookie{
		Name:     SeatCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	// SameSite=None requires Secure=true
	if secure {
		cookie.SameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, cookie)
}

func ClearSeatCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SeatCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// GetTokenFromRequest prefers the Authorization header and falls back to the
// seat cookie.
func GetTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		// Support "Bearer <token>" format
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token), nil
		}
		return authHeader, nil
	}

	cookie, err := r.Cookie(SeatCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.New("no seat token found in header or cookie")
}
