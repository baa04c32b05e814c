package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/pkg/httputil"
)

const SeatTokenKey = "seat_token"

// SeatTokenMiddleware copies the caller's seat token, if any, into the gin
// context. It never rejects: whether a token is needed is the table's call.
func SeatTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := httputil.GetTokenFromRequest(c.Request); err == nil {
			c.Set(SeatTokenKey, token)
		}
		c.Next()
	}
}

// SeatToken returns the token stored by SeatTokenMiddleware, or "".
func SeatToken(c *gin.Context) string {
	return c.GetString(SeatTokenKey)
}
