package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// CartSession tags every request with an opaque session id so each browser
// gets exactly one cart. The cookie is issued on first contact and reused
// afterwards.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			// 30 days; the cart snapshot outlives the process either way
			c.SetCookie(sessionCookie, id, 30*24*3600, "/", "", false, true)
		}
		c.Set("sessionId", id)
		c.Next()
	}
}
