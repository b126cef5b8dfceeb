package utils

import "github.com/gin-gonic/gin"

func CurrentSessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
