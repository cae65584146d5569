package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware tạo sessionId nếu chưa có và gán vào context, dùng
// để nối các thao tác của cùng một ca làm việc tại quầy
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("sessionId", sessionID)
		c.Writer.Header().Set("X-Session-ID", sessionID)

		c.Next()
	}
}
