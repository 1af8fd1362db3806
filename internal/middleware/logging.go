package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"ai-comment-go/pkg/log"
)

// RequestLogger 是一个 Gin 中间件，用于记录每个请求的概要日志。
// 请求体中包含密码等敏感字段，因此只记录方法、路径、状态码和耗时。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 记录请求开始时间
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		log.Infof("%s %s -> %d (%s) from %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
		)
	}
}
