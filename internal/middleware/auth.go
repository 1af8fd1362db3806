// Package middleware 提供了处理 HTTP 请求的中间件。
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-comment-go/internal/repository"
	"ai-comment-go/pkg/log"
	"ai-comment-go/pkg/token"
)

// ContextKeyClaims 是存入 gin 上下文的 claims 键名。
const ContextKeyClaims = "claims"

// AuthMiddleware 创建一个 Gin 中间件，用于 JWT 认证。
// 它会从请求头中提取 token，验证其有效性并确认不在登出黑名单中，
// 然后将 claims 存入 Gin 的上下文。
func AuthMiddleware(jwtManager *token.JWTManager, blacklist repository.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从 Authorization 请求头中获取 token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "请求未包含授权头"})
			return
		}

		// Token 以 "Bearer <token>" 的形式提供
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "无效的授权头格式"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "无效或已过期的 token"})
			return
		}

		// 已登出的 token 不再接受；黑名单查询失败时放行并记录，
		// 避免 Redis 故障把全部认证请求一并拖垮
		blacklisted, err := blacklist.Contains(c.Request.Context(), tokenString)
		if err != nil {
			log.Warnf("AuthMiddleware: blacklist check failed, error: %v", err)
		} else if blacklisted {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token 已注销"})
			return
		}

		// 将 claims 存储在 context 中，供后续处理函数使用
		c.Set(ContextKeyClaims, claims)

		// 继续处理请求链中的下一个处理器
		c.Next()
	}
}
