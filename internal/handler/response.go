// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-comment-go/internal/apperr"
	"ai-comment-go/pkg/log"
)

// respondError 是错误到 HTTP 状态码的唯一转换点。
// 各 handler 不得自行决定状态码，保证同类错误在所有接口上表现一致。
func respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput:
		body := gin.H{"message": err.Error()}
		if fields := apperr.FieldsOf(err); len(fields) > 0 {
			body["fields"] = fields
		}
		c.JSON(http.StatusBadRequest, body)
	case apperr.KindConflict:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case apperr.KindUnauthorized:
		// 登录失败在对外表现上与格式错误同级，统一为 400
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case apperr.KindUpstream:
		// 补全服务的错误详情对调用方可见
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		// 数据库等内部错误只记日志，对外返回通用信息
		log.Error("internal error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "服务器内部错误"})
	}
}
