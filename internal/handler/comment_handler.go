package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ai-comment-go/internal/middleware"
	"ai-comment-go/internal/service"
	"ai-comment-go/pkg/log"
	"ai-comment-go/pkg/token"
)

// CommentHandler 负责处理提问与对话查询相关的 API 请求。
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler 创建一个新的 CommentHandler 实例。
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AskRequest 定义了提问 API 的请求体结构。
type AskRequest struct {
	Comment string `json:"comment"`
}

// Ask 处理一次向 AI 的提问。
// 路径参数为提问用户的 ID，请求体携带提问内容。
func (h *CommentHandler) Ask(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的用户 ID"})
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的请求负载"})
		return
	}

	result, err := h.commentService.Ask(c.Request.Context(), uint(userID), req.Comment)
	if err != nil {
		log.Warnf("Ask: failed for user %d, error: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "提问与 AI 回答保存成功",
		"conversationId": result.ConversationID,
		"question":       req.Comment,
		"aiAnswer":       result.Answer,
	})
}

// ListConversations 返回全部对话，最新的在前。
// 没有任何对话时返回 404，与既有客户端的约定保持一致。
func (h *CommentHandler) ListConversations(c *gin.Context) {
	conversations, err := h.commentService.ListConversations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if len(conversations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "没有找到对话"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "对话获取成功",
		"comments": conversations,
	})
}

// GetConversation 按 ID 返回一条对话及其消息。
func (h *CommentHandler) GetConversation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的对话 ID"})
		return
	}

	conversation, err := h.commentService.GetConversation(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "对话获取成功",
		"comment": conversation,
	})
}

// DeleteConversation 删除当前用户名下的一条对话。
func (h *CommentHandler) DeleteConversation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的对话 ID"})
		return
	}

	claims := c.MustGet(middleware.ContextKeyClaims).(*token.CustomClaims)

	if err := h.commentService.DeleteConversation(c.Request.Context(), uint(id), claims.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "对话已删除"})
}
