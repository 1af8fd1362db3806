package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-comment-go/internal/middleware"
	"ai-comment-go/internal/service"
	"ai-comment-go/pkg/log"
	"ai-comment-go/pkg/token"
)

// UserHandler 负责处理所有与用户相关的 API 请求。
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler 创建一个新的 UserHandler 实例。
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignUpRequest 定义了用户注册 API 的请求体结构。
type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

// SignUp 处理用户注册请求。
func (h *UserHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	// 绑定并验证 JSON 请求体
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("SignUp: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的请求负载：email、password、nickname 均为必填"})
		return
	}

	// 调用 service 层执行注册逻辑
	_, err := h.userService.Register(c.Request.Context(), req.Email, req.Password, req.Nickname)
	if err != nil {
		log.Warnf("SignUp: registration failed for '%s', error: %v", req.Email, err)
		respondError(c, err)
		return
	}

	log.Infof("User '%s' registered successfully", req.Email)
	c.JSON(http.StatusOK, gin.H{"message": "注册成功"})
}

// SignInRequest 定义了用户登录 API 的请求体结构。
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignIn 处理用户登录请求。
func (h *UserHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("SignIn: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的请求负载：email 和 password 均为必填"})
		return
	}

	// 调用 service 层执行登录逻辑
	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Warnf("SignIn: authentication failed for '%s', error: %v", req.Email, err)
		respondError(c, err)
		return
	}

	log.Infof("User '%s' logged in successfully", req.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "登录成功",
		"user":    result,
	})
}

// SignOut 处理用户登出请求，将当前 token 加入黑名单。
func (h *UserHandler) SignOut(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if err := h.userService.Logout(c.Request.Context(), tokenString); err != nil {
		log.Error("SignOut: failed to logout", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "登出成功"})
}

// Me 返回当前登录用户的公开信息。
func (h *UserHandler) Me(c *gin.Context) {
	claims := c.MustGet(middleware.ContextKeyClaims).(*token.CustomClaims)

	user, err := h.userService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"user":    user,
	})
}
