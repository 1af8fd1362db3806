package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册全部 REST 路由。
// 认证中间件只挂在需要识别当前用户的接口上，
// 提问与对话查询沿用既有客户端的开放访问方式。
func RegisterRoutes(r *gin.Engine, userHandler *UserHandler, commentHandler *CommentHandler, auth gin.HandlerFunc) {
	// 存活探针
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "PongPong"})
	})

	api := r.Group("/api")
	{
		api.POST("/sign-up", userHandler.SignUp)
		api.POST("/sign-in", userHandler.SignIn)

		authed := api.Group("/")
		authed.Use(auth)
		{
			authed.POST("/sign-out", userHandler.SignOut)
			authed.GET("/me", userHandler.Me)
		}
	}

	ask := r.Group("/ask")
	{
		ask.POST("/:userId", commentHandler.Ask)
		ask.GET("/conversation", commentHandler.ListConversations)
		ask.GET("/conversation/:id", commentHandler.GetConversation)
		ask.DELETE("/conversation/:id", auth, commentHandler.DeleteConversation)
	}
}
