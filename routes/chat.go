package routes

import (
	"kinscreen-backend/handlers/chat"
	"kinscreen-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ChatRoutes(r *gin.Engine) {
	chatRoutes := r.Group("/chat/sessions")
	{
		chatRoutes.POST("", chat.CreateSession)
		chatRoutes.POST("/:sessionId/messages", chat.CreateMessage)
		chatRoutes.GET("/:sessionId/messages", chat.GetMessages)
		chatRoutes.POST("/:sessionId/agent-messages", middleware.AdminAuth(), chat.CreateAgentMessage)
		chatRoutes.POST("/:sessionId/close", middleware.AdminAuth(), chat.CloseSession)
	}
}
