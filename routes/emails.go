package routes

import (
	emailHandlers "kinscreen-backend/handlers/emails"
	"kinscreen-backend/mailer"
	"kinscreen-backend/middleware"

	"github.com/gin-gonic/gin"
)

func EmailsRoutes(r *gin.Engine, mail mailer.Sender) {
	h := emailHandlers.NewHandler(mail)
	r.POST("/send-email", h.Send)
	r.POST("/emails/queue", middleware.AdminAuth(), h.Enqueue)
	r.POST("/emails/process", middleware.AdminAuth(), h.ProcessQueue)
}
