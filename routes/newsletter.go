package routes

import (
	"kinscreen-backend/handlers/newsletter"
	"kinscreen-backend/middleware"

	"github.com/gin-gonic/gin"
)

func NewsletterRoutes(r *gin.Engine) {
	r.POST("/newsletter", newsletter.Subscribe)
	r.GET("/newsletter", middleware.AdminAuth(), newsletter.GetAllSubscribers)
}
