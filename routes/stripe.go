package routes

import (
	stripeHandlers "kinscreen-backend/handlers/stripe"

	"github.com/gin-gonic/gin"
)

func StripeRoutes(r *gin.Engine, webhookSecret string) {
	h := stripeHandlers.NewHandler(webhookSecret)
	r.POST("/stripe/webhook", h.Webhook)
}
