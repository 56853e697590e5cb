package routes

import (
	paymentHandlers "kinscreen-backend/handlers/payments"
	"kinscreen-backend/payments"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine, client *payments.Client) {
	h := paymentHandlers.NewHandler(client)
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
}
