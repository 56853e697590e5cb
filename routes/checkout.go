package routes

import (
	"kinscreen-backend/checkout"
	checkoutHandlers "kinscreen-backend/handlers/checkout"
	"kinscreen-backend/mailer"

	"github.com/gin-gonic/gin"
)

func CheckoutRoutes(r *gin.Engine, intents checkout.IntentService, notifier *checkout.Notifier, mail mailer.Sender) {
	h := checkoutHandlers.NewHandler(intents, notifier, mail)
	checkoutRoutes := r.Group("/checkout/sessions")
	{
		checkoutRoutes.POST("", h.Start)
		checkoutRoutes.PUT("/:sessionId/customer", h.SetCustomer)
		checkoutRoutes.PUT("/:sessionId/payment-method", h.SetPaymentMethod)
		checkoutRoutes.POST("/:sessionId/promo", h.ApplyPromo)
		checkoutRoutes.POST("/:sessionId/complete", h.Complete)
		checkoutRoutes.POST("/:sessionId/success", h.PaymentSucceeded)
	}
}
