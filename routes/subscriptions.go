package routes

import (
	subscriptionHandlers "kinscreen-backend/handlers/subscriptions"
	"kinscreen-backend/mailer"

	"github.com/gin-gonic/gin"
)

func SubscriptionsRoutes(r *gin.Engine, mail mailer.Sender) {
	h := subscriptionHandlers.NewHandler(subscriptionHandlers.StripeBilling{}, mail)
	r.POST("/subscriptions/cancel", h.CancelByIdentity)
	r.POST("/cancel-subscription", h.CancelRemote)
}
