package routes

import (
	"time"

	"kinscreen-backend/checkout"
	"kinscreen-backend/config"
	"kinscreen-backend/mailer"
	"kinscreen-backend/payments"
	"kinscreen-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg config.Config) *gin.Engine {

	gin.DefaultWriter = utils.LogWriter()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mail := mailer.New(cfg.SMTP)
	intents := payments.NewClient(cfg.Payments, payments.StripeIntentCreator{})
	notifier := checkout.NewNotifier(mail)

	AuthRoutes(r)
	PlansRoutes(r)
	PaymentsRoutes(r, intents)
	CheckoutRoutes(r, intents, notifier, mail)
	SubscriptionsRoutes(r, mail)
	ContactsRoutes(r)
	NewsletterRoutes(r)
	ChatRoutes(r)
	EmailsRoutes(r, mail)
	StripeRoutes(r, cfg.StripeWebhookSecret)

	return r
}
