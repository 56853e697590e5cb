package main

import (
	"log"

	"kinscreen-backend/config"
	"kinscreen-backend/db"
	"kinscreen-backend/routes"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
)

// @title KinScreen API
// @version 1.0
// @description Backend for the KinScreen website: checkout, subscriptions, contact, newsletter and live chat
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()
	stripe.Key = cfg.StripeSecretKey

	db.InitDB(cfg.DatabaseURL)
	db.Seed(cfg.AdminEmail, cfg.AdminPassword)

	r := routes.SetupRouter(cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
