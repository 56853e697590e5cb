package routes

import (
	"kinscreen-backend/handlers/plans"

	"github.com/gin-gonic/gin"
)

func PlansRoutes(r *gin.Engine) {
	r.GET("/plans", plans.GetAllPlans)
	r.GET("/plans/:name", plans.GetPlanByName)
}
