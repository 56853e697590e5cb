package plans

import (
	"net/http"

	"kinscreen-backend/db"
	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAllPlans returns the pricing catalog
// @Summary Get all plans
// @Description Get the pricing catalog shown on the pricing page
// @Tags plans
// @Produce json
// @Success 200 {array} models.Plan
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans [get]
func GetAllPlans(c *gin.Context) {
	var plans []models.Plan
	if err := db.DB.Order("created_at ASC").Find(&plans).Error; err != nil {
		utils.LogError(err, "Error loading plans")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlanByName returns one plan
// @Summary Get a plan by name
// @Tags plans
// @Produce json
// @Param name path string true "Plan name"
// @Success 200 {object} models.Plan
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Router /plans/{name} [get]
func GetPlanByName(c *gin.Context) {
	var plan models.Plan
	if err := db.DB.Where("name = ?", c.Param("name")).First(&plan).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
