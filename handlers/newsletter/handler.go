package newsletter

import (
	"errors"
	"net/http"
	"strings"

	"kinscreen-backend/db"
	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Subscribe to the newsletter
// @Description Add an email to the newsletter list. Subscribing twice is reported, not an error.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscriber body models.NewsletterSubscribe true "Email to subscribe"
// @Success 201 {object} utils.Response "message: Thank you for subscribing!"
// @Success 200 {object} utils.Response "message: You are already subscribed!"
// @Failure 400 {object} utils.Response "error: Invalid input"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /newsletter [post]
func Subscribe(c *gin.Context) {
	var input models.NewsletterSubscribe
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.NewsletterSubscriber
	err := db.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		utils.SendSuccess(c, http.StatusOK, "You are already subscribed!", nil)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking newsletter subscriber")
		utils.SendError(c, http.StatusInternalServerError, "Failed to subscribe. Please try again later.")
		return
	}

	if err := db.DB.Create(&models.NewsletterSubscriber{Email: email}).Error; err != nil {
		utils.LogError(err, "Error creating newsletter subscriber")
		utils.SendError(c, http.StatusInternalServerError, "Failed to subscribe. Please try again later.")
		return
	}

	utils.LogSuccess("Newsletter subscriber added")
	utils.SendSuccess(c, http.StatusCreated, "Thank you for subscribing!", nil)
}

// @Summary List newsletter subscribers
// @Tags newsletter
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.NewsletterSubscriber
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /newsletter [get]
func GetAllSubscribers(c *gin.Context) {
	var subscribers []models.NewsletterSubscriber
	if err := db.DB.Order("created_at DESC").Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subscribers)
}
