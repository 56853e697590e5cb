package contacts

import (
	"net/http"
	"time"

	"kinscreen-backend/db"
	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a contact request
// @Description Store a message sent through the contact page
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactSubmissionCreate true "Contact information"
// @Success 201 {object} map[string]interface{} "message: Thank you for your message, id: submission ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /contact [post]
func CreateContact(c *gin.Context) {
	var contactInput models.ContactSubmissionCreate

	if err := c.ShouldBindJSON(&contactInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(contactInput.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	contact := models.ContactSubmission{
		FirstName:   contactInput.FirstName,
		LastName:    contactInput.LastName,
		Email:       contactInput.Email,
		Message:     contactInput.Message,
		SubmittedAt: time.Now(),
	}

	result := db.DB.Create(&contact)
	if result.Error != nil {
		utils.LogError(result.Error, "Error storing contact submission")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	utils.LogSuccess("Contact submission stored")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your message! We will get back to you soon.",
		"id":      contact.ID,
	})
}

// @Summary List contact submissions
// @Description Return every contact submission, most recent first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactSubmission
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /contacts [get]
func GetAllContacts(c *gin.Context) {
	var contacts []models.ContactSubmission

	result := db.DB.Order("submitted_at DESC").Find(&contacts)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
