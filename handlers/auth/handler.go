package auth

import (
	"errors"
	"net/http"
	"strings"

	"kinscreen-backend/db"
	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary Admin login
// @Description Admin login with credentials, returns a JWT for the back-office endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLogin true "Admin credentials"
// @Success 200 {object} map[string]interface{} "token: JWT token"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 401 {object} map[string]interface{} "error: Wrong credentials"
// @Failure 422 {object} map[string]interface{} "error: JWT not generated"
// @Router /login [post]
func Login(c *gin.Context) {
	var input models.AdminLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	var admin models.AdminUser
	result := db.DB.Where("email = ?", strings.ToLower(input.Email)).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Wrong credentials",
			})
		} else {
			utils.LogError(result.Error, "Error loading admin account")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Database error",
			})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Wrong credentials",
		})
		return
	}

	token, err := utils.GenerateJWT(admin.ID, 72)
	if err != nil {
		utils.LogError(err, "Error generating JWT")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error generating token"})
		return
	}

	utils.LogSuccess("Admin logged in")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}
