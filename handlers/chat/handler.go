package chat

import (
	"errors"
	"net/http"
	"time"

	"kinscreen-backend/db"
	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// @Summary Start a live chat session
// @Description Open a chat session for a visitor and return it with any existing messages
// @Tags chat
// @Accept json
// @Produce json
// @Param session body models.ChatSessionCreate true "Visitor name and email"
// @Success 201 {object} map[string]interface{} "session and messages"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /chat/sessions [post]
func CreateSession(c *gin.Context) {
	var input models.ChatSessionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session := models.ChatSession{
		Name:   input.Name,
		Email:  input.Email,
		Status: models.ChatSessionActive,
	}
	if err := db.DB.Create(&session).Error; err != nil {
		utils.LogError(err, "Error creating chat session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating chat session"})
		return
	}

	var messages []models.ChatMessage
	if err := db.DB.Where("session_id = ?", session.ID).Order("created_at ASC").Find(&messages).Error; err != nil {
		utils.LogError(err, "Error loading chat messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading chat messages"})
		return
	}

	utils.LogSuccess("Chat session started")
	c.JSON(http.StatusCreated, gin.H{"session": session, "messages": messages})
}

// @Summary Post a chat message
// @Description Append a visitor message to a session
// @Tags chat
// @Accept json
// @Produce json
// @Param sessionId path string true "Chat session ID"
// @Param message body models.ChatMessageCreate true "Message text"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Session not found"
// @Failure 409 {object} map[string]string "error: Session is closed"
// @Router /chat/sessions/{sessionId}/messages [post]
func CreateMessage(c *gin.Context) {
	postMessage(c, false)
}

// @Summary Post an agent reply
// @Description Append a support-side reply to a session
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Chat session ID"
// @Param message body models.ChatMessageCreate true "Message text"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Session not found"
// @Router /chat/sessions/{sessionId}/agent-messages [post]
func CreateAgentMessage(c *gin.Context) {
	postMessage(c, true)
}

func postMessage(c *gin.Context, isAgent bool) {
	sessionID := c.Param("sessionId")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	var input models.ChatMessageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var session models.ChatSession
	if err := db.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading session"})
		}
		return
	}
	if session.Status == models.ChatSessionClosed && !isAgent {
		c.JSON(http.StatusConflict, gin.H{"error": "Session is closed"})
		return
	}

	name := session.Name
	email := session.Email
	if isAgent {
		name = "Support"
		email = ""
	}

	message := models.ChatMessage{
		SessionID: session.ID,
		Name:      name,
		Email:     email,
		Message:   input.Message,
		IsAgent:   isAgent,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		utils.LogError(err, "Error creating chat message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating chat message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// @Summary List chat messages
// @Description Return the messages of a session in order. The widget polls with ?after=<RFC3339 timestamp> to get only what it has not seen yet.
// @Tags chat
// @Produce json
// @Param sessionId path string true "Chat session ID"
// @Param after query string false "Only messages created after this RFC3339 timestamp"
// @Success 200 {array} models.ChatMessage
// @Failure 400 {object} map[string]string "error: Invalid session ID or timestamp"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /chat/sessions/{sessionId}/messages [get]
func GetMessages(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	query := db.DB.Where("session_id = ?", sessionID)
	if after := c.Query("after"); after != "" {
		ts, err := time.Parse(time.RFC3339, after)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid after timestamp"})
			return
		}
		query = query.Where("created_at > ?", ts)
	}

	var messages []models.ChatMessage
	if err := query.Order("created_at ASC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// @Summary Close a chat session
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Chat session ID"
// @Success 200 {object} map[string]string "message: Session closed"
// @Failure 404 {object} map[string]string "error: Session not found"
// @Router /chat/sessions/{sessionId}/close [post]
func CloseSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	var session models.ChatSession
	if err := db.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading session"})
		}
		return
	}

	if err := db.DB.Model(&session).Update("status", models.ChatSessionClosed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}
