package emails

import (
	"net/http"
	"time"

	"kinscreen-backend/db"
	"kinscreen-backend/mailer"
	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
)

// processBatchSize caps how many pending mails one process call drains.
const processBatchSize = 10

type Handler struct {
	mail mailer.Sender
}

func NewHandler(mail mailer.Sender) *Handler {
	return &Handler{mail: mail}
}

// SendRequest is the relay payload. Text or HTML must be provided; the from
// address is informational, mail always leaves through the configured
// sender account.
type SendRequest struct {
	To      string `json:"to" binding:"required,email"`
	From    string `json:"from"`
	Subject string `json:"subject" binding:"required"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// Send relays one email immediately
// @Summary Send an email
// @Description Relay one email through the configured SMTP account
// @Tags emails
// @Accept json
// @Produce json
// @Param email body SendRequest true "Recipient, subject and body"
// @Success 200 {object} map[string]string "message: Email sent"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 502 {object} map[string]string "error: Failed to send email"
// @Router /send-email [post]
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Text == "" && req.HTML == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A text or html body is required"})
		return
	}

	message := buildMessage(req)
	if err := h.mail.Send(req.To, message); err != nil {
		utils.LogErrorWithEmail(req.To, err, "Error relaying email")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
		return
	}

	utils.LogSuccess("Email relayed")
	c.JSON(http.StatusOK, gin.H{"message": "Email sent"})
}

// Enqueue defers an email to the queue
// @Summary Queue an email
// @Tags emails
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body models.QueuedEmailCreate true "Recipient, subject and HTML body"
// @Success 201 {object} map[string]interface{} "id: queued email ID"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /emails/queue [post]
func (h *Handler) Enqueue(c *gin.Context) {
	var req models.QueuedEmailCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	queued := models.QueuedEmail{
		ToEmail:     req.To,
		Subject:     req.Subject,
		HTMLContent: req.HTML,
		Status:      models.EmailPending,
	}
	if err := db.DB.Create(&queued).Error; err != nil {
		utils.LogError(err, "Error queueing email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error queueing email"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": queued.ID})
}

// ProcessQueue drains a batch of pending emails
// @Summary Process the email queue
// @Description Send up to 10 pending emails. Each one is marked sent or failed individually; a failure does not stop the batch.
// @Tags emails
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "processed, sent, failed"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /emails/process [post]
func (h *Handler) ProcessQueue(c *gin.Context) {
	var pending []models.QueuedEmail
	if err := db.DB.Where("status = ?", models.EmailPending).
		Order("created_at ASC").
		Limit(processBatchSize).
		Find(&pending).Error; err != nil {
		utils.LogError(err, "Error loading pending emails")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading pending emails"})
		return
	}

	if len(pending) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No pending emails"})
		return
	}

	sent := 0
	failed := 0
	for _, email := range pending {
		message := buildMessage(SendRequest{
			To:      email.ToEmail,
			Subject: email.Subject,
			HTML:    email.HTMLContent,
		})
		if err := h.mail.Send(email.ToEmail, message); err != nil {
			failed++
			utils.LogErrorWithEmail(email.ToEmail, err, "Error sending queued email")
			db.DB.Model(&email).Updates(map[string]interface{}{
				"status": models.EmailFailed,
				"error":  err.Error(),
			})
			continue
		}
		sent++
		now := time.Now()
		db.DB.Model(&email).Updates(map[string]interface{}{
			"status":  models.EmailSent,
			"sent_at": now,
		})
	}

	utils.LogSuccess("Email queue processed")
	c.JSON(http.StatusOK, gin.H{"processed": len(pending), "sent": sent, "failed": failed})
}

func buildMessage(req SendRequest) []byte {
	subject := "Subject: " + req.Subject + "\r\n"
	if req.HTML != "" {
		mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
		return []byte(subject + mime + req.HTML)
	}
	mime := "MIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n"
	return []byte(subject + mime + req.Text)
}
