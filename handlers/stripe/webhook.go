package stripe

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"kinscreen-backend/db"
	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Handler verifies and dispatches Stripe webhook events.
type Handler struct {
	webhookSecret string
}

func NewHandler(webhookSecret string) *Handler {
	return &Handler{webhookSecret: webhookSecret}
}

// Webhook receives Stripe events
// @Summary Stripe webhook endpoint
// @Description Verify the event signature and record payment outcomes
// @Tags stripe
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "message: event handled"
// @Failure 400 {object} map[string]string "error: signature verification failed"
// @Router /stripe/webhook [post]
func (h *Handler) Webhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to read request body"})
		return
	}

	if h.webhookSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, h.webhookSecret)
	if err != nil {
		utils.LogError(err, "Stripe signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		h.handlePaymentIntentSucceeded(c, event)
	case "payment_intent.payment_failed":
		h.handlePaymentIntentFailed(c, event)
	case "customer.subscription.deleted":
		h.handleSubscriptionDeleted(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

func (h *Handler) handlePaymentIntentSucceeded(c *gin.Context, event stripe.Event) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing PaymentIntent"})
		return
	}

	if pi.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PaymentIntent without ID"})
		return
	}

	// Events can be delivered more than once.
	var existing models.PaymentHistory
	if err := db.DB.First(&existing, "stripe_payment_intent_id = ?", pi.ID).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Payment already recorded"})
		return
	}

	payment := models.PaymentHistory{
		AmountCents:           pi.AmountReceived,
		Currency:              string(pi.Currency),
		StripePaymentIntentId: pi.ID,
		PaidAt:                time.Now(),
	}

	if pi.Customer != nil {
		var customer models.Customer
		if err := db.DB.First(&customer, "stripe_customer_id = ?", pi.Customer.ID).Error; err == nil {
			payment.CustomerID = customer.ID
			h.activateLatestSubscription(customer.ID)
		}
	}

	if err := db.DB.Create(&payment).Error; err != nil {
		utils.LogError(err, "Error recording payment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording payment"})
		return
	}

	utils.LogSuccess("Payment recorded from payment_intent.succeeded")
	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}

// activateLatestSubscription promotes the customer's most recent trial
// subscription to active once a real charge has settled.
func (h *Handler) activateLatestSubscription(customerID string) {
	var sub models.Subscription
	if err := db.DB.
		Where("customer_id = ? AND status = ?", customerID, models.SubscriptionTrial).
		Order("created_at DESC").
		First(&sub).Error; err != nil {
		return
	}

	newEnd := time.Now().AddDate(0, 1, 0)
	db.DB.Model(&sub).Updates(map[string]interface{}{
		"status":             models.SubscriptionActive,
		"current_period_end": newEnd,
	})
}

func (h *Handler) handlePaymentIntentFailed(c *gin.Context, event stripe.Event) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing PaymentIntent"})
		return
	}

	if pi.Customer == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Failed PaymentIntent without customer"})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, "stripe_customer_id = ?", pi.Customer.ID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "No customer for failed payment"})
		return
	}

	var sub models.Subscription
	if err := db.DB.
		Where("customer_id = ? AND status = ? AND created_at > ?",
			customer.ID, models.SubscriptionTrial, time.Now().Add(-1*time.Hour)).
		Order("created_at DESC").
		First(&sub).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "No pending subscription to expire"})
		return
	}

	db.DB.Model(&sub).Update("status", models.SubscriptionExpired)
	c.JSON(http.StatusOK, gin.H{"message": "Subscription expired after failed payment"})
}

func (h *Handler) handleSubscriptionDeleted(c *gin.Context, event stripe.Event) {
	var remote stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &remote); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing Subscription"})
		return
	}

	if remote.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subscription without ID"})
		return
	}

	var sub models.Subscription
	if err := db.DB.First(&sub, "stripe_subscription_id = ?", remote.ID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "No local subscription for remote cancellation"})
		return
	}

	if sub.Status == models.SubscriptionCanceled {
		c.JSON(http.StatusOK, gin.H{"message": "Subscription already canceled"})
		return
	}

	db.DB.Model(&sub).Update("status", models.SubscriptionCanceled)
	utils.LogSuccess("Subscription canceled from customer.subscription.deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled"})
}
