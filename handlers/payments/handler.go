package payments

import (
	"errors"
	"net/http"

	"kinscreen-backend/apperrors"
	"kinscreen-backend/payments"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *payments.Client
}

func NewHandler(client *payments.Client) *Handler {
	return &Handler{client: client}
}

// CreateIntentRequest is the payload the card form sends before it can
// collect a payment. Amount is in minor units.
type CreateIntentRequest struct {
	Amount           int64  `json:"amount" binding:"required,gt=0"`
	Currency         string `json:"currency"`
	SetupFutureUsage string `json:"setup_future_usage"`
	TrialPeriodDays  int64  `json:"trial_period_days"`
}

// CreatePaymentIntent creates a payment intent and returns its client secret
// @Summary Create a payment intent
// @Description Create a payment intent for the given amount and return the client secret the card widget needs
// @Tags payments
// @Accept json
// @Produce json
// @Param intent body CreateIntentRequest true "Amount in minor units and currency"
// @Success 200 {object} map[string]string "clientSecret: token for the card widget"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 502 {object} map[string]string "error: Payment initialization failed"
// @Router /create-payment-intent [post]
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	res, err := h.client.Initialize(c.Request.Context(), payments.IntentRequest{
		Amount:           req.Amount,
		Currency:         req.Currency,
		SetupFutureUsage: req.SetupFutureUsage,
		TrialPeriodDays:  req.TrialPeriodDays,
	})
	if err != nil {
		var initErr *apperrors.PaymentInitializationError
		if errors.As(err, &initErr) {
			utils.LogError(err, "payment intent creation exhausted retries")
			c.JSON(http.StatusBadGateway, gin.H{"error": initErr.Error()})
			return
		}
		utils.LogError(err, "payment intent creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize payment"})
		return
	}

	utils.LogSuccess("Payment intent created")
	c.JSON(http.StatusOK, gin.H{"clientSecret": res.ClientSecret})
}
