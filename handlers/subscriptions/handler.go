package subscriptions

import (
	"errors"
	"net/http"
	"strings"

	"kinscreen-backend/apperrors"
	"kinscreen-backend/db"
	"kinscreen-backend/mailer"
	"kinscreen-backend/mailer/templates"
	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	billing BillingClient
	mail    mailer.Sender
}

func NewHandler(billing BillingClient, mail mailer.Sender) *Handler {
	return &Handler{billing: billing, mail: mail}
}

// CancelRequest identifies the caller by email and full name. There is no
// account login on the site, this weak check is the self-service path.
type CancelRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// CancelByIdentity cancels the caller's active subscription
// @Summary Cancel a subscription by email and name
// @Description Verify the customer by email and full name, cancel the subscription on the billing system, update the local status and send a confirmation mail.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param cancellation body CancelRequest true "Customer email and full name"
// @Success 200 {object} utils.Response "success: true, message: confirmation text"
// @Failure 400 {object} utils.Response "error: Invalid input"
// @Failure 403 {object} utils.Response "error: The name provided does not match our records"
// @Failure 404 {object} utils.Response "error: No account or active subscription found"
// @Failure 502 {object} utils.Response "error: Billing system rejected the cancellation"
// @Router /subscriptions/cancel [post]
func (h *Handler) CancelByIdentity(c *gin.Context) {
	var req CancelRequest
	if !utils.ValidateRequestBody(c, &req) {
		return
	}

	message, err := h.cancel(req.Email, req.Name)
	if err != nil {
		var notFound *apperrors.NotFoundError
		var verification *apperrors.VerificationError
		var remote *apperrors.RemoteCancellationError
		switch {
		case errors.As(err, &notFound):
			utils.LogErrorWithEmail(req.Email, err, "Cancellation refused: "+notFound.Resource+" not found")
			utils.SendError(c, http.StatusNotFound, notFound.Message)
		case errors.As(err, &verification):
			utils.LogErrorWithEmail(req.Email, err, "Cancellation refused: name mismatch")
			utils.SendError(c, http.StatusForbidden, verification.Message)
		case errors.As(err, &remote):
			utils.LogErrorWithEmail(req.Email, err, "Billing system rejected the cancellation")
			utils.SendError(c, http.StatusBadGateway, "An error occurred while cancelling your subscription. Please try again or contact support.")
		default:
			utils.LogErrorWithEmail(req.Email, err, "Error cancelling subscription")
			utils.SendError(c, http.StatusInternalServerError, "An error occurred while cancelling your subscription. Please try again or contact support.")
		}
		return
	}

	utils.LogSuccess("Subscription cancelled for " + strings.ToLower(req.Email))
	utils.SendSuccess(c, http.StatusOK, message, nil)
}

// cancel runs the verification and cancellation steps in order. Steps 1-4
// abort the whole flow; the local status update happens only after the
// billing system accepted the cancellation; the confirmation mail at the
// end is best-effort.
func (h *Handler) cancel(email, name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var customer models.Customer
	err := db.DB.Where("email = ?", normalized).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", &apperrors.NotFoundError{
			Resource: "customer",
			Message:  "No account found with this email address. Please check your information and try again.",
		}
	}
	if err != nil {
		return "", err
	}

	fullName := strings.ToLower(strings.TrimSpace(customer.FirstName + " " + customer.LastName))
	if fullName != strings.ToLower(strings.TrimSpace(name)) {
		return "", &apperrors.VerificationError{
			Message: "The name provided does not match our records. Please check your information and try again.",
		}
	}

	var subscription models.Subscription
	err = db.DB.Where("customer_id = ? AND status = ?", customer.ID, models.SubscriptionActive).
		Order("created_at DESC").
		First(&subscription).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", &apperrors.NotFoundError{
			Resource: "subscription",
			Message:  "No active subscription found for this account.",
		}
	}
	if err != nil {
		return "", err
	}

	if subscription.StripeSubscriptionId != "" {
		if err := h.billing.CancelSubscription(subscription.StripeSubscriptionId); err != nil {
			return "", &apperrors.RemoteCancellationError{Err: err}
		}
	}

	if err := db.DB.Model(&subscription).Update("status", models.SubscriptionCanceled).Error; err != nil {
		return "", err
	}

	if err := h.mail.Send(customer.Email, templates.Cancellation(customer.FirstName+" "+customer.LastName)); err != nil {
		utils.LogErrorWithEmail(customer.Email, err, "Cancellation confirmation mail failed")
	}

	return "Your subscription has been successfully cancelled. You will have access until the end of your current billing period.", nil
}

// RemoteCancelRequest targets a billing-system subscription directly.
type RemoteCancelRequest struct {
	SubscriptionID string `json:"subscriptionId" binding:"required"`
}

// CancelRemote cancels a subscription on the billing system only
// @Summary Cancel a billing-system subscription
// @Description Cancel the given subscription on the billing system. Local records are untouched.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param cancellation body RemoteCancelRequest true "Billing-system subscription ID"
// @Success 200 {object} map[string]string "message: Subscription canceled successfully"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 502 {object} map[string]string "error: Error when canceling the subscription"
// @Router /cancel-subscription [post]
func (h *Handler) CancelRemote(c *gin.Context) {
	var req RemoteCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.billing.CancelSubscription(req.SubscriptionID); err != nil {
		utils.LogError(err, "Error when canceling the subscription on the billing system")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error when canceling the subscription"})
		return
	}

	utils.LogSuccess("Billing-system subscription canceled")
	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled successfully"})
}
