package checkout

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"kinscreen-backend/apperrors"
	"kinscreen-backend/checkout"
	"kinscreen-backend/db"
	"kinscreen-backend/mailer"
	"kinscreen-backend/mailer/templates"
	"kinscreen-backend/models"
	"kinscreen-backend/payments"
	"kinscreen-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	intents  checkout.IntentService
	notifier *checkout.Notifier
	mail     mailer.Sender
	sessions *store
}

func NewHandler(intents checkout.IntentService, notifier *checkout.Notifier, mail mailer.Sender) *Handler {
	return &Handler{
		intents:  intents,
		notifier: notifier,
		mail:     mail,
		sessions: newStore(),
	}
}

type StartRequest struct {
	PlanName string `json:"planName" binding:"required" example:"Monthly"`
}

type CustomerRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	IsGift        bool   `json:"isGift"`
	GiftEmail     string `json:"giftEmail"`
	GifterName    string `json:"gifterName"`
	GiftMessage   string `json:"giftMessage"`
}

type MethodRequest struct {
	Method string `json:"method" binding:"required,oneof=card paypal"`
}

type PromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// Start opens a checkout session for a plan
// @Summary Start a checkout session
// @Description Open a checkout session for the selected plan. Card is the initial payment method, so a client secret is issued right away.
// @Tags checkout
// @Accept json
// @Produce json
// @Param plan body StartRequest true "Plan to buy"
// @Success 201 {object} map[string]string "sessionId, clientSecret"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Router /checkout/sessions [post]
func (h *Handler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var plan models.Plan
	if err := db.DB.Where("name = ?", req.PlanName).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		} else {
			utils.LogError(err, "Error loading plan in checkout start")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading plan"})
		}
		return
	}

	o := checkout.New(h.intents, h.notifier)
	if err := o.SelectPlan(c.Request.Context(), plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := h.sessions.add(o)
	utils.LogSuccess("Checkout session started for plan " + plan.Name)
	c.JSON(http.StatusCreated, gin.H{
		"sessionId":    id,
		"state":        string(o.State()),
		"clientSecret": o.ClientSecret(),
		"error":        o.Err(),
	})
}

// SetCustomer stores the buyer and gift details on the session
// @Summary Set customer information
// @Tags checkout
// @Accept json
// @Produce json
// @Param sessionId path string true "Checkout session ID"
// @Param customer body CustomerRequest true "Customer and gift details"
// @Success 200 {object} map[string]string "state"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Session not found"
// @Router /checkout/sessions/{sessionId}/customer [put]
func (h *Handler) SetCustomer(c *gin.Context) {
	o, ok := h.session(c)
	if !ok {
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.IsGift && req.GiftEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A recipient email is required for a gift"})
		return
	}
	if req.GiftEmail != "" && !utils.ValidateEmail(req.GiftEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient email format"})
		return
	}

	o.SetCustomer(req.CustomerName, req.CustomerEmail)
	o.SetGift(req.IsGift, req.GiftEmail, req.GifterName, req.GiftMessage)
	c.JSON(http.StatusOK, gin.H{"state": string(o.State())})
}

// SetPaymentMethod switches between card and wallet
// @Summary Select the payment method
// @Description Switch between the card form and the wallet button. Switching to card issues a fresh client secret.
// @Tags checkout
// @Accept json
// @Produce json
// @Param sessionId path string true "Checkout session ID"
// @Param method body MethodRequest true "card or paypal"
// @Success 200 {object} map[string]string "state, clientSecret"
// @Failure 404 {object} map[string]string "error: Session not found"
// @Router /checkout/sessions/{sessionId}/payment-method [put]
func (h *Handler) SetPaymentMethod(c *gin.Context) {
	o, ok := h.session(c)
	if !ok {
		return
	}
	var req MethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	o.SetPaymentMethod(c.Request.Context(), checkout.PaymentMethod(req.Method))
	c.JSON(http.StatusOK, gin.H{
		"state":        string(o.State()),
		"clientSecret": o.ClientSecret(),
		"error":        o.Err(),
	})
}

// ApplyPromo applies a promo code to the session
// @Summary Apply a promo code
// @Description Apply a promo code. A valid code unlocks the free checkout path and discards any issued payment intent.
// @Tags checkout
// @Accept json
// @Produce json
// @Param sessionId path string true "Checkout session ID"
// @Param promo body PromoRequest true "Promo code"
// @Success 200 {object} map[string]string "state"
// @Failure 400 {object} map[string]string "error: Invalid promo code"
// @Failure 404 {object} map[string]string "error: Session not found"
// @Router /checkout/sessions/{sessionId}/promo [post]
func (h *Handler) ApplyPromo(c *gin.Context) {
	o, ok := h.session(c)
	if !ok {
		return
	}
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := o.ApplyPromo(c.Request.Context(), req.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": string(o.State()), "promoApplied": true})
}

// Complete finishes a free (promo) checkout
// @Summary Complete a free order
// @Description Complete the order without payment. Only available once the promo code has been applied.
// @Tags checkout
// @Produce json
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {object} checkout.Confirmation
// @Failure 400 {object} map[string]string "error: Missing fields or promo not applied"
// @Failure 404 {object} map[string]string "error: Session not found"
// @Router /checkout/sessions/{sessionId}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	id := c.Param("sessionId")
	o, ok := h.session(c)
	if !ok {
		return
	}

	conf, err := o.CompleteOrder(c.Request.Context())
	if err != nil {
		var valErr *apperrors.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error completing order"})
		return
	}

	h.recordOrder(o, conf, "")
	h.sessions.remove(id)
	c.JSON(http.StatusOK, gin.H{"confirmation": conf, "error": o.Err()})
}

// PaymentSucceeded is called by the frontend after the card or wallet
// widget reported success
// @Summary Report payment success
// @Description Called after the payment widget's success callback. Sends the notification and returns the confirmation payload.
// @Tags checkout
// @Accept json
// @Produce json
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {object} checkout.Confirmation
// @Failure 400 {object} map[string]string "error: Missing customer information"
// @Failure 404 {object} map[string]string "error: Session not found"
// @Router /checkout/sessions/{sessionId}/success [post]
func (h *Handler) PaymentSucceeded(c *gin.Context) {
	id := c.Param("sessionId")
	o, ok := h.session(c)
	if !ok {
		return
	}
	if !o.CanSubmit() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required customer information"})
		return
	}

	var req struct {
		PaymentIntentId string `json:"paymentIntentId"`
	}
	c.ShouldBindJSON(&req)

	conf := o.HandlePaymentSuccess()
	h.recordOrder(o, conf, req.PaymentIntentId)
	h.sessions.remove(id)
	c.JSON(http.StatusOK, gin.H{"confirmation": conf, "error": o.Err()})
}

func (h *Handler) session(c *gin.Context) (*checkout.Orchestrator, bool) {
	o, ok := h.sessions.get(c.Param("sessionId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
		return nil, false
	}
	return o, true
}

// recordOrder persists the outcome of a finished checkout: the customer,
// their subscription, the payment row for paid orders and the gift record
// in gift mode. Persistence errors are logged but the checkout has already
// succeeded, so the response stays a success.
func (h *Handler) recordOrder(o *checkout.Orchestrator, conf checkout.Confirmation, paymentIntentID string) {
	snapshot := o.Snapshot()

	customer, err := findOrCreateCustomer(snapshot.CustomerEmail, snapshot.CustomerName)
	if err != nil {
		utils.LogErrorWithEmail(snapshot.CustomerEmail, err, "Error recording customer after checkout")
		return
	}

	var plan models.Plan
	if err := db.DB.Where("name = ?", conf.PlanName).First(&plan).Error; err != nil {
		utils.LogError(err, "Error loading plan while recording order")
		return
	}

	status := models.SubscriptionActive
	if plan.Name == "Free Trial" {
		status = models.SubscriptionTrial
	}
	sub := models.Subscription{
		CustomerID: customer.ID,
		PlanName:   plan.Name,
		Status:     status,
		AutoRenew:  plan.Subscription,
	}
	if plan.Subscription || status == models.SubscriptionTrial {
		end := time.Now().AddDate(0, 1, 0)
		if status == models.SubscriptionTrial {
			end = time.Now().AddDate(0, 0, 7)
		}
		sub.CurrentPeriodEnd = &end
	}
	if err := db.DB.Create(&sub).Error; err != nil {
		utils.LogErrorWithEmail(snapshot.CustomerEmail, err, "Error recording subscription after checkout")
	}

	if !snapshot.PromoApplied {
		amount, err := payments.ParseDisplayPrice(plan.Price)
		if err == nil && amount.IsPositive() {
			payment := models.PaymentHistory{
				CustomerID:            customer.ID,
				AmountCents:           payments.ToMinorUnits(amount),
				Currency:              "usd",
				StripePaymentIntentId: paymentIntentID,
				PaidAt:                time.Now(),
			}
			if err := db.DB.Create(&payment).Error; err != nil {
				utils.LogErrorWithEmail(snapshot.CustomerEmail, err, "Error recording payment after checkout")
			}
		}
	}

	if h.mail != nil {
		amount := plan.Price
		if snapshot.PromoApplied {
			amount = "$0.00"
		}
		receipt := templates.OrderConfirmation(customer.Email, snapshot.CustomerName, plan.Name, amount, plan.Name == "Free Trial")
		if err := h.mail.Send(customer.Email, receipt); err != nil {
			utils.LogErrorWithEmail(customer.Email, err, "Error sending order confirmation")
		}
	}

	if conf.Gift {
		gift := models.GiftRecord{
			CustomerID:     customer.ID,
			RecipientEmail: conf.GiftEmail,
			SenderName:     conf.SenderName,
			PlanName:       conf.PlanName,
			Message:        conf.GiftMessage,
		}
		if err := db.DB.Create(&gift).Error; err != nil {
			utils.LogErrorWithEmail(snapshot.CustomerEmail, err, "Error recording gift after checkout")
		}
	}
}

func findOrCreateCustomer(email, fullName string) (models.Customer, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var customer models.Customer
	err := db.DB.Where("email = ?", normalized).First(&customer).Error
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Customer{}, err
	}

	first, last := splitName(fullName)
	customer = models.Customer{
		Email:     normalized,
		FirstName: first,
		LastName:  last,
		Status:    models.CustomerActive,
	}
	if err := db.DB.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
