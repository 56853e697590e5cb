package checkout

import (
	"context"

	"kinscreen-backend/apperrors"
	"kinscreen-backend/models"
	"kinscreen-backend/payments"
	"kinscreen-backend/utils"

	"github.com/shopspring/decimal"
)

type State string

const (
	StateCollectingInfo      State = "collecting_info"
	StateAwaitingPaymentInit State = "awaiting_payment_init"
	StatePromoApplied        State = "promo_applied"
	StateSubmitting          State = "submitting"
	StateSucceeded           State = "succeeded"
	StateFailed              State = "failed"
)

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodPayPal PaymentMethod = "paypal"
)

// IntentService is the slice of the payments client the orchestrator needs.
type IntentService interface {
	InitializeAmount(ctx context.Context, amount decimal.Decimal, currency string) (payments.IntentResult, error)
	Cancel(ctx context.Context, id string) error
}

// Confirmation is the payload the confirmation view renders after a
// successful order.
type Confirmation struct {
	PlanName    string `json:"plan"`
	Gift        bool   `json:"gift"`
	GiftEmail   string `json:"giftEmail,omitempty"`
	SenderName  string `json:"senderName,omitempty"`
	GiftMessage string `json:"giftMessage,omitempty"`
}

// Orchestrator drives one checkout attempt. It is event-driven and
// single-goroutine: payment-intent initialization happens only on the
// specific events that need it (plan selection, method change to card), and
// an init sequence number discards responses that a later event made stale.
// At most one intent is outstanding at a time.
type Orchestrator struct {
	intents  IntentService
	notifier *Notifier

	state  State
	plan   models.Plan
	price  decimal.Decimal
	method PaymentMethod

	customerName  string
	customerEmail string
	isGift        bool
	giftEmail     string
	gifterName    string
	giftMessage   string

	promoApplied bool
	intentID     string
	clientSecret string
	initSeq      int
	errMsg       string
}

func New(intents IntentService, notifier *Notifier) *Orchestrator {
	return &Orchestrator{
		intents:  intents,
		notifier: notifier,
		state:    StateCollectingInfo,
		method:   MethodCard,
	}
}

func (o *Orchestrator) State() State         { return o.state }
func (o *Orchestrator) ClientSecret() string { return o.clientSecret }
func (o *Orchestrator) PromoApplied() bool   { return o.promoApplied }
func (o *Orchestrator) Err() string          { return o.errMsg }

// Snapshot is a read-only copy of the collected checkout state.
type Snapshot struct {
	PlanName      string
	Method        PaymentMethod
	CustomerName  string
	CustomerEmail string
	IsGift        bool
	GiftEmail     string
	GifterName    string
	GiftMessage   string
	PromoApplied  bool
}

func (o *Orchestrator) Snapshot() Snapshot {
	return Snapshot{
		PlanName:      o.plan.Name,
		Method:        o.method,
		CustomerName:  o.customerName,
		CustomerEmail: o.customerEmail,
		IsGift:        o.isGift,
		GiftEmail:     o.giftEmail,
		GifterName:    o.gifterName,
		GiftMessage:   o.giftMessage,
		PromoApplied:  o.promoApplied,
	}
}

// SelectPlan sets the plan being bought and re-initializes the payment
// intent when the price actually changed.
func (o *Orchestrator) SelectPlan(ctx context.Context, plan models.Plan) error {
	price, err := payments.ParseDisplayPrice(plan.Price)
	if err != nil {
		return &apperrors.ValidationError{Field: "plan", Message: err.Error()}
	}
	changed := o.plan.Name == "" || !price.Equal(o.price)
	o.plan = plan
	o.price = price
	if changed {
		o.initPayment(ctx)
	}
	return nil
}

// SetPaymentMethod switches between the card form and the wallet button. A
// switch to card needs a fresh client secret; a switch away leaves any
// issued secret alone (the intent is simply not confirmed).
func (o *Orchestrator) SetPaymentMethod(ctx context.Context, method PaymentMethod) {
	if method == o.method {
		return
	}
	o.method = method
	if method == MethodCard {
		o.initPayment(ctx)
	}
}

func (o *Orchestrator) SetCustomer(name, email string) {
	o.customerName = name
	o.customerEmail = email
}

func (o *Orchestrator) SetGift(on bool, recipientEmail, gifterName, message string) {
	o.isGift = on
	o.giftEmail = recipientEmail
	o.gifterName = gifterName
	o.giftMessage = message
}

// ApplyPromo checks the entered code. On a match the free checkout path is
// unlocked: any outstanding client secret is discarded and the abandoned
// intent is canceled on the gateway (best effort).
func (o *Orchestrator) ApplyPromo(ctx context.Context, code string) error {
	if !payments.ResolvePromo(code) {
		o.errMsg = "Invalid promo code"
		return &apperrors.ValidationError{Field: "promoCode", Message: "Invalid promo code"}
	}

	o.promoApplied = true
	o.errMsg = ""
	// Invalidate any in-flight initialization before dropping the secret.
	o.initSeq++
	if o.intentID != "" {
		if err := o.intents.Cancel(ctx, o.intentID); err != nil {
			utils.LogError(err, "could not cancel abandoned payment intent")
		}
		o.intentID = ""
	}
	o.clientSecret = ""
	o.state = StatePromoApplied
	return nil
}

// CanSubmit reports whether the required fields are filled in.
func (o *Orchestrator) CanSubmit() bool {
	if o.customerName == "" || o.customerEmail == "" {
		return false
	}
	if o.isGift && o.giftEmail == "" {
		return false
	}
	return true
}

// CompleteOrder is the free checkout action. It is only available once the
// promo code has been applied; paid orders complete through the payment
// widget's success callback instead.
func (o *Orchestrator) CompleteOrder(ctx context.Context) (Confirmation, error) {
	if !o.promoApplied {
		return Confirmation{}, &apperrors.ValidationError{Field: "promoCode", Message: "a promo code is required to complete the order without payment"}
	}
	if !o.CanSubmit() {
		return Confirmation{}, &apperrors.ValidationError{Message: "missing required customer information"}
	}
	return o.HandlePaymentSuccess(), nil
}

// HandlePaymentSuccess runs once the payment (or free checkout) is done.
// The notification is attempted before the confirmation is handed back, but
// a notification failure only surfaces through Err: the payment is settled
// and is never rolled back from here.
func (o *Orchestrator) HandlePaymentSuccess() Confirmation {
	o.state = StateSubmitting
	o.errMsg = ""

	conf := Confirmation{PlanName: o.plan.Name}
	if o.isGift && o.giftEmail != "" {
		sender := o.gifterName
		if sender == "" {
			sender = o.customerName
		}
		conf.Gift = true
		conf.GiftEmail = o.giftEmail
		conf.SenderName = sender
		conf.GiftMessage = o.giftMessage
	}

	if err := o.notifier.PaymentSucceeded(Notification{
		Gift:          conf.Gift,
		GiftEmail:     conf.GiftEmail,
		SenderName:    conf.SenderName,
		GiftMessage:   conf.GiftMessage,
		CustomerName:  o.customerName,
		CustomerEmail: o.customerEmail,
		PlanName:      o.plan.Name,
	}); err != nil {
		utils.LogError(err, "post-payment notification failed")
		o.errMsg = "Failed to send confirmation email"
	}

	o.state = StateSucceeded
	return conf
}

// Fail records a payment failure reported by the widget.
func (o *Orchestrator) Fail(message string) {
	o.state = StateFailed
	o.errMsg = message
}

// initPayment creates a new payment intent for the current plan. Fires only
// when the card form will actually be shown. If a later event bumped the
// sequence while the call was in flight, the response is discarded and its
// intent canceled.
func (o *Orchestrator) initPayment(ctx context.Context) {
	if o.promoApplied || o.method != MethodCard || o.plan.Name == "" {
		return
	}
	o.state = StateAwaitingPaymentInit
	o.initSeq++
	seq := o.initSeq

	res, err := o.intents.InitializeAmount(ctx, o.price, "usd")
	if seq != o.initSeq {
		if err == nil && res.ID != "" {
			if cancelErr := o.intents.Cancel(ctx, res.ID); cancelErr != nil {
				utils.LogError(cancelErr, "could not cancel stale payment intent")
			}
		}
		return
	}
	if err != nil {
		utils.LogError(err, "payment initialization failed")
		o.errMsg = "Failed to initialize payment. Please try again."
		o.state = StateCollectingInfo
		return
	}

	o.errMsg = ""
	o.intentID = res.ID
	o.clientSecret = res.ClientSecret
}
