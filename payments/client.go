package payments

import (
	"context"
	"errors"
	"time"

	"kinscreen-backend/apperrors"
	"kinscreen-backend/config"
	"kinscreen-backend/utils"

	"github.com/shopspring/decimal"
)

// IntentRequest mirrors the payment-intent creation payload. Amount is in
// minor units.
type IntentRequest struct {
	Amount           int64
	Currency         string
	SetupFutureUsage string
	TrialPeriodDays  int64
}

// IntentResult carries the identifiers the card widget needs.
type IntentResult struct {
	ID           string
	ClientSecret string
}

// IntentCreator is the gateway-facing half of the client. The production
// implementation talks to Stripe.
type IntentCreator interface {
	CreateIntent(ctx context.Context, req IntentRequest) (IntentResult, error)
	CancelIntent(ctx context.Context, id string) error
}

// Client wraps intent creation with bounded retry. Each successful call
// creates a distinct intent on the gateway, so concurrent calls for the
// same checkout must be avoided by the caller.
type Client struct {
	cfg     config.Payments
	creator IntentCreator
	sleep   func(time.Duration)
}

func NewClient(cfg config.Payments, creator IntentCreator) *Client {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	return &Client{cfg: cfg, creator: creator, sleep: time.Sleep}
}

// Initialize creates a payment intent, retrying on failure with a doubling
// delay (base, 2*base, ...; no delay after the final attempt). A response
// without a client secret counts as a failure. On exhaustion the last error
// is wrapped in a PaymentInitializationError.
func (c *Client) Initialize(ctx context.Context, req IntentRequest) (IntentResult, error) {
	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		res, err := c.creator.CreateIntent(ctx, req)
		if err == nil && res.ClientSecret == "" {
			err = errors.New("invalid response from payment server: missing client secret")
		}
		if err == nil {
			return res, nil
		}
		lastErr = err
		utils.LogError(err, "payment intent creation attempt failed")

		if attempt < c.cfg.MaxRetries-1 {
			c.sleep(c.cfg.BackoffBase << attempt)
		}
	}
	return IntentResult{}, &apperrors.PaymentInitializationError{Attempts: c.cfg.MaxRetries, Last: lastErr}
}

// InitializeAmount converts a major-unit amount before initializing.
func (c *Client) InitializeAmount(ctx context.Context, amount decimal.Decimal, currency string) (IntentResult, error) {
	return c.Initialize(ctx, IntentRequest{Amount: ToMinorUnits(amount), Currency: currency})
}

// Cancel voids an intent that will never be confirmed, e.g. when a promo
// code zeroes out the order after the intent was issued. Single attempt,
// the intent expires on the gateway anyway if this fails.
func (c *Client) Cancel(ctx context.Context, id string) error {
	return c.creator.CancelIntent(ctx, id)
}
