package payments

import (
	"context"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeIntentCreator creates and cancels PaymentIntents through the Stripe
// API. stripe.Key is set once at startup from the configuration.
type StripeIntentCreator struct{}

func (StripeIntentCreator) CreateIntent(ctx context.Context, req IntentRequest) (IntentResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.SetupFutureUsage != "" {
		params.SetupFutureUsage = stripe.String(req.SetupFutureUsage)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return IntentResult{}, err
	}
	return IntentResult{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (StripeIntentCreator) CancelIntent(ctx context.Context, id string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	_, err := paymentintent.Cancel(id, params)
	return err
}
