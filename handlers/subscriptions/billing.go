package subscriptions

import (
	stripe "github.com/stripe/stripe-go/v82"
	stripeSubscription "github.com/stripe/stripe-go/v82/subscription"
)

// BillingClient cancels a subscription on the billing system.
type BillingClient interface {
	CancelSubscription(subscriptionID string) error
}

// StripeBilling is the production billing client.
type StripeBilling struct{}

func (StripeBilling) CancelSubscription(subscriptionID string) error {
	_, err := stripeSubscription.Cancel(subscriptionID, &stripe.SubscriptionCancelParams{
		Prorate: stripe.Bool(false),
	})
	return err
}
