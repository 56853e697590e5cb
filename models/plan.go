package models

import (
	"time"
)

// Plan is a pricing-page entry. The price stays a display string ("$5"),
// the checkout flow parses it when it needs an amount.
type Plan struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Price        string    `json:"price"`
	Period       string    `json:"period"`
	Description  string    `json:"description"`
	Features     []string  `json:"features" gorm:"serializer:json"`
	Popular      bool      `json:"popular"`
	Special      bool      `json:"special"`
	Subscription bool      `json:"subscription"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultPlans is the catalog seeded on first start.
var DefaultPlans = []Plan{
	{
		Name:        "Free Trial",
		Price:       "$0",
		Period:      "7 days",
		Description: "Try KinScreen risk-free",
		Features: []string{
			"Basic photo transitions",
			"Single device support",
			"Email support",
			"Up to 100 photos",
			"Basic sharing features",
			"7-day full access",
			"Converts to $5/month",
		},
	},
	{
		Name:        "Monthly",
		Price:       "$5",
		Period:      "monthly",
		Description: "Full access with auto-renewal",
		Popular:     true,
		Features: []string{
			"Premium transitions & effects",
			"Up to 5 devices",
			"Priority support 24/7",
			"Unlimited photos",
			"Advanced sharing features",
			"Family access included",
			"Cancel anytime",
			"Auto-renews monthly",
		},
		Subscription: true,
	},
	{
		Name:        "Lifetime",
		Price:       "$29.99",
		Period:      "one-time",
		Description: "Best value for families",
		Special:     true,
		Features: []string{
			"Everything in Monthly plan",
			"Lifetime access",
			"Premium support forever",
			"Early access to new features",
			"Exclusive content & effects",
			"Priority feature requests",
			"Free upgrades for life",
		},
	},
}
