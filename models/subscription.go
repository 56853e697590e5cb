package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionTrial    SubscriptionStatus = "trial"
)

// Subscription links a customer to a plan. A customer has at most one
// subscription treated as "the active one": the most recent row with
// status active.
type Subscription struct {
	ID                   string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID           string             `json:"customerId" gorm:"type:uuid;not null"`
	PlanName             string             `json:"planName"`
	Status               SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	StripeSubscriptionId string             `json:"stripeSubscriptionId"`
	CurrentPeriodEnd     *time.Time         `json:"currentPeriodEnd"`
	AutoRenew            bool               `json:"autoRenew"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}
