package models

import (
	"time"
)

// PaymentHistory records one settled charge. AmountCents is in minor units
// of the currency.
type PaymentHistory struct {
	ID                    string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID            string    `json:"customerId" gorm:"type:uuid"`
	AmountCents           int64     `json:"amountCents"`
	Currency              string    `json:"currency" gorm:"type:varchar(10);default:'usd'"`
	StripePaymentIntentId string    `json:"stripePaymentIntentId"`
	PaidAt                time.Time `json:"paidAt"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (PaymentHistory) TableName() string {
	return "payment_history"
}
