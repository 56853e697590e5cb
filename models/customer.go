package models

import (
	"time"
)

type CustomerStatus string

const (
	CustomerActive CustomerStatus = "active"
	CustomerTrial  CustomerStatus = "trial"
)

// Customer is a paying (or trialing) account. Uniqueness is assumed on the
// email, which is stored lowercased.
type Customer struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email            string         `json:"email" gorm:"uniqueIndex;not null"`
	FirstName        string         `json:"firstName" gorm:"column:first_name"`
	LastName         string         `json:"lastName" gorm:"column:last_name"`
	Status           CustomerStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	StripeCustomerId string         `json:"stripeCustomerId"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}
