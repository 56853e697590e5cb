package models

import (
	"time"
)

// GiftRecord keeps track of a checkout made in gift mode, so support can
// re-send the gift notification if it never arrives.
type GiftRecord struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID     string    `json:"customerId" gorm:"type:uuid"`
	RecipientEmail string    `json:"recipientEmail" gorm:"not null"`
	SenderName     string    `json:"senderName"`
	PlanName       string    `json:"planName"`
	Message        string    `json:"message" gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (GiftRecord) TableName() string {
	return "gift_records"
}
