package models

import (
	"time"
)

type NewsletterSubscriber struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// NewsletterSubscribe is the payload for the subscribe endpoint.
type NewsletterSubscribe struct {
	Email string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
}
