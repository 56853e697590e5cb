package models

import (
	"time"
)

type QueuedEmailStatus string

const (
	EmailPending QueuedEmailStatus = "pending"
	EmailSent    QueuedEmailStatus = "sent"
	EmailFailed  QueuedEmailStatus = "failed"
)

// QueuedEmail is a deferred outbound mail. The queue is drained in batches
// by the process endpoint; failures stay in the table with the error text.
type QueuedEmail struct {
	ID          string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ToEmail     string            `json:"toEmail" gorm:"column:to_email;not null"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent" gorm:"column:html_content;type:text"`
	Status      QueuedEmailStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	SentAt      *time.Time        `json:"sentAt" gorm:"column:sent_at"`
	Error       string            `json:"error"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (QueuedEmail) TableName() string {
	return "email_queue"
}

// QueuedEmailCreate is the payload to enqueue a mail.
type QueuedEmailCreate struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	HTML    string `json:"html" binding:"required"`
}
