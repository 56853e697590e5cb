package models

import (
	"time"
)

// ContactSubmission is a message sent through the contact page.
// @Description Full model of a contact form submission
type ContactSubmission struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FirstName   string    `json:"firstName" gorm:"column:first_name" binding:"required"`
	LastName    string    `json:"lastName" gorm:"column:last_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Message     string    `json:"message" gorm:"type:text" binding:"required"`
	SubmittedAt time.Time `json:"submittedAt" gorm:"column:submitted_at;default:CURRENT_TIMESTAMP"`
	CreatedAt   time.Time `json:"createdAt" swaggerignore:"true"`
	UpdatedAt   time.Time `json:"updatedAt" swaggerignore:"true"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// ContactSubmissionCreate is the payload for the contact endpoint.
// @Description payload to submit a contact request
type ContactSubmissionCreate struct {
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Message   string `json:"message" binding:"required" example:"I would like to know more about the lifetime plan."`
}
