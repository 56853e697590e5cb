package models

import (
	"time"
)

type ChatSessionStatus string

const (
	ChatSessionActive ChatSessionStatus = "active"
	ChatSessionClosed ChatSessionStatus = "closed"
)

// ChatSession is one visitor conversation with support.
type ChatSession struct {
	ID        string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string            `json:"name" gorm:"not null"`
	Email     string            `json:"email" gorm:"not null"`
	Status    ChatSessionStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (ChatSession) TableName() string {
	return "live_chat_sessions"
}

// ChatMessage is a single message in a session. IsAgent marks replies from
// the support side.
type ChatMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SessionID string    `json:"sessionId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsAgent   bool      `json:"isAgent" gorm:"column:is_agent"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ChatMessage) TableName() string {
	return "live_chat_messages"
}

// ChatSessionCreate is the payload to open a session.
type ChatSessionCreate struct {
	Name  string `json:"name" binding:"required" example:"Jane"`
	Email string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
}

// ChatMessageCreate is the payload to post a message into a session.
type ChatMessageCreate struct {
	Message string `json:"message" binding:"required" example:"Hi, I need help with my subscription."`
}
