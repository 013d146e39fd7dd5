package model

import "time"

// Email delivery statuses.
const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLog records one attempted transactional email.
type EmailLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id,omitempty" gorm:"index"`
	To        string    `json:"to" gorm:"size:255;not null"`
	Kind      string    `json:"kind" gorm:"size:50;not null"`
	Provider  string    `json:"provider" gorm:"size:50;default:'smtp'"`
	Status    string    `json:"status" gorm:"size:20;not null"`
	Error     string    `json:"error,omitempty" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
