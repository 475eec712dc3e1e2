package models

import (
	"time"
)

// ChatMessage is a private chat message belonging to a single user.
// Messages are append-only; they are never edited or deleted.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ChatMessageWithAuthor is a chat message enriched with its author's name.
type ChatMessageWithAuthor struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
}
