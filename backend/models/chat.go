package models

import "gorm.io/gorm"

// ChatSession is one logical session per user, upserted on first message.
type ChatSession struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex"`
	Messages []ChatMessage
}

type ChatMessage struct {
	gorm.Model
	ChatSessionID uint   `gorm:"index"`
	Sender        string // "user" or "bot"
	Body          string
}
