package entity

import (
	"gorm.io/gorm"
)

const (
	SenderCustomer = "customer"
	SenderMerchant = "merchant"
)

// Messages are append-only: never edited, never deleted.
type Message struct {
	gorm.Model
	ConversationID uint   `json:"conversationId"`
	Body           string `json:"body"`
	Sender         string `json:"sender"`
}
