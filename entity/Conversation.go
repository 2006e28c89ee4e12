package entity

import (
	"gorm.io/gorm"
)

// Conversation is a buyer/seller thread addressed only by its unguessable
// token; there is no customer account behind it. Product fields are a
// snapshot of the product the customer asked about.
type Conversation struct {
	gorm.Model
	Token string `json:"token" gorm:"uniqueIndex;size:64"`
	Email string `json:"email"`

	ProductName     string `json:"productName"`
	ProductPrice    int64  `json:"productPrice"`
	ProductImageURL string `json:"productImageUrl"`

	Messages []Message `json:"messages" gorm:"constraint:OnDelete:CASCADE"`
}
