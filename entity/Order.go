package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Ref is the short human-facing code (e.g. "ORD-82F1K"), distinct from
	// the internal row id. Uniqueness is enforced by this index, not by the
	// generator.
	Ref          string `json:"ref" gorm:"uniqueIndex;size:16"`
	Status       string `json:"status"`
	TotalPrice   int64  `json:"totalPrice"`
	CustomerNote string `json:"customerNote"`

	Items []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
}
