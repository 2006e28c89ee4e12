package entity

import (
	"gorm.io/gorm"
)

type Merchant struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Name     string `json:"name"`
}
