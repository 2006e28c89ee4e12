package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor units
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Active      bool   `json:"active" gorm:"default:true"`
}
