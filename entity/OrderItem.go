package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots product data at order time. The snapshot columns stay
// valid even if the catalog row is later edited or deleted.
type OrderItem struct {
	gorm.Model
	OrderID uint `json:"orderId"`

	ProductID       uint   `json:"productId"`
	ProductName     string `json:"productName"`
	ProductImageURL string `json:"productImageUrl"`
	UnitPrice       int64  `json:"unitPrice"`

	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}
