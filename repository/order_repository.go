// repository/order_repository.go
package repository

import (
	"beadcraft/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db}
}

// Create inserts the order header. A duplicate ref comes back as
// gorm.ErrDuplicatedKey (TranslateError is on), which callers treat as a
// retryable collision.
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// CreateItems inserts the line items as one batch.
func (r *OrderRepository) CreateItems(tx *gorm.DB, items []entity.OrderItem) error {
	return tx.Create(&items).Error
}

func (r *OrderRepository) GetByRef(ref string) (*entity.Order, error) {
	var o entity.Order
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Where("ref = ?", ref).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard performs the conditional update; 0 affected rows means
// the order moved out of `from` concurrently (or never was there).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
