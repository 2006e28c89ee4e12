// repository/product_repository.go
package repository

import (
	"beadcraft/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db}
}

func (r *ProductRepository) GetByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListActive is the public catalog view.
func (r *ProductRepository) ListActive() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("active = ?", true).Order("created_at DESC").Find(&products).Error
	return products, err
}

// ListAll is the merchant view, inactive rows included.
func (r *ProductRepository) ListAll() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes the catalog row. Order item and conversation
// snapshots are copies, so history is unaffected.
func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Product{}, id).Error
}
