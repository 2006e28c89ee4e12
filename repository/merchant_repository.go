// repository/merchant_repository.go
package repository

import (
	"beadcraft/entity"

	"gorm.io/gorm"
)

type MerchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db}
}

func (r *MerchantRepository) FindByEmail(email string) (*entity.Merchant, error) {
	var m entity.Merchant
	if err := r.db.Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MerchantRepository) FindByID(id uint) (*entity.Merchant, error) {
	var m entity.Merchant
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// IsEmailAllowed checks the dashboard allowlist.
func (r *MerchantRepository) IsEmailAllowed(email string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.AllowedEmail{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
