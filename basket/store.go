package basket

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// Store persists a basket per device id (the browser keeps a generated
// device id, there is no customer account).
type Store interface {
	Load(deviceID string) (*Basket, error)
	Save(deviceID string, b *Basket) error
	Clear(deviceID string) error
}

// Record is the persisted row: one JSON blob per device.
type Record struct {
	gorm.Model
	DeviceID string `gorm:"uniqueIndex;size:64"`
	Items    string
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load returns an empty basket for unknown devices.
func (s *GormStore) Load(deviceID string) (*Basket, error) {
	var rec Record
	err := s.db.Where("device_id = ?", deviceID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Basket{}, nil
	}
	if err != nil {
		return nil, err
	}

	var b Basket
	if err := json.Unmarshal([]byte(rec.Items), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) Save(deviceID string, b *Basket) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}

	var rec Record
	err = s.db.Where("device_id = ?", deviceID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&Record{DeviceID: deviceID, Items: string(data)}).Error
	}
	if err != nil {
		return err
	}

	rec.Items = string(data)
	return s.db.Save(&rec).Error
}

func (s *GormStore) Clear(deviceID string) error {
	return s.db.Where("device_id = ?", deviceID).Delete(&Record{}).Error
}
