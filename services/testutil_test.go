package services

import (
	"fmt"
	"strings"
	"testing"

	"beadcraft/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the same config as
// production (TranslateError on, so duplicate keys are distinguishable).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.Merchant{}, &entity.AllowedEmail{},
		&entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Conversation{}, &entity.Message{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: price, ImageURL: "/images/" + name + ".jpg", Category: "bracelets", Active: true}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}
