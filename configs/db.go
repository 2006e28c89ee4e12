package configs

import (
	"beadcraft/basket"
	"beadcraft/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError makes unique-constraint violations surface as
	// gorm.ErrDuplicatedKey; the order ref retry loop depends on it.
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Merchant{}, &entity.AllowedEmail{},
		&entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Conversation{}, &entity.Message{},
		&basket.Record{},
	)
}
