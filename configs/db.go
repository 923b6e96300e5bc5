package configs

import (
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{}, &entity.Student{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.Payment{},
		&entity.Product{}, &entity.PurchaseRequest{},
		&entity.Review{},
	)
}
