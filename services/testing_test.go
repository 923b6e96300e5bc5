package services

import (
	"path/filepath"
	"testing"

	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database in the test's temp dir. A
// file is used instead of :memory: so every pooled connection sees the
// same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "canteen_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Student{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.Payment{},
		&entity.Product{}, &entity.PurchaseRequest{},
		&entity.Review{},
	))
	return db
}

func createStudent(t *testing.T, db *gorm.DB, balance float64) (*entity.User, *entity.Student) {
	t.Helper()
	user := entity.User{Username: "pupil", Password: "x", Role: entity.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	student := entity.Student{UserID: user.ID, Grade: "10A", Balance: balance}
	require.NoError(t, db.Create(&student).Error)
	return &user, &student
}

func createMenuItem(t *testing.T, db *gorm.DB, price float64, available int) *entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{
		Date:           utils.Today(),
		MealType:       entity.MealLunch,
		DishName:       "Chicken noodle soup",
		Price:          price,
		AvailableCount: available,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}
