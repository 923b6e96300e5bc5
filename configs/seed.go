package configs

import (
	"log"
	"time"

	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/utils"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData creates the demo accounts, starter products and a two-day
// menu on an empty database. Safe to run on every start.
func SeedDemoData() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("seed skipped: users already exist")
		return nil
	}

	users := []struct {
		username, password, email string
		role                      entity.Role
	}{
		{"cook", "cook123", "cook@school.ru", entity.RoleCook},
		{"admin", "admin123", "admin@school.ru", entity.RoleAdmin},
		{"student", "student123", "student@school.ru", entity.RoleStudent},
	}

	var studentUserID uint
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{
			Username: u.username,
			Password: string(hash),
			Email:    u.email,
			Role:     u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		if u.role == entity.RoleStudent {
			studentUserID = user.ID
		}
	}

	student := entity.Student{
		UserID:      studentUserID,
		Grade:       "10A",
		Allergies:   "None",
		Preferences: "Vegetarian",
		Balance:     1000.0,
	}
	if err := db.Create(&student).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "Wheat flour", Unit: "kg", CurrentQuantity: 10, MinQuantity: 5},
		{Name: "Sugar", Unit: "kg", CurrentQuantity: 5, MinQuantity: 3},
		{Name: "Eggs", Unit: "pcs", CurrentQuantity: 50, MinQuantity: 30},
		{Name: "Milk", Unit: "l", CurrentQuantity: 20, MinQuantity: 10},
		{Name: "Potatoes", Unit: "kg", CurrentQuantity: 30, MinQuantity: 20},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	type dish struct {
		name, desc string
		price      float64
	}
	breakfast := []dish{
		{"Oatmeal with berries", "Oat porridge with fresh berries and honey", 150},
		{"Vegetable omelette", "Fluffy omelette with tomatoes, bell pepper and herbs", 180},
		{"Pancakes with cottage cheese", "Thin pancakes filled with cottage cheese and raisins", 200},
	}
	lunch := []dish{
		{"Chicken noodle soup", "Chicken broth with homemade noodles and herbs", 200},
		{"Chicken cutlet with mashed potatoes", "Tender chicken cutlet with mashed potatoes", 250},
		{"Baked fish with vegetables", "Fish fillet baked with potatoes and carrots", 280},
	}

	today := utils.Today()
	var items []entity.MenuItem
	for _, day := range []time.Time{today, today.AddDate(0, 0, 1)} {
		for _, d := range breakfast {
			items = append(items, entity.MenuItem{
				Date: day, MealType: entity.MealBreakfast,
				DishName: d.name, Description: d.desc,
				Price: d.price, AvailableCount: 50,
			})
		}
		for _, d := range lunch {
			items = append(items, entity.MenuItem{
				Date: day, MealType: entity.MealLunch,
				DishName: d.name, Description: d.desc,
				Price: d.price, AvailableCount: 50,
			})
		}
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("seed complete: demo users cook/cook123, admin/admin123, student/student123")
	return nil
}
