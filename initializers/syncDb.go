package initializers

import (
	"log"
	"os"

	"github.com/freshmart/freshmart-api/models"
	"github.com/freshmart/freshmart-api/services"
	"github.com/freshmart/freshmart-api/session"
	"gorm.io/gorm"
)

func SyncDatabase() {
	err := DB.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &session.Record{})
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database synced successfully.")

	if err := Seed(DB); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}
}

// Seed ensures the admin account and the initial catalog exist. Safe to
// run on every boot.
func Seed(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		var count int64
		db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count)
		if count == 0 {
			hash, err := services.HashPassword(adminPassword)
			if err != nil {
				return err
			}
			admin := models.User{Name: "Store Admin", Email: adminEmail, Password: hash, IsAdmin: true}
			if err := db.Create(&admin).Error; err != nil {
				return err
			}
			log.Println("Admin user created.")
		}
	}

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount == 0 {
		catalog := []models.Product{
			{Name: "Tomatoes", Price: 8.50, ImageURL: "images/tomato.jpg"},
			{Name: "Cucumbers", Price: 12.00, ImageURL: "images/cucumber.jpg"},
			{Name: "Potatoes", Price: 10.00, ImageURL: "images/potato.jpg"},
			{Name: "Onions", Price: 7.50, ImageURL: "images/onion.jpg"},
			{Name: "Red Apples", Price: 35.00, ImageURL: "images/redapple.jpg"},
			{Name: "Bananas", Price: 15.00, ImageURL: "images/banana.jpg"},
			{Name: "Oranges", Price: 9.00, ImageURL: "images/orange.jpg"},
			{Name: "Strawberries", Price: 25.00, ImageURL: "images/strawberry.jpg"},
		}
		if err := db.Create(&catalog).Error; err != nil {
			return err
		}
		log.Println("Sample products added.")
	}

	return nil
}
