package main

import (
	"log"
	"os"

	"restaurant-pos-be/internal/model"
	"restaurant-pos-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding dining tables...")

	for number := 1; number <= 10; number++ {
		var existing model.Table
		if err := db.Where("number = ?", number).First(&existing).Error; err == nil {
			log.Printf("Table %d already exists, skipping...", number)
			continue
		}

		if err := db.Create(&model.Table{Number: number}).Error; err != nil {
			log.Printf("Error creating table %d: %v", number, err)
		} else {
			log.Printf("Created table %d", number)
		}
	}

	log.Println("Seeding product catalog...")

	products := []model.Product{
		{Name: "Spaghetti Bolognese", Price: 45},
		{Name: "Margherita Pizza", Price: 52},
		{Name: "Caesar Salad", Price: 28},
		{Name: "Grilled Salmon", Price: 74},
		{Name: "Mushroom Risotto", Price: 48},
		{Name: "Tiramisu", Price: 22},
		{Name: "Sparkling Water", Price: 8},
		{Name: "House Red Wine", Price: 35},
	}

	for _, p := range products {
		var existing model.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			log.Printf("Product '%s' already exists, skipping...", p.Name)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating product '%s': %v", p.Name, err)
		} else {
			log.Printf("Created product: %s", p.Name)
		}
	}

	log.Println("Seeding completed!")
}
