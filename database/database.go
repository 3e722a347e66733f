package database

import (
	"fmt"
	"log"

	"bandsite-api/config"
	"bandsite-api/internal/domain/carousel"
	"bandsite-api/internal/domain/concerts"
	"bandsite-api/internal/domain/posts"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.C.DBURL
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate creates or updates the three content tables. The carousel table
// carries unique indexes on both url and position.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&posts.Post{},
		&concerts.Concert{},
		&carousel.Picture{},
	)
}
