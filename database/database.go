package database

import (
	"fmt"
	"log"

	"canvas-app/config"
	"canvas-app/internal/domain/users"
	"canvas-app/internal/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects and migrates, returning the handle. Callers wire it into
// the stores; there is no package-level DB.
func InitDB() *gorm.DB {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Required for uuid generation
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&users.VerificationToken{},
		&store.CanvasRow{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
	return db
}
