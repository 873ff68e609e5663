package storage

import (
	"golftrip-server/models"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Destination{},
		&models.Booking{},
		&models.BookingItem{},
		&models.PaymentTransaction{},
		&models.Article{},
		&models.Inquiry{},
		&models.HeroSlide{},
		&models.Testimonial{},
		&models.Partner{},
		&models.SiteSetting{},
		&models.AuditLog{},
		&models.ConsentRecord{},
		&models.DataExportRequest{},
		&models.DataDeletionRequest{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}
