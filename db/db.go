package db

import (
	"errors"

	"kinscreen-backend/models"
	"kinscreen-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		utils.LogError(nil, "DB_URL is not set")
		panic("database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.Plan{},
		&models.Customer{},
		&models.Subscription{},
		&models.PaymentHistory{},
		&models.GiftRecord{},
		&models.NewsletterSubscriber{},
		&models.ContactSubmission{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.QueuedEmail{},
		&models.AdminUser{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}

// Seed inserts the plan catalog and the bootstrap admin account when they
// are missing. Safe to run on every start.
func Seed(adminEmail, adminPassword string) {
	for _, plan := range models.DefaultPlans {
		var existing models.Plan
		err := DB.Where("name = ?", plan.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError(err, "Error checking plan "+plan.Name)
			continue
		}
		if err := DB.Create(&plan).Error; err != nil {
			utils.LogError(err, "Error seeding plan "+plan.Name)
		}
	}

	if adminEmail == "" || adminPassword == "" {
		return
	}
	var admin models.AdminUser
	if err := DB.Where("email = ?", adminEmail).First(&admin).Error; err == nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError(err, "Error hashing admin password")
		return
	}
	if err := DB.Create(&models.AdminUser{Email: adminEmail, Password: string(hash)}).Error; err != nil {
		utils.LogError(err, "Error seeding admin user")
		return
	}
	utils.LogSuccess("Bootstrap admin account created")
}
