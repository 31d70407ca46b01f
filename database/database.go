package database

import (
	"fmt"
	"log"

	config "github.com/mwangiben/skill_share/configs"
	"github.com/mwangiben/skill_share/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Skill{},
		&models.Exchange{},
		&models.Message{},
		&models.Review{},
		&models.Bookmark{},
		&models.AccessToken{},
		&models.PasswordResetToken{},
		&models.Certificate{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedCategories inserts the fixed category list once. Categories are
// effectively immutable after deploy; reruns are no-ops.
func SeedCategories() {
	var count int64
	if err := DB.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check categories: %v", err)
		return
	}
	if count > 0 {
		log.Println("Categories already seeded.")
		return
	}

	categories := []models.Category{
		{Name: "Programming", Description: "Learn programming languages and development", Icon: "💻"},
		{Name: "Design", Description: "UI/UX design and creative skills", Icon: "🎨"},
		{Name: "Music", Description: "Musical instruments and music theory", Icon: "🎵"},
		{Name: "Languages", Description: "Learn new languages", Icon: "🌍"},
		{Name: "Business", Description: "Business and entrepreneurship skills", Icon: "📊"},
		{Name: "Fitness", Description: "Fitness and health coaching", Icon: "💪"},
		{Name: "Photography", Description: "Photography and videography skills", Icon: "📸"},
		{Name: "Writing", Description: "Writing and content creation", Icon: "✍️"},
	}

	if err := DB.Create(&categories).Error; err != nil {
		log.Fatalf("🔥 Failed to seed categories: %v", err)
		return
	}
	log.Println("✅ Categories seeded successfully")
}
