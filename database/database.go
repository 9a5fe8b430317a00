package database

import (
	"fmt"
	"log"
	"time"

	"github.com/anjiri1684/mockprep/data"
	"github.com/anjiri1684/mockprep/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
	})
}

func ConnectDB(dsn string) *gorm.DB {
	db, err := Open(dsn)
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db
}

// Models lists every table the API owns, in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.StudentProfile{},
		&models.InterviewerProfile{},
		&models.Company{},
		&models.AvailabilitySlot{},
		&models.Interview{},
		&models.FeedbackReport{},
		&models.TrainingModule{},
		&models.TrainingProgress{},
		&models.PracticeQuestion{},
		&models.Assessment{},
		&models.AssessmentAttempt{},
		&models.TrainerMessage{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Println("✅ Database migration successful")
	return nil
}

func SeedAdmin(db *gorm.DB, email, password, fullName string) error {
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed.")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("check for admin user: %w", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
		Plan:     "enterprise",
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	log.Println("✅ Admin user seeded successfully")
	return nil
}

// SeedDemoData loads the demo dataset once. Existing rows are left alone so
// reseeding an existing database is harmless.
func SeedDemoData(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&models.Company{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Demo data already present.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ds := data.Build(now, string(hash))

	err = db.Transaction(func(tx *gorm.DB) error {
		skip := tx.Clauses(clause.OnConflict{DoNothing: true})
		batches := []interface{}{
			&ds.Users, &ds.Companies, &ds.Slots, &ds.Interviews, &ds.Feedback,
			&ds.TrainingModules, &ds.TrainingProgress, &ds.PracticeQuestions, &ds.Assessments,
		}
		for _, batch := range batches {
			if err := skip.Create(batch).Error; err != nil {
				return err
			}
		}
		if err := skip.Omit("User").Create(&ds.StudentProfiles).Error; err != nil {
			return err
		}
		return skip.Omit("User").Create(&ds.InterviewerProfiles).Error
	})
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	log.Println("✅ Demo data seeded successfully")
	return nil
}
