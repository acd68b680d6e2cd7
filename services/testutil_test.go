package services

import (
	"testing"

	"osrstrivia/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// A second pooled connection would see a different :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.CompletedQuestion{}, &models.Question{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, xp int) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		XP:           xp,
		Level:        1,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestQuestion(t *testing.T, db *gorm.DB, text, correct, difficulty, category string, reward int) *models.Question {
	t.Helper()
	question := &models.Question{
		Text:          text,
		Answers:       models.MakeAnswers([]string{correct, "wrong a", "wrong b", "wrong c"}),
		CorrectAnswer: correct,
		Difficulty:    difficulty,
		Category:      category,
		XPReward:      reward,
	}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("failed to create question: %v", err)
	}
	return question
}
