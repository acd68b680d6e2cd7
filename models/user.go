package models

import "time"

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	XP                int       `json:"xp" gorm:"not null;default:0"`
	Level             int       `json:"level" gorm:"not null;default:1"`
	Streak            int       `json:"streak" gorm:"not null;default:0"`
	QuestionsAnswered int       `json:"questionsAnswered" gorm:"not null;default:0"`
	CorrectAnswers    int       `json:"correctAnswers" gorm:"not null;default:0"`
	LastActive        time.Time `json:"lastActive"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"-"`

	// Relationships
	CompletedQuestions []CompletedQuestion `json:"completedQuestions,omitempty" gorm:"foreignKey:UserID"`
}

// CompletedQuestion marks a question a user has answered correctly at least
// once. The composite key makes repeat insertion a no-op.
type CompletedQuestion struct {
	UserID     uint      `json:"-" gorm:"primaryKey;autoIncrement:false"`
	QuestionID uint      `json:"questionId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `json:"-"`
}
