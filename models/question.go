package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Difficulty tiers, ordered easiest to hardest.
const (
	DifficultyBeginner = "Beginner"
	DifficultyEasy     = "Easy"
	DifficultyMedium   = "Medium"
	DifficultyHard     = "Hard"
	DifficultyElite    = "Elite"
	DifficultyMaster   = "Master"
)

type Question struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Text          string         `json:"text" gorm:"not null"`
	Answers       datatypes.JSON `json:"answers" gorm:"not null"` // four candidate strings, one correct
	CorrectAnswer string         `json:"-" gorm:"not null"`
	Difficulty    string         `json:"difficulty" gorm:"not null;index"`
	Category      string         `json:"category" gorm:"index"`
	XPReward      int            `json:"xpReward" gorm:"not null;default:50"`
	Explanation   string         `json:"explanation,omitempty"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	CreatedAt     time.Time      `json:"-"`
	UpdatedAt     time.Time      `json:"-"`
}

// QuestionView is the client-facing projection of a question.
// It never carries the answer key.
type QuestionView struct {
	ID          uint     `json:"id"`
	Text        string   `json:"text"`
	Answers     []string `json:"answers"`
	Difficulty  string   `json:"difficulty"`
	Category    string   `json:"category"`
	XPReward    int      `json:"xpReward"`
	Explanation string   `json:"explanation,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// AnswerList decodes the stored candidate answers.
func (q *Question) AnswerList() []string {
	var answers []string
	_ = json.Unmarshal(q.Answers, &answers)
	return answers
}

// View strips the answer key from a question.
func (q *Question) View() QuestionView {
	return QuestionView{
		ID:          q.ID,
		Text:        q.Text,
		Answers:     q.AnswerList(),
		Difficulty:  q.Difficulty,
		Category:    q.Category,
		XPReward:    q.XPReward,
		Explanation: q.Explanation,
		ImageURL:    q.ImageURL,
	}
}

// MakeAnswers encodes a candidate answer list for storage.
func MakeAnswers(answers []string) datatypes.JSON {
	data, _ := json.Marshal(answers)
	return datatypes.JSON(data)
}
