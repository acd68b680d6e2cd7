package services

import (
	"errors"
	"strings"
	"time"

	"osrstrivia/levels"
	"osrstrivia/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerService struct {
	db          *gorm.DB
	leaderboard *LeaderboardService
}

func NewAnswerService(db *gorm.DB, leaderboard *LeaderboardService) *AnswerService {
	return &AnswerService{db: db, leaderboard: leaderboard}
}

type CheckAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type CheckAnswerResponse struct {
	IsCorrect     bool    `json:"isCorrect"`
	CorrectAnswer *string `json:"correctAnswer"`
	Explanation   string  `json:"explanation"`
	XPGained      int     `json:"xpGained"`
	UserLevel     int     `json:"userLevel"`
	UserXP        int     `json:"userXp"`
}

// CheckAnswer evaluates a submission against the stored answer key and
// applies the outcome to the user's aggregate record. Comparison is a
// case-insensitive exact match; no whitespace normalization is applied. The
// user row is locked for the duration of the update so concurrent
// submissions from the same user cannot interleave.
func (s *AnswerService) CheckAnswer(userID uint, req *CheckAnswerRequest) (*CheckAnswerResponse, error) {
	var question models.Question
	if err := s.db.First(&question, req.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	isCorrect := strings.EqualFold(req.Answer, question.CorrectAnswer)

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.QuestionsAnswered++
		if isCorrect {
			user.CorrectAnswers++
			user.Streak++
			user.XP += question.XPReward
			user.Level = levels.ForXP(user.XP)

			completed := models.CompletedQuestion{UserID: user.ID, QuestionID: question.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&completed).Error; err != nil {
				return err
			}
		} else {
			user.Streak = 0
		}
		user.LastActive = time.Now()

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	if isCorrect && s.leaderboard != nil {
		if err := s.leaderboard.RecordXP(&user); err != nil {
			log.WithError(err).WithField("user_id", user.ID).Warn("failed to record leaderboard score")
		}
	}

	resp := &CheckAnswerResponse{
		IsCorrect:   isCorrect,
		Explanation: question.Explanation,
		UserLevel:   user.Level,
		UserXP:      user.XP,
	}
	if isCorrect {
		resp.XPGained = question.XPReward
	} else {
		resp.CorrectAnswer = &question.CorrectAnswer
	}
	return resp, nil
}

// lockForUpdate applies a row-level lock. SQLite (used in tests) has no FOR
// UPDATE clause; its transaction write lock already serializes the update.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
