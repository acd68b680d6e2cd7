package services

import (
	"errors"
	"math/rand"

	"osrstrivia/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// QuestionFilter narrows the question pool. Empty fields match everything.
type QuestionFilter struct {
	Difficulty string
	Category   string
}

// GetQuestions returns up to limit questions matching the filter, uniformly
// sampled without replacement and freshly randomized on every call. The
// answer key is stripped from the result. No matches is an empty slice, not
// an error.
func (s *QuestionService) GetQuestions(filter QuestionFilter, limit int) ([]models.QuestionView, error) {
	views := []models.QuestionView{}
	if limit <= 0 {
		return views, nil
	}

	query := s.db.Model(&models.Question{})
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if limit < len(questions) {
		questions = questions[:limit]
	}

	for i := range questions {
		views = append(views, questions[i].View())
	}
	return views, nil
}

// GetQuestionByID loads a single question including its answer key.
func (s *QuestionService) GetQuestionByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Count returns the size of the question bank.
func (s *QuestionService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Question{}).Count(&count).Error
	return count, err
}
