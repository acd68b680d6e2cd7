package handlers

import (
	"net/http"
	"strconv"

	"osrstrivia/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetQuestions handles GET /api/questions?difficulty=&category=&limit=.
// An empty match is a 200 with an empty array, never an error.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	filter := services.QuestionFilter{
		Difficulty: c.Query("difficulty"),
		Category:   c.Query("category"),
	}

	questions, err := h.questionService.GetQuestions(filter, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load questions"})
		return
	}

	c.JSON(http.StatusOK, questions)
}
