package handlers

import (
	"errors"
	"net/http"

	"osrstrivia/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// CheckAnswer handles POST /api/check-answer (authenticated).
func (h *AnswerHandler) CheckAnswer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.CheckAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "QuestionId and answer are required"})
		return
	}

	resp, err := h.answerService.CheckAnswer(userID.(uint), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuestionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.WithError(err).Error("failed to check answer")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check answer"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
