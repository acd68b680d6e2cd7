package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Verdict is the outcome of scoring one submission.
type Verdict struct {
	Correct       bool
	CorrectAnswer string // empty when the answer was correct
	Explanation   string
	XPAwarded     int
	// Populated only by the authenticated scorer.
	Authenticated bool
	UserLevel     int
	UserXP        int
}

// Scorer evaluates a submitted answer. The two implementations are the
// guest/offline path and the server-authoritative path; a session picks one
// at construction and never re-checks.
type Scorer interface {
	Score(ctx context.Context, question Question, answer string) (Verdict, error)
}

// localXPTable maps difficulty tiers to the fixed guest-mode reward.
var localXPTable = map[string]int{
	"Beginner": 10,
	"Easy":     25,
	"Medium":   50,
	"Hard":     100,
	"Elite":    200,
	"Master":   500,
}

const defaultLocalXP = 50

// LocalScorer evaluates against the bundled answer key and awards XP from
// the difficulty table. Used for guest play, where nothing is persisted
// server-side.
type LocalScorer struct{}

func (LocalScorer) Score(_ context.Context, question Question, answer string) (Verdict, error) {
	correct := strings.EqualFold(answer, question.CorrectAnswer)
	v := Verdict{
		Correct:     correct,
		Explanation: question.Explanation,
	}
	if correct {
		reward, ok := localXPTable[question.Difficulty]
		if !ok {
			reward = defaultLocalXP
		}
		v.XPAwarded = reward
	} else {
		v.CorrectAnswer = question.CorrectAnswer
	}
	return v, nil
}

// ServerScorer submits answers to /api/check-answer with a bearer token and
// trusts the server-computed reward and level.
type ServerScorer struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewServerScorer(baseURL, token string) *ServerScorer {
	return &ServerScorer{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *ServerScorer) Score(ctx context.Context, question Question, answer string) (Verdict, error) {
	body, err := json.Marshal(map[string]interface{}{
		"questionId": question.ID,
		"answer":     answer,
	})
	if err != nil {
		return Verdict{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/check-answer", bytes.NewReader(body))
	if err != nil {
		return Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)

	resp, err := s.Client.Do(req)
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to check answer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Verdict{}, fmt.Errorf("answer check returned status %d", resp.StatusCode)
	}

	var result struct {
		IsCorrect     bool    `json:"isCorrect"`
		CorrectAnswer *string `json:"correctAnswer"`
		Explanation   string  `json:"explanation"`
		XPGained      int     `json:"xpGained"`
		UserLevel     int     `json:"userLevel"`
		UserXP        int     `json:"userXp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Verdict{}, fmt.Errorf("failed to decode answer response: %w", err)
	}

	v := Verdict{
		Correct:       result.IsCorrect,
		Explanation:   result.Explanation,
		XPAwarded:     result.XPGained,
		Authenticated: true,
		UserLevel:     result.UserLevel,
		UserXP:        result.UserXP,
	}
	if result.CorrectAnswer != nil {
		v.CorrectAnswer = *result.CorrectAnswer
	}
	return v, nil
}
