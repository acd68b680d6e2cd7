package game

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocalScorerCaseInsensitive(t *testing.T) {
	question := Question{CorrectAnswer: "blue", Difficulty: "Beginner"}

	verdict, err := LocalScorer{}.Score(context.Background(), question, "BLUE")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if !verdict.Correct {
		t.Fatal("expected case-insensitive match to be correct")
	}
	if verdict.XPAwarded != 10 {
		t.Errorf("xp = %d, want 10 for Beginner", verdict.XPAwarded)
	}
	if verdict.Authenticated {
		t.Error("local scorer must not report authenticated state")
	}
}

func TestLocalScorerDifficultyTable(t *testing.T) {
	cases := map[string]int{
		"Beginner": 10,
		"Easy":     25,
		"Medium":   50,
		"Hard":     100,
		"Elite":    200,
		"Master":   500,
		"Bizarre":  50, // unknown tiers fall back to the default
	}
	for tier, want := range cases {
		verdict, err := LocalScorer{}.Score(context.Background(), Question{CorrectAnswer: "x", Difficulty: tier}, "x")
		if err != nil {
			t.Fatalf("%s: score failed: %v", tier, err)
		}
		if verdict.XPAwarded != want {
			t.Errorf("%s: xp = %d, want %d", tier, verdict.XPAwarded, want)
		}
	}
}

func TestLocalScorerIncorrect(t *testing.T) {
	question := Question{CorrectAnswer: "blue", Difficulty: "Hard", Explanation: "the sky"}

	verdict, err := LocalScorer{}.Score(context.Background(), question, "red")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if verdict.Correct {
		t.Fatal("expected incorrect verdict")
	}
	if verdict.XPAwarded != 0 {
		t.Errorf("xp = %d, want 0", verdict.XPAwarded)
	}
	if verdict.CorrectAnswer != "blue" {
		t.Errorf("correct answer = %q, want blue", verdict.CorrectAnswer)
	}
	if verdict.Explanation != "the sky" {
		t.Errorf("explanation = %q", verdict.Explanation)
	}
}

func TestServerScorer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/check-answer" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("authorization = %q", got)
		}
		var body struct {
			QuestionID uint   `json:"questionId"`
			Answer     string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.QuestionID != 7 || body.Answer != "Varrock" {
			t.Errorf("body = %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isCorrect":     true,
			"correctAnswer": nil,
			"explanation":   "home of the Grand Exchange",
			"xpGained":      200,
			"userLevel":     3,
			"userXp":        400,
		})
	}))
	defer server.Close()

	scorer := NewServerScorer(server.URL, "token-123")
	verdict, err := scorer.Score(context.Background(), Question{ID: 7}, "Varrock")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if !verdict.Correct || verdict.XPAwarded != 200 {
		t.Fatalf("verdict = %+v", verdict)
	}
	if !verdict.Authenticated || verdict.UserLevel != 3 || verdict.UserXP != 400 {
		t.Errorf("server state not carried: %+v", verdict)
	}
}

func TestServerScorerErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Question not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	scorer := NewServerScorer(server.URL, "token-123")
	if _, err := scorer.Score(context.Background(), Question{ID: 999}, "x"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
