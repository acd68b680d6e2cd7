package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"osrstrivia/levels"
)

func beginnerQuestions(n int) []Question {
	questions := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, Question{
			ID:            uint(i + 1),
			Text:          fmt.Sprintf("question %d", i+1),
			Answers:       []string{"right", "wrong a", "wrong b", "wrong c"},
			CorrectAnswer: "right",
			Difficulty:    "Beginner",
		})
	}
	return questions
}

type failingSource struct{ err error }

func (s failingSource) Questions(context.Context, Options) ([]Question, error) {
	return nil, s.err
}

type failingScorer struct{ err error }

func (s failingScorer) Score(context.Context, Question, string) (Verdict, error) {
	return Verdict{}, s.err
}

func TestStartEmptySetStaysInSetup(t *testing.T) {
	source := NewStaticSource(nil)
	session := NewSession(Options{Count: 5}, source, LocalScorer{})

	err := session.Start(context.Background())
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if session.State() != StateSetup {
		t.Errorf("state = %v, want setup", session.State())
	}
}

func TestStartSourceErrorStaysInSetup(t *testing.T) {
	boom := errors.New("boom")
	session := NewSession(Options{Count: 5}, failingSource{err: boom}, LocalScorer{})

	if err := session.Start(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
	if session.State() != StateSetup {
		t.Errorf("state = %v, want setup", session.State())
	}
}

func TestGuestPlayThrough(t *testing.T) {
	// Five correct Beginner answers at 10 XP each should end with 50
	// session XP, which is still level 1 on the curve.
	source := NewStaticSource(beginnerQuestions(5))
	session := NewSession(Options{Count: 5, Difficulty: "Beginner"}, source, LocalScorer{})
	ctx := context.Background()

	if err := session.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if session.State() != StatePlaying {
			t.Fatalf("question %d: state = %v, want playing", i, session.State())
		}
		q, err := session.Current()
		if err != nil {
			t.Fatalf("current failed: %v", err)
		}
		if len(q.Answers) != 4 {
			t.Fatalf("question %d: got %d answers", i, len(q.Answers))
		}
		verdict, err := session.Answer(ctx, "right")
		if err != nil {
			t.Fatalf("answer failed: %v", err)
		}
		if !verdict.Correct || verdict.XPAwarded != 10 {
			t.Fatalf("question %d: verdict %+v", i, verdict)
		}
		if err := session.Continue(); err != nil {
			t.Fatalf("continue failed: %v", err)
		}
	}

	if session.State() != StateResults {
		t.Fatalf("state = %v, want results", session.State())
	}
	summary, err := session.Summary()
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Score != 5 || summary.Total != 5 {
		t.Errorf("score %d/%d, want 5/5", summary.Score, summary.Total)
	}
	if summary.XPGained != 50 {
		t.Errorf("xp gained = %d, want 50", summary.XPGained)
	}
	if summary.Authenticated {
		t.Error("guest session should not be authenticated")
	}
	if got := levels.ForXP(summary.XPGained); got != 1 {
		t.Errorf("50 XP maps to level %d, want 1", got)
	}
}

func TestIncorrectAnswerResetsStreak(t *testing.T) {
	source := NewStaticSource(beginnerQuestions(3))
	session := NewSession(Options{Count: 3}, source, LocalScorer{})
	ctx := context.Background()

	if err := session.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if _, err := session.Answer(ctx, "right"); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if session.Streak() != 1 {
		t.Fatalf("streak = %d, want 1", session.Streak())
	}
	if err := session.Continue(); err != nil {
		t.Fatalf("continue failed: %v", err)
	}

	verdict, err := session.Answer(ctx, "wrong a")
	if err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if verdict.Correct {
		t.Fatal("expected incorrect verdict")
	}
	if verdict.CorrectAnswer != "right" {
		t.Errorf("correct answer = %q, want %q", verdict.CorrectAnswer, "right")
	}
	if session.Streak() != 0 {
		t.Errorf("streak = %d, want 0", session.Streak())
	}
	if session.XPGained() != 10 {
		t.Errorf("xp gained = %d, want 10", session.XPGained())
	}
}

func TestAnswerLockedAfterSubmission(t *testing.T) {
	source := NewStaticSource(beginnerQuestions(2))
	session := NewSession(Options{Count: 2}, source, LocalScorer{})
	ctx := context.Background()

	if err := session.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := session.Answer(ctx, "right"); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	// The session is now showing feedback; a second submission must be
	// rejected until Continue.
	if _, err := session.Answer(ctx, "right"); !errors.Is(err, ErrWrongState) {
		t.Fatalf("expected ErrWrongState, got %v", err)
	}
}

func TestScorerFailureIsRecoverable(t *testing.T) {
	source := NewStaticSource(beginnerQuestions(1))
	boom := errors.New("network down")
	session := NewSession(Options{Count: 1}, source, failingScorer{err: boom})
	ctx := context.Background()

	if err := session.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := session.Answer(ctx, "right"); !errors.Is(err, boom) {
		t.Fatalf("expected scorer error, got %v", err)
	}

	// Still playing, input unlocked: the player can submit again.
	if session.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", session.State())
	}
	session.scorer = LocalScorer{}
	if _, err := session.Answer(ctx, "right"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestWrongStateCalls(t *testing.T) {
	session := NewSession(Options{Count: 1}, NewStaticSource(beginnerQuestions(1)), LocalScorer{})

	if _, err := session.Current(); !errors.Is(err, ErrWrongState) {
		t.Errorf("Current in setup: got %v", err)
	}
	if err := session.Continue(); !errors.Is(err, ErrWrongState) {
		t.Errorf("Continue in setup: got %v", err)
	}
	if _, err := session.Summary(); !errors.Is(err, ErrWrongState) {
		t.Errorf("Summary in setup: got %v", err)
	}
}

func TestResetReturnsToSetup(t *testing.T) {
	source := NewStaticSource(beginnerQuestions(1))
	session := NewSession(Options{Count: 1}, source, LocalScorer{})
	ctx := context.Background()

	if err := session.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := session.Answer(ctx, "right"); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	session.Reset()
	if session.State() != StateSetup {
		t.Errorf("state = %v, want setup", session.State())
	}
	if session.Score() != 0 || session.XPGained() != 0 {
		t.Errorf("counters not reset: score=%d xp=%d", session.Score(), session.XPGained())
	}
	// A fresh start must work after reset.
	if err := session.Start(ctx); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
}

func TestAnswerShuffleIsUniformAndComplete(t *testing.T) {
	source := NewStaticSource(beginnerQuestions(1))
	session := NewSession(Options{Count: 1}, source, LocalScorer{})
	if err := session.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	want := map[string]bool{"right": true, "wrong a": true, "wrong b": true, "wrong c": true}
	seen := make(map[string]int)
	const draws = 5000
	for i := 0; i < draws; i++ {
		q, err := session.Current()
		if err != nil {
			t.Fatalf("current failed: %v", err)
		}
		if len(q.Answers) != 4 {
			t.Fatalf("got %d answers", len(q.Answers))
		}
		for _, a := range q.Answers {
			if !want[a] {
				t.Fatalf("unexpected answer %q", a)
			}
		}
		seen[strings.Join(q.Answers, "|")]++
	}

	// All 4! orderings should appear over a large sample, and none should
	// dominate far beyond its fair share.
	if len(seen) != 24 {
		t.Fatalf("saw %d orderings, want 24", len(seen))
	}
	fair := draws / 24
	for perm, count := range seen {
		if count < fair/3 || count > fair*3 {
			t.Errorf("ordering %q count %d is far from fair share %d", perm, count, fair)
		}
	}
}
