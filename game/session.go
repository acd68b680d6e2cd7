package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"osrstrivia/levels"
)

// State is the phase of a play-through.
type State int

const (
	StateSetup State = iota
	StatePlaying
	StateFeedback
	StateResults
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePlaying:
		return "playing"
	case StateFeedback:
		return "feedback"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

var (
	// ErrWrongState is returned when an action is illegal in the current state.
	ErrWrongState = errors.New("action not allowed in current game state")
	// ErrInputLocked is returned when an answer is submitted while one is
	// already being evaluated or shown.
	ErrInputLocked = errors.New("answer input is locked")
)

// Session is the explicit context object for one play-through. It replaces
// the browser client's shared mutable game state: every transition goes
// through a method, and the UI layer only reads.
//
// A session is owned by a single goroutine (one browser tab, one player);
// it is not safe for concurrent use.
type Session struct {
	opts   Options
	source Source
	scorer Scorer
	rng    *rand.Rand

	state     State
	questions []Question
	current   int
	score     int
	streak    int
	xpGained  int
	startTime time.Time
	locked    bool

	authenticated bool
	userLevel     int
	userXP        int
}

func NewSession(opts Options, source Source, scorer Scorer) *Session {
	if opts.Count <= 0 {
		opts.Count = 10
	}
	return &Session{
		opts:   opts,
		source: source,
		scorer: scorer,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		state:  StateSetup,
	}
}

func (s *Session) State() State { return s.state }

// Score, Streak and XPGained report progress through the current
// play-through.
func (s *Session) Score() int    { return s.score }
func (s *Session) Streak() int   { return s.streak }
func (s *Session) XPGained() int { return s.xpGained }

// Start acquires the question set and enters play. On any failure the
// session stays in Setup so the caller can re-enable its controls and let
// the player retry.
func (s *Session) Start(ctx context.Context) error {
	if s.state != StateSetup {
		return ErrWrongState
	}

	questions, err := s.source.Questions(ctx, s.opts)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	// Snapshot: the session owns its copy independent of the source.
	s.questions = make([]Question, len(questions))
	copy(s.questions, questions)

	s.current = 0
	s.score = 0
	s.streak = 0
	s.xpGained = 0
	s.startTime = time.Now()
	s.locked = false
	s.state = StatePlaying
	return nil
}

// Current returns the question being played with its candidate answers
// freshly shuffled. Shuffling repeats on every call so the ordering is never
// memoized between renders.
func (s *Session) Current() (Question, error) {
	if s.state != StatePlaying && s.state != StateFeedback {
		return Question{}, ErrWrongState
	}
	q := s.questions[s.current]
	q.Answers = s.shuffled(q.Answers)
	return q, nil
}

// Progress reports the 1-based question number and the total count.
func (s *Session) Progress() (int, int) {
	return s.current + 1, len(s.questions)
}

// Answer submits a choice for the current question. Input locks for the
// remainder of the question once a choice lands; a scorer failure unlocks
// and leaves the session in Playing so the player can retry.
func (s *Session) Answer(ctx context.Context, choice string) (Verdict, error) {
	if s.state != StatePlaying {
		return Verdict{}, ErrWrongState
	}
	if s.locked {
		return Verdict{}, ErrInputLocked
	}
	s.locked = true

	verdict, err := s.scorer.Score(ctx, s.questions[s.current], choice)
	if err != nil {
		s.locked = false
		return Verdict{}, err
	}

	if verdict.Correct {
		s.score++
		s.streak++
		s.xpGained += verdict.XPAwarded
	} else {
		s.streak = 0
	}
	if verdict.Authenticated {
		s.authenticated = true
		s.userLevel = verdict.UserLevel
		s.userXP = verdict.UserXP
	}

	s.state = StateFeedback
	return verdict, nil
}

// Continue advances past the feedback screen, either to the next question
// or to the results once the set is exhausted.
func (s *Session) Continue() error {
	if s.state != StateFeedback {
		return ErrWrongState
	}
	s.locked = false
	s.current++
	if s.current >= len(s.questions) {
		s.state = StateResults
	} else {
		s.state = StatePlaying
	}
	return nil
}

// Summary describes a finished play-through.
type Summary struct {
	Score         int
	Total         int
	XPGained      int
	Duration      time.Duration
	Authenticated bool
	// Level progress toward the next level, valid only when Authenticated.
	Progress levels.Progress
}

// Summary is only meaningful in Results. For guest sessions Authenticated
// is false and the caller should render a sign-in call-to-action instead of
// a progress bar.
func (s *Session) Summary() (Summary, error) {
	if s.state != StateResults {
		return Summary{}, ErrWrongState
	}
	summary := Summary{
		Score:         s.score,
		Total:         len(s.questions),
		XPGained:      s.xpGained,
		Duration:      time.Since(s.startTime),
		Authenticated: s.authenticated,
	}
	if s.authenticated {
		summary.Progress = levels.ProgressForXP(s.userXP)
	}
	return summary, nil
}

// Reset returns the session to Setup with default control state.
func (s *Session) Reset() {
	s.state = StateSetup
	s.questions = nil
	s.current = 0
	s.score = 0
	s.streak = 0
	s.xpGained = 0
	s.locked = false
}

// shuffled returns a uniformly permuted copy (Fisher-Yates).
func (s *Session) shuffled(answers []string) []string {
	out := make([]string, len(answers))
	copy(out, answers)
	for i := len(out) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
