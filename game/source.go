package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNoQuestions signals that no question matched the requested filter.
// Sessions treat it as a visible non-fatal condition, not a crash.
var ErrNoQuestions = errors.New("no questions available for the selected criteria")

// Source supplies a question set for a session.
type Source interface {
	Questions(ctx context.Context, opts Options) ([]Question, error)
}

// APISource fetches questions from the trivia API.
type APISource struct {
	BaseURL string
	Client  *http.Client
}

func NewAPISource(baseURL string) *APISource {
	return &APISource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *APISource) Questions(ctx context.Context, opts Options) ([]Question, error) {
	params := url.Values{}
	if opts.Difficulty != "" {
		params.Set("difficulty", opts.Difficulty)
	}
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}
	params.Set("limit", strconv.Itoa(opts.Count))

	endpoint := s.BaseURL + "/api/questions?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("question fetch returned status %d", resp.StatusCode)
	}

	var questions []Question
	if err := json.NewDecoder(resp.Body).Decode(&questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return questions, nil
}

// StaticSource serves bundled questions when the API is unreachable. It
// filters then samples uniformly without replacement, matching the server's
// behavior.
type StaticSource struct {
	Pool []Question
	rng  *rand.Rand
}

func NewStaticSource(pool []Question) *StaticSource {
	return &StaticSource{
		Pool: pool,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *StaticSource) Questions(_ context.Context, opts Options) ([]Question, error) {
	if opts.Count <= 0 {
		return nil, nil
	}

	var filtered []Question
	for _, q := range s.Pool {
		if opts.Difficulty != "" && q.Difficulty != opts.Difficulty {
			continue
		}
		if opts.Category != "" && q.Category != opts.Category {
			continue
		}
		filtered = append(filtered, q)
	}

	s.rng.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	if opts.Count < len(filtered) {
		filtered = filtered[:opts.Count]
	}
	return filtered, nil
}

// FallbackSource tries a primary source and degrades to a fallback when the
// primary errors. It returns ErrNoQuestions only when both come up empty.
type FallbackSource struct {
	Primary  Source
	Fallback Source
}

func NewFallbackSource(primary, fallback Source) *FallbackSource {
	return &FallbackSource{Primary: primary, Fallback: fallback}
}

func (s *FallbackSource) Questions(ctx context.Context, opts Options) ([]Question, error) {
	questions, err := s.Primary.Questions(ctx, opts)
	if err == nil && len(questions) > 0 {
		return questions, nil
	}
	if s.Fallback == nil {
		if err != nil {
			return nil, err
		}
		return nil, ErrNoQuestions
	}

	questions, ferr := s.Fallback.Questions(ctx, opts)
	if ferr != nil {
		return nil, ferr
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}
