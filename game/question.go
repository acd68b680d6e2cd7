// Package game implements the client-side play loop: question acquisition
// with a local fallback, a session state machine, and pluggable answer
// scoring for guest versus signed-in play. Rendering is left to the caller;
// the session only exposes state.
package game

// Question is the client-side question shape. CorrectAnswer is populated
// only for locally bundled questions; the server never includes it in
// question payloads.
type Question struct {
	ID            uint     `json:"id"`
	Text          string   `json:"text"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
	XPReward      int      `json:"xpReward"`
	Explanation   string   `json:"explanation,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
}

// Options configures one play-through.
type Options struct {
	Difficulty string
	Category   string
	Count      int
}
