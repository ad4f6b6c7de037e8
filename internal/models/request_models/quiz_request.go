package request_models

// QuizSubmission carries the raw quiz answers, keyed by question id. Choice
// and select answers arrive as the selected option string, scale answers as a
// number, so values stay untyped until the profiler resolves the question.
type QuizSubmission struct {
	SessionID string         `json:"session_id,omitempty"`
	Answers   map[string]any `json:"answers"`
}
