package models

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Summary is the result of one run through the summarization pipeline.
// A failed summarization stage still carries the transcript and title so
// the caller can render them independently.
type Summary struct {
	VideoID    string `json:"video_id"`
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary,omitempty"`
	Status     Status `json:"status"`
	Error      string `json:"error,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

func (s *Summary) IsCompleted() bool { return s.Status == StatusCompleted }
func (s *Summary) IsFailed() bool    { return s.Status == StatusFailed }

// ModelInfo describes a model installed on the Ollama server.
type ModelInfo struct {
	Name string `json:"name"`
}
