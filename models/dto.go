package models

// SummarizeRequest is the incoming request for a summary run.
type SummarizeRequest struct {
	URL    string `json:"url"`
	Model  string `json:"model"`
	Tone   Tone   `json:"tone"`
	Prompt string `json:"prompt,omitempty"`
}

// SummaryResponse is the API response for a summary run.
type SummaryResponse struct {
	VideoID    string `json:"video_id"`
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary,omitempty"`
	Status     Status `json:"status"`
	Error      string `json:"error,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

// NewSummaryResponse creates a response from a summary model
func NewSummaryResponse(s *Summary) *SummaryResponse {
	return &SummaryResponse{
		VideoID:    s.VideoID,
		Title:      s.Title,
		Transcript: s.Transcript,
		Summary:    s.Summary,
		Status:     s.Status,
		Error:      s.Error,
		Warning:    s.Warning,
	}
}

// ToneOption is one entry of the tone selector exposed to the UI.
type ToneOption struct {
	Value Tone   `json:"value"`
	Label string `json:"label"`
}

// ToneOptions lists the selectable tones in display order.
func ToneOptions() []ToneOption {
	tones := Tones()
	options := make([]ToneOption, 0, len(tones))
	for _, t := range tones {
		options = append(options, ToneOption{Value: t, Label: t.Label()})
	}
	return options
}
