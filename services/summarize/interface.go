package summarize

import (
	"context"

	"yt-brief/models"
	"yt-brief/ollama"
	"yt-brief/youtube"
)

type Service interface {
	// Summarize runs the full pipeline for one request: parse the URL,
	// resolve the title and fetch the transcript, build the prompt and
	// ask the model for a summary.
	Summarize(ctx context.Context, req models.SummarizeRequest) (*models.Summary, error)

	// Models lists the models installed on the Ollama server.
	Models(ctx context.Context) ([]models.ModelInfo, error)
}

// TranscriptFetcher retrieves caption fragments for a video ID.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) ([]youtube.Fragment, error)
}

// TitleResolver looks up a video title, falling back to the ID.
type TitleResolver interface {
	Resolve(ctx context.Context, videoID string) (string, bool)
}

// ChatClient is the model-serving endpoint.
type ChatClient interface {
	List(ctx context.Context) ([]models.ModelInfo, error)
	Chat(ctx context.Context, model string, messages []ollama.Message) (string, error)
}
