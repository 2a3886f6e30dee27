package summarize

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"yt-brief/errors"
	"yt-brief/models"
	"yt-brief/ollama"
	"yt-brief/validation"
	"yt-brief/youtube"
)

type service struct {
	transcripts TranscriptFetcher
	titles      TitleResolver
	chat        ChatClient
	validator   *validation.Validator
	logger      *logrus.Logger
}

// NewService creates a new summarize service
func NewService(
	transcripts TranscriptFetcher,
	titles TitleResolver,
	chat ChatClient,
	validator *validation.Validator,
) Service {
	return &service{
		transcripts: transcripts,
		titles:      titles,
		chat:        chat,
		validator:   validator,
		logger:      logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, req models.SummarizeRequest) (*models.Summary, error) {
	const op = "SummarizeService.Summarize"
	logger := s.logger.WithField("url", req.URL)

	// Stage 1: parse. Failures here halt before any network call.
	if err := s.validator.ValidateURL(req.URL); err != nil {
		logger.WithError(err).Warn("URL validation failed")
		return nil, err
	}

	videoID, err := youtube.ExtractVideoID(req.URL)
	if err != nil {
		logger.WithError(err).Warn("Could not extract video ID")
		return nil, err
	}
	if videoID == "" {
		return nil, errors.InvalidInput(op, nil, "URL is required")
	}

	if req.Model == "" {
		return nil, errors.InvalidInput(op, nil, "Model is required")
	}
	if req.Tone != "" && !req.Tone.Valid() {
		return nil, errors.InvalidInput(op, nil, "Unknown tone")
	}

	logger = logger.WithField("video_id", videoID)

	// Stage 2: title and transcript are independent, fetch them in
	// parallel. Title resolution never fails the group; a transcript
	// failure aborts the run since every later stage depends on it.
	var (
		title     string
		titleOK   bool
		fragments []youtube.Fragment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		title, titleOK = s.titles.Resolve(gctx, videoID)
		return nil
	})
	g.Go(func() error {
		var err error
		fragments, err = s.transcripts.Fetch(gctx, videoID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Transcript fetch failed")
		return nil, err
	}

	summary := &models.Summary{
		VideoID:    videoID,
		Title:      title,
		Transcript: youtube.Flatten(fragments),
	}
	if !titleOK {
		summary.Warning = "Could not resolve the video title, using the video ID instead"
	}

	logger.WithFields(logrus.Fields{
		"title":     title,
		"fragments": len(fragments),
	}).Info("Transcript ready, generating summary")

	// Stage 3: build the prompt and ask the model. A failure here is
	// recorded on the result so the transcript stays usable.
	prompt := BuildPrompt(req.Tone, req.Prompt)

	content, err := s.chat.Chat(ctx, req.Model, []ollama.Message{
		{Role: "system", Content: prompt},
		{Role: "user", Content: "Transcript: " + summary.Transcript},
	})
	if err != nil {
		logger.WithError(err).Error("Summary generation failed")
		summary.Status = models.StatusFailed
		summary.Error = err.Error()
		return summary, nil
	}

	summary.Summary = content
	summary.Status = models.StatusCompleted

	logger.Info("Summary generated")
	return summary, nil
}

func (s *service) Models(ctx context.Context) ([]models.ModelInfo, error) {
	return s.chat.List(ctx)
}
