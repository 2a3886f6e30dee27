package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultOEmbedBase = "https://www.youtube.com"

type TitleConfig struct {
	// BaseURL overrides the oEmbed origin, used by tests.
	BaseURL    string
	HTTPClient *http.Client
}

// TitleResolver looks up a video's title via the public oEmbed endpoint.
// It never fails outward: any error degrades to the video ID.
type TitleResolver struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewTitleResolver(cfg TitleConfig) *TitleResolver {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOEmbedBase
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &TitleResolver{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		logger:     logrus.StandardLogger(),
	}
}

// Resolve returns the video title, falling back to the video ID on any
// failure. The second return reports whether the lookup succeeded.
func (r *TitleResolver) Resolve(ctx context.Context, videoID string) (string, bool) {
	title, err := r.lookup(ctx, videoID)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"video_id": videoID,
		}).WithError(err).Warn("Could not get video title, falling back to ID")
		return videoID, false
	}
	return title, true
}

func (r *TitleResolver) lookup(ctx context.Context, videoID string) (string, error) {
	watchURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
	oembedURL := fmt.Sprintf("%s/oembed?url=%s&format=json", r.baseURL, url.QueryEscape(watchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedURL, nil)
	if err != nil {
		return "", err
	}

	res, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting oembed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed status code %d", res.StatusCode)
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding oembed response: %w", err)
	}
	if payload.Title == "" {
		return "", fmt.Errorf("oembed response missing title")
	}

	return payload.Title, nil
}
