package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"yt-brief/errors"
)

const defaultWatchBase = "https://www.youtube.com"

// Fragment is a single caption entry from a timedtext track.
type Fragment struct {
	Text  string  `xml:",chardata"`
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
}

type timedText struct {
	Fragments []Fragment `xml:"text"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type captionList struct {
	PlayerCaptionsTracklistRenderer struct {
		CaptionTracks []captionTrack `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

type TranscriptConfig struct {
	// BaseURL overrides the YouTube origin, used by tests.
	BaseURL    string
	HTTPClient *http.Client
}

// TranscriptClient fetches caption text for a video by scraping the
// watch page's caption track list and downloading the timedtext XML.
type TranscriptClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewTranscriptClient(cfg TranscriptConfig) *TranscriptClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultWatchBase
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &TranscriptClient{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		logger:     logrus.StandardLogger(),
	}
}

// Fetch retrieves the caption fragments for a video in provider order.
// Any failure, including a video without captions or an empty track, is
// reported as an upstream "transcript unavailable" error carrying the
// cause.
func (c *TranscriptClient) Fetch(ctx context.Context, videoID string) ([]Fragment, error) {
	const op = "TranscriptClient.Fetch"

	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return nil, errors.Upstream(op, err, "Transcript unavailable")
	}

	track, ok := bestTrack(tracks)
	if !ok {
		return nil, errors.Upstream(op, fmt.Errorf("no caption tracks for video %q", videoID), "Transcript unavailable")
	}

	fragments, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, errors.Upstream(op, err, "Transcript unavailable")
	}

	if len(fragments) == 0 {
		return nil, errors.Upstream(op, fmt.Errorf("empty transcript for video %q", videoID), "Transcript unavailable")
	}

	c.logger.WithFields(logrus.Fields{
		"video_id":  videoID,
		"language":  track.LanguageCode,
		"fragments": len(fragments),
	}).Info("Fetched transcript")

	return fragments, nil
}

// captionTracks scrapes the watch page for the caption track list JSON.
func (c *TranscriptClient) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	watchURL := fmt.Sprintf("%s/watch?v=%s", c.baseURL, videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting watch page: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 6*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("reading watch page: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page status code %d", res.StatusCode)
	}

	content := string(body)
	split := strings.Split(content, `"captions":`)
	if len(split) <= 1 {
		return nil, fmt.Errorf("no captions for video %q, they may be disabled", videoID)
	}

	rawCaptions := strings.ReplaceAll(strings.Split(split[1], `,"videoDetails`)[0], "\n", "")
	var list captionList
	if err := json.Unmarshal([]byte(rawCaptions), &list); err != nil {
		return nil, fmt.Errorf("unmarshalling caption track list: %w", err)
	}

	return list.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// fetchTimedText downloads and decodes a timedtext XML caption track.
func (c *TranscriptClient) fetchTimedText(ctx context.Context, trackURL string) ([]Fragment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting caption track: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 2*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("reading caption track: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption track status code %d", res.StatusCode)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parsing timedtext XML: %w", err)
	}

	for i := range tt.Fragments {
		tt.Fragments[i].Text = html.UnescapeString(tt.Fragments[i].Text)
	}

	return tt.Fragments, nil
}

// Flatten concatenates fragment texts with a trailing newline each,
// preserving provider order. Timing metadata is discarded.
func Flatten(fragments []Fragment) string {
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(f.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// bestTrack prefers a manual english track, then auto-generated
// english, then any manual track, then whatever is first.
func bestTrack(tracks []captionTrack) (captionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == "en" && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == "en" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.Kind != "asr" {
			return t, true
		}
	}
	if len(tracks) > 0 {
		return tracks[0], true
	}
	return captionTrack{}, false
}
