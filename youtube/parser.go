package youtube

import (
	"strings"

	"yt-brief/errors"
)

// ExtractVideoID pulls the video identifier out of a YouTube URL.
// Handles short links (youtu.be/<id>) and watch URLs (v=<id>). An empty
// input returns an empty ID without error, meaning "no input". The
// extracted token is taken as-is, with no length or charset checks.
func ExtractVideoID(url string) (string, error) {
	const op = "youtube.ExtractVideoID"

	if url == "" {
		return "", nil
	}

	if idx := strings.Index(url, "youtu.be/"); idx >= 0 {
		id := url[idx+len("youtu.be/"):]
		if q := strings.Index(id, "?"); q >= 0 {
			id = id[:q]
		}
		return id, nil
	}

	if idx := strings.Index(url, "v="); idx >= 0 {
		id := url[idx+len("v="):]
		if amp := strings.Index(id, "&"); amp >= 0 {
			id = id[:amp]
		}
		return id, nil
	}

	return "", errors.InvalidInput(op, nil, "Invalid YouTube URL format")
}
