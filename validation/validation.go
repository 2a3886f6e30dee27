package validation

import (
	"net/url"
	"strings"

	"yt-brief/errors"
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateURL performs URL validation. Scheme-less inputs are left for
// the video ID parser to judge; absolute URLs must be HTTP(S) YouTube.
func (v *Validator) ValidateURL(urlStr string) error {
	const op = "Validator.ValidateURL"

	if strings.TrimSpace(urlStr) == "" {
		return errors.InvalidInput(op, nil, "URL is required")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.InvalidInput(op, err, "Invalid URL format")
	}

	if parsedURL.Scheme == "" {
		return nil
	}

	// Protocol validation
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidInput(op, nil, "URL must use HTTP or HTTPS")
	}

	// Domain validation
	if !isYouTubeDomain(parsedURL.Hostname()) {
		return errors.InvalidInput(op, nil, "Only YouTube URLs are supported")
	}

	return nil
}

func isYouTubeDomain(hostname string) bool {
	hostname = strings.ToLower(hostname)
	switch hostname {
	case "youtube.com", "www.youtube.com", "m.youtube.com", "youtu.be", "www.youtu.be":
		return true
	}
	return strings.HasSuffix(hostname, ".youtube.com")
}
