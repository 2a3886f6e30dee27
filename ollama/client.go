package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"yt-brief/errors"
	"yt-brief/models"
)

// Message is a single entry of a chat exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Message *Message `json:"message"`
}

type tagsResponse struct {
	Models []models.ModelInfo `json:"models"`
}

type Config struct {
	// Host is the base URL of the Ollama server, e.g. http://localhost:11434
	Host       string
	HTTPClient *http.Client
}

// Client talks to an Ollama server's chat-completion API. It is
// explicitly constructed with its host so tests can point it at a fake
// endpoint.
type Client struct {
	host       string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 5 * time.Minute}
	}
	return &Client{
		host:       strings.TrimRight(cfg.Host, "/"),
		httpClient: cfg.HTTPClient,
		logger:     logrus.StandardLogger(),
	}
}

// List returns the models installed on the server. A failure here
// blocks the caller's render cycle, so it is reported as unavailable.
func (c *Client) List(ctx context.Context) ([]models.ModelInfo, error) {
	const op = "ollama.Client.List"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", nil)
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to build model listing request")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Unavailable(op, err, "Could not reach the Ollama server")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Unavailable(op, fmt.Errorf("status code %d", res.StatusCode), "Could not list Ollama models")
	}

	var tags tagsResponse
	if err := json.NewDecoder(res.Body).Decode(&tags); err != nil {
		return nil, errors.Unavailable(op, err, "Could not parse the Ollama model list")
	}

	return tags.Models, nil
}

// Chat sends an ordered message list and returns the reply content. An
// empty or malformed reply is an upstream failure, not a crash.
func (c *Client) Chat(ctx context.Context, model string, messages []Message) (string, error) {
	const op = "ollama.Client.Chat"

	payload, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", errors.Internal(op, err, "Failed to encode chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Internal(op, err, "Failed to build chat request")
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.WithFields(logrus.Fields{
		"model":    model,
		"messages": len(messages),
	}).Info("Sending chat request")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Upstream(op, err, "Could not reach the Ollama server")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errors.Upstream(op, fmt.Errorf("status code %d", res.StatusCode), "Chat request failed")
	}

	var reply chatResponse
	if err := json.NewDecoder(res.Body).Decode(&reply); err != nil {
		return "", errors.Upstream(op, err, "Could not parse the model response")
	}

	if reply.Message == nil || reply.Message.Content == "" {
		return "", errors.Upstream(op, nil, "Empty response from AI model")
	}

	return reply.Message.Content, nil
}
