package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"yt-brief/config"
	"yt-brief/errors"
	"yt-brief/models"
	"yt-brief/services/summarize"
)

type Handler struct {
	service summarize.Service
	cfg     *config.Config
	logger  *logrus.Logger
}

func NewHandler(service summarize.Service, cfg *config.Config) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  logrus.StandardLogger(),
	}
}

// HealthCheck handles GET /health
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Settings handles GET /api/settings. It gives the UI its defaults:
// the sample URL and the tone selector entries.
func (h *Handler) Settings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"default_url": h.cfg.DefaultVideoURL,
		"tones":       models.ToneOptions(),
	})
}

// Models handles GET /api/models. A listing failure is a blocking
// error: the UI cannot proceed without a selectable model.
func (h *Handler) Models(c *fiber.Ctx) error {
	list, err := h.service.Models(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Model listing failed")
		return err
	}
	return c.JSON(fiber.Map{"models": list})
}

// DefaultPrompt handles GET /api/prompt?tone=... It backs the prompt
// editor's reset-to-default action.
func (h *Handler) DefaultPrompt(c *fiber.Ctx) error {
	const op = "Handler.DefaultPrompt"

	tone := models.Tone(c.Query("tone", string(models.ToneProfessional)))
	if !tone.Valid() {
		return errors.InvalidInput(op, nil, "Unknown tone")
	}

	return c.JSON(fiber.Map{
		"tone":   tone,
		"prompt": summarize.DefaultPrompt(tone),
	})
}

// Summarize handles POST /api/summarize
func (h *Handler) Summarize(c *fiber.Ctx) error {
	const op = "Handler.Summarize"
	logger := h.logger.WithField("request_id", c.Get("X-Request-ID"))

	var req models.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "Invalid request body")
	}

	logger.WithFields(logrus.Fields{
		"url":   req.URL,
		"model": req.Model,
		"tone":  req.Tone,
	}).Info("Received summarize request")

	summary, err := h.service.Summarize(c.Context(), req)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"video_id": summary.VideoID,
		"status":   summary.Status,
	}).Info("Summarize request finished")

	return c.JSON(models.NewSummaryResponse(summary))
}
