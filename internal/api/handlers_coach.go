package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quellskin/quell/internal/ai"
	"github.com/quellskin/quell/internal/models"
	"github.com/quellskin/quell/internal/services"
)

const (
	coachHistoryLimit = 20
	// coachLogWindow bounds how much check-in history the coach prompt sees.
	coachLogWindow = 14
)

type coachMessageInput struct {
	Message string            `json:"message"`
	History []ai.CoachMessage `json:"history"`
}

// CoachMessage generates a chat reply grounded in the user's computed
// profile and recent check-ins. The client keeps the conversation history.
func (handler *Handler) CoachMessage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.aiClients == nil || handler.aiClients.Coach == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "coach is not configured")
	}

	var input coachMessageInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	input.Message = strings.TrimSpace(input.Message)
	if input.Message == "" {
		return jsonError(c, fiber.StatusBadRequest, "message is required")
	}
	if len(input.History) > coachHistoryLimit {
		input.History = input.History[len(input.History)-coachHistoryLimit:]
	}

	var computed *models.ComputedProfile
	record, err := handler.profileService.GetProfile(user.ID)
	if err == nil {
		computed = record.Computed
	} else if !errors.Is(err, services.ErrProfileNotFound) {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	logs, err := handler.checkinService.FetchAllLogsForUser(user.ID)
	if err != nil {
		log.Printf("coach: failed to load logs for user %d: %v", user.ID, err)
		logs = nil
	}
	if len(logs) > coachLogWindow {
		logs = logs[len(logs)-coachLogWindow:]
	}

	reply, err := handler.aiClients.Coach.GenerateCoachResponse(c.Context(), input.History, input.Message, computed, logs)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			return jsonError(c, fiber.StatusServiceUnavailable, "coach is not configured")
		}
		return jsonError(c, fiber.StatusBadGateway, "coach request failed")
	}
	return c.JSON(fiber.Map{"reply": reply})
}

type coachSpeechInput struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// CoachSpeech renders coach text as spoken audio.
func (handler *Handler) CoachSpeech(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.aiClients == nil || handler.aiClients.Speech == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "speech is not configured")
	}

	var input coachSpeechInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	input.Text = strings.TrimSpace(input.Text)
	if input.Text == "" {
		return jsonError(c, fiber.StatusBadRequest, "text is required")
	}

	audio, err := handler.aiClients.Speech.GenerateSpeech(c.Context(), input.Text, input.Voice)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			return jsonError(c, fiber.StatusServiceUnavailable, "speech is not configured")
		}
		return jsonError(c, fiber.StatusBadGateway, "speech request failed")
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Send(audio)
}
