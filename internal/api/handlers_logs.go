package api

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quellskin/quell/internal/services"
)

type checkinBody struct {
	Date        string   `json:"date"`
	Timestamp   string   `json:"timestamp"`
	ItchScore   int      `json:"itch_score"`
	StressScore int      `json:"stress_score"`
	SleepHours  float64  `json:"sleep_hours"`
	Mood        string   `json:"mood"`
	Images      []string `json:"images"`
	Notes       string   `json:"notes"`
}

// CreateLog appends a daily check-in. When photos are attached and the
// vision client is available, the entry is enriched with an inflammation
// analysis; analysis failures never block the save.
func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body checkinBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	date, err := parseDayParam(body.Date)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	input := services.CheckinInput{
		Date:        date,
		ItchScore:   body.ItchScore,
		StressScore: body.StressScore,
		SleepHours:  body.SleepHours,
		Mood:        strings.TrimSpace(body.Mood),
		Images:      body.Images,
		Notes:       body.Notes,
	}
	if timestamp, err := time.Parse(time.RFC3339, body.Timestamp); err == nil {
		input.Timestamp = &timestamp
	}

	if len(body.Images) > 0 && handler.aiClients != nil && handler.aiClients.Vision != nil {
		analysis, err := handler.aiClients.Vision.AnalyzeDailyInflammation(c.Context(), body.Images)
		if err == nil {
			input.AIRednessScore = analysis.RednessScore
			input.AILocations = analysis.Locations
			input.AISymptoms = analysis.Symptoms
		} else {
			log.Printf("daily photo analysis failed: %v", err)
		}
	}

	entry, err := handler.checkinService.SaveCheckin(user.ID, input)
	if err != nil {
		if errors.Is(err, services.ErrCheckinDateRequired) {
			return jsonError(c, fiber.StatusBadRequest, "date is required")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to save check-in")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetLogs returns the user's check-ins, optionally bounded by from/to query
// parameters (YYYY-MM-DD, inclusive).
func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var from, to *time.Time
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		parsed, err := parseDayParam(raw)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		from = &parsed
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		parsed, err := parseDayParam(raw)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		to = &parsed
	}
	if from != nil && to != nil && to.Before(*from) {
		return jsonError(c, fiber.StatusBadRequest, "to must not be before from")
	}

	logs, err := handler.checkinService.FetchLogsForRange(user.ID, from, to)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}
	total, err := handler.repositories.DailyLogs.CountByUser(user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}
	return c.JSON(fiber.Map{
		"logs":  logs,
		"total": total,
	})
}

// GetTrend runs the trend analyzer over the user's full history.
func (handler *Handler) GetTrend(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	result, err := handler.checkinService.BuildTrend(user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to analyze trend")
	}
	return c.JSON(result)
}

func parseDayParam(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(raw))
}
