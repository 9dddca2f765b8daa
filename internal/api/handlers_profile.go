package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quellskin/quell/internal/ai"
	"github.com/quellskin/quell/internal/models"
	"github.com/quellskin/quell/internal/services"
)

// GetProfile returns the stored profile record: questionnaire snapshot,
// computed profile, mindset state, and blend.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	record, err := handler.profileService.GetProfile(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return jsonError(c, fiber.StatusNotFound, "profile not created yet")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(presentProfile(record))
}

// SubmitQuestionnaire stores the questionnaire and rebuilds every derived
// document. Submitting again re-runs the engine over the new answers.
func (handler *Handler) SubmitQuestionnaire(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var data models.QuestionnaireData
	if err := c.BodyParser(&data); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	record, err := handler.profileService.SubmitQuestionnaire(user.ID, data)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return c.JSON(presentProfile(record))
}

type scanInput struct {
	Images []string `json:"images"`
}

// AnalyzeScan runs the vision model over onboarding photos and returns the
// structured analysis for prefilling the questionnaire.
func (handler *Handler) AnalyzeScan(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.aiClients == nil || handler.aiClients.Vision == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "photo analysis unavailable")
	}

	var input scanInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.Images) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "at least one image is required")
	}

	analysis, err := handler.aiClients.Vision.AnalyzeSkinCondition(c.Context(), input.Images)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			return jsonError(c, fiber.StatusServiceUnavailable, "photo analysis unavailable")
		}
		return jsonError(c, fiber.StatusBadGateway, "photo analysis failed")
	}
	return c.JSON(analysis)
}

type profilePayload struct {
	Questionnaire *models.QuestionnaireData `json:"questionnaire,omitempty"`
	Computed      *models.ComputedProfile   `json:"computed,omitempty"`
	Mindset       *models.MindsetProfile    `json:"mindset,omitempty"`
	BlendStatus   string                    `json:"blend_status"`
	BlendFormula  *models.BlendFormula      `json:"blend_formula,omitempty"`
	BlendName     string                    `json:"blend_name,omitempty"`
}

func presentProfile(record models.ProfileRecord) profilePayload {
	return profilePayload{
		Questionnaire: record.Questionnaire,
		Computed:      record.Computed,
		Mindset:       record.Mindset,
		BlendStatus:   record.BlendStatus,
		BlendFormula:  record.BlendFormula,
		BlendName:     record.BlendName,
	}
}
