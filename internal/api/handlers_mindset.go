package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quellskin/quell/internal/content"
	"github.com/quellskin/quell/internal/services"
)

// GetMindsetQuiz returns the persona quiz questions.
func (handler *Handler) GetMindsetQuiz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"questions": content.QuizQuestions()})
}

// GetMindsetModules returns the module catalog.
func (handler *Handler) GetMindsetModules(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"modules": content.Modules()})
}

type quizSubmission struct {
	Answers map[string]string `json:"answers"`
}

// SubmitMindsetQuiz classifies the answers and starts the assigned module.
// Retaking the quiz resets progress.
func (handler *Handler) SubmitMindsetQuiz(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input quizSubmission
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.Answers) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "answers are required")
	}

	profile, err := handler.mindsetService.FinishQuiz(user.ID, input.Answers, time.Now().In(handler.location))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save quiz")
	}
	return c.JSON(profile)
}

// GetMindsetState returns the current mindset profile with its module.
func (handler *Handler) GetMindsetState(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.mindsetService.GetMindset(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrMindsetNotStarted) {
			return jsonError(c, fiber.StatusNotFound, "take the quiz first")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to load mindset state")
	}

	module, _ := content.ModuleByID(profile.AssignedModuleID)
	return c.JSON(fiber.Map{
		"profile": profile,
		"module":  module,
	})
}

// CompleteMindsetDay marks today's task done. Repeats within the same
// calendar day are acknowledged but not counted.
func (handler *Handler) CompleteMindsetDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, counted, err := handler.mindsetService.CompleteDay(user.ID, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrMindsetNotStarted) {
			return jsonError(c, fiber.StatusNotFound, "take the quiz first")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to record completion")
	}
	return c.JSON(fiber.Map{
		"profile": profile,
		"counted": counted,
	})
}

type moduleSelection struct {
	ModuleID string `json:"module_id"`
}

// SelectMindsetModule switches the active module without resetting progress.
func (handler *Handler) SelectMindsetModule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input moduleSelection
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.mindsetService.SelectModule(user.ID, input.ModuleID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMindsetNotStarted):
			return jsonError(c, fiber.StatusNotFound, "take the quiz first")
		case errors.Is(err, services.ErrMindsetModuleUnknown):
			return jsonError(c, fiber.StatusBadRequest, "unknown module")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to switch module")
	}
	return c.JSON(profile)
}
