package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quellskin/quell/internal/content"
	"github.com/quellskin/quell/internal/services"
)

// GetBlend returns the personalized blend formula and fulfillment state.
func (handler *Handler) GetBlend(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	record, err := handler.profileService.GetProfile(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return jsonError(c, fiber.StatusNotFound, "profile not created yet")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to load blend")
	}
	if record.BlendFormula == nil {
		return jsonError(c, fiber.StatusNotFound, "blend not available yet")
	}

	return c.JSON(fiber.Map{
		"name":    record.BlendName,
		"formula": record.BlendFormula,
		"status":  record.BlendStatus,
		"flavors": content.BlendFlavors(),
	})
}

type blendOrderInput struct {
	Name   string `json:"name"`
	Flavor string `json:"flavor"`
}

// OrderBlend places an order for the current blend.
func (handler *Handler) OrderBlend(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input blendOrderInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	record, err := handler.blendService.PlaceOrder(user.ID, input.Name, input.Flavor)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return jsonError(c, fiber.StatusNotFound, "profile not created yet")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to place order")
	}
	return c.JSON(fiber.Map{
		"name":    record.BlendName,
		"formula": record.BlendFormula,
		"status":  record.BlendStatus,
	})
}

type blendStatusInput struct {
	Status string `json:"status"`
}

// UpdateBlendStatus moves the blend through its fulfillment states.
func (handler *Handler) UpdateBlendStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input blendStatusInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	record, err := handler.blendService.UpdateStatus(user.ID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBlendStatusInvalid):
			return jsonError(c, fiber.StatusBadRequest, "unknown blend status")
		case errors.Is(err, services.ErrProfileNotFound):
			return jsonError(c, fiber.StatusNotFound, "profile not created yet")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update status")
	}
	return c.JSON(fiber.Map{"status": record.BlendStatus})
}
