package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quellskin/quell/internal/services"
	"golang.org/x/crypto/bcrypt"
)

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword verifies the current password before setting a new one.
func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return jsonError(c, fiber.StatusUnauthorized, "current password is incorrect")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower, and digit")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to change password")
	}
	if err := handler.repositories.Users.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to change password")
	}
	return c.JSON(fiber.Map{"ok": true})
}

type displayNameInput struct {
	DisplayName string `json:"display_name"`
}

// UpdateDisplayName changes the name shown in the app.
func (handler *Handler) UpdateDisplayName(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input displayNameInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return jsonError(c, fiber.StatusBadRequest, "display name is required")
	}
	if len(displayName) > 80 {
		displayName = displayName[:80]
	}

	if err := handler.repositories.Users.UpdateDisplayName(user.ID, displayName); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to update display name")
	}
	user.DisplayName = displayName
	return c.JSON(fiber.Map{"user": presentUser(user)})
}

type regenerateRecoveryCodeInput struct {
	Password string `json:"password"`
}

// RegenerateRecoveryCode rotates the recovery code and returns the new one.
// The old code stops working immediately; the password is required so a
// leaked session cannot mint codes.
func (handler *Handler) RegenerateRecoveryCode(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input regenerateRecoveryCodeInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return jsonError(c, fiber.StatusUnauthorized, "password is incorrect")
	}

	code, hash, err := generateRecoveryCodeHash()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to regenerate recovery code")
	}
	if err := handler.repositories.Users.UpdateRecoveryCodeHash(user.ID, hash); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to regenerate recovery code")
	}
	return c.JSON(fiber.Map{"recovery_code": code})
}

// ClearCheckinData wipes the check-in history but keeps the account,
// questionnaire, and mindset progress.
func (handler *Handler) ClearCheckinData(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repositories.Users.ClearCheckinData(user.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear check-in data")
	}
	return sendNoContent(c)
}

type deleteAccountInput struct {
	Password string `json:"password"`
}

// DeleteAccount removes the user and all related data. The password is
// required so a leaked session cannot destroy the account on its own.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input deleteAccountInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return jsonError(c, fiber.StatusUnauthorized, "password is incorrect")
	}

	if err := handler.repositories.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	handler.clearAuthCookie(c)
	return sendNoContent(c)
}
