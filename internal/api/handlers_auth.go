package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quellskin/quell/internal/models"
	"github.com/quellskin/quell/internal/services"
	"golang.org/x/crypto/bcrypt"
)

const (
	recoveryAttemptLimit  = 5
	recoveryAttemptWindow = 15 * time.Minute
)

type registerInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type recoverInput struct {
	RecoveryCode string `json:"recovery_code"`
	NewPassword  string `json:"new_password"`
}

type userPayload struct {
	ID                  uint   `json:"id"`
	Email               string `json:"email"`
	DisplayName         string `json:"display_name"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

func presentUser(user *models.User) userPayload {
	return userPayload{
		ID:                  user.ID,
		Email:               user.Email,
		DisplayName:         user.DisplayName,
		OnboardingCompleted: user.OnboardingCompleted,
	}
}

// SetupStatus reports whether any account exists yet, so a fresh install
// can open on the registration screen.
func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	count, err := handler.repositories.Users.CountUsers()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to check setup status")
	}
	return c.JSON(fiber.Map{"has_users": count > 0})
}

// Register creates the account and returns the one-time recovery code. The
// code is shown exactly once; only its bcrypt hash is stored.
func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "valid email and password are required")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower, and digit")
	}

	exists, err := handler.authService.RegistrationEmailExists(email)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "registration failed")
	}
	if exists {
		return jsonError(c, fiber.StatusConflict, "email already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "registration failed")
	}
	recoveryCode, recoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "registration failed")
	}

	user := models.User{
		Email:            email,
		PasswordHash:     string(passwordHash),
		DisplayName:      strings.TrimSpace(input.DisplayName),
		RecoveryCodeHash: recoveryHash,
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "registration failed")
	}

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":          presentUser(&user),
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "login failed")
	}
	return c.JSON(fiber.Map{"user": presentUser(&user)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"user": presentUser(user)})
}

// Recover resets the password using the one-time recovery code, then rotates
// the code. Attempts are rate limited per client address.
func (handler *Handler) Recover(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.recoveryLimiter.blocked(limiterKey, now, recoveryAttemptLimit, recoveryAttemptWindow) {
		return jsonError(c, fiber.StatusTooManyRequests, "too many attempts, try again later")
	}

	var input recoverInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	code := normalizeRecoveryCode(input.RecoveryCode)
	if err := services.ValidateRecoveryCodeFormat(code); err != nil {
		handler.recoveryLimiter.recordFailure(limiterKey, now, recoveryAttemptWindow)
		return jsonError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower, and digit")
	}

	user, err := handler.authService.FindUserByRecoveryCode(code)
	if err != nil {
		if errors.Is(err, services.ErrRecoveryCodeNotFound) {
			handler.recoveryLimiter.recordFailure(limiterKey, now, recoveryAttemptWindow)
			return jsonError(c, fiber.StatusUnauthorized, "invalid recovery code")
		}
		return jsonError(c, fiber.StatusInternalServerError, "recovery failed")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "recovery failed")
	}
	newCode, newHash, err := generateRecoveryCodeHash()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "recovery failed")
	}

	user.PasswordHash = string(passwordHash)
	user.RecoveryCodeHash = newHash
	if err := handler.authService.SaveUser(user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "recovery failed")
	}

	handler.recoveryLimiter.reset(limiterKey)
	if err := handler.setAuthCookie(c, user, false); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "recovery failed")
	}

	return c.JSON(fiber.Map{
		"user":          presentUser(user),
		"recovery_code": newCode,
	})
}
