package api

import (
	"time"

	"github.com/quellskin/quell/internal/ai"
	"github.com/quellskin/quell/internal/db"
	"github.com/quellskin/quell/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	sessionTTL   time.Duration
	aiClients    *ai.Clients

	repositories    *db.Repositories
	authService     *services.AuthService
	profileService  *services.ProfileService
	checkinService  *services.CheckinService
	mindsetService  *services.MindsetService
	blendService    *services.BlendService
	recoveryLimiter *attemptLimiter
}

type Option func(*Handler)

// WithCookieSecure marks auth and CSRF cookies Secure; enable behind TLS.
func WithCookieSecure(secure bool) Option {
	return func(handler *Handler) {
		handler.cookieSecure = secure
	}
}

// WithSessionTTL overrides the lifetime of standard (non-remember-me) auth
// tokens. Non-positive values keep the default.
func WithSessionTTL(ttl time.Duration) Option {
	return func(handler *Handler) {
		if ttl > 0 {
			handler.sessionTTL = ttl
		}
	}
}

// WithAIClients attaches the coach, vision, and speech collaborators. The
// API degrades gracefully without them.
func WithAIClients(clients *ai.Clients) Option {
	return func(handler *Handler) {
		handler.aiClients = clients
	}
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, options ...Option) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:              database,
		secretKey:       []byte(secretKey),
		location:        location,
		sessionTTL:      defaultAuthTokenTTL,
		recoveryLimiter: newAttemptLimiter(),
	}
	for _, option := range options {
		option(handler)
	}

	handler.withDependencies(database)
	return handler, nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.profileService = services.NewProfileService(handler.repositories.Profiles, handler.repositories.Users)
	handler.checkinService = services.NewCheckinService(handler.repositories.DailyLogs)
	handler.mindsetService = services.NewMindsetService(handler.repositories.Profiles)
	handler.blendService = services.NewBlendService(handler.repositories.Profiles)
	return handler
}
