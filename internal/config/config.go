package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration. Values come from a YAML file
// (CONFIG_PATH, fallback ./config.yaml) overridden by environment variables.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Auth   AuthConfig   `yaml:"auth"`
	AI     AIConfig     `yaml:"ai"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"     env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"            env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CookieSecure    bool          `yaml:"cookie_secure"    env:"COOKIE_SECURE"   env-default:"false"`
	Timezone        string        `yaml:"timezone"         env:"TZ"              env-default:"UTC"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:""`
}

type AuthConfig struct {
	SecretKey  string        `yaml:"secret_key"  env:"SECRET_KEY"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"168h"`
}

// AIConfig points at the model gateway used for vision, coaching, and voice
// transcription. A blank base URL disables the AI collaborators.
type AIConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"AI_BASE_URL"`
	APIKey      string        `yaml:"api_key"      env:"AI_API_KEY"`
	CoachModel  string        `yaml:"coach_model"  env:"AI_COACH_MODEL"  env-default:"gpt-4o-mini"`
	VisionModel string        `yaml:"vision_model" env:"AI_VISION_MODEL" env-default:"gpt-4o"`
	Timeout     time.Duration `yaml:"timeout"      env:"AI_TIMEOUT"      env-default:"60s"`
}

const insecureSecretPlaceholder = "change_me_in_production"

// Load reads configuration with ENV taking priority over the YAML file.
// A missing default config file is fine; an explicitly named one is not.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if cfg.DB.Path == "" {
		cfg.DB.Path = filepath.Join("data", "quell.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	secret := strings.TrimSpace(cfg.Auth.SecretKey)
	if secret == "" {
		return errors.New("SECRET_KEY must be set")
	}
	if secret == insecureSecretPlaceholder {
		return errors.New("SECRET_KEY still uses the insecure placeholder")
	}
	if len(secret) < 32 {
		return errors.New("SECRET_KEY must be at least 32 characters")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	return nil
}

func (cfg *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
}
