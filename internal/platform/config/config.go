package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const EnvProduction = "production"

type Config struct {
	Addr              string        `env:"APP_ADDR" envDefault:":8080"`
	Environment       string        `env:"APP_ENV" envDefault:"development"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	JWTSecret         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
	DataEncryptionKey string        `env:"DATA_ENCRYPTION_KEY"`
	RunMigrations     bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	RunSeed           bool          `env:"RUN_SEED" envDefault:"true"`
	SeedAdminEmail    string        `env:"SEED_ADMIN_EMAIL" envDefault:"admin@example.com"`
	SeedAdminPassword string        `env:"SEED_ADMIN_PASSWORD"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES" envDefault:"10485760"`
	UploadDir         string        `env:"UPLOAD_DIR" envDefault:"uploads"`

	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	RateLimitRedisURL  string `env:"RATE_LIMIT_REDIS_URL"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// Load reads .env.local and .env when present, then the process
// environment. Variables already set in the environment win.
func Load() (Config, error) {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return Config{}, errors.Wrapf(err, "load %s", name)
		}
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	return cfg, nil
}

func (c Config) Production() bool {
	return c.Environment == EnvProduction
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Production() {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return errors.New("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return errors.New("SEED_ADMIN_PASSWORD must be set or RUN_SEED disabled in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return errors.New("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}
