package folio

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all settings, loaded from FOLIO_* environment variables.
type Config struct {
	SiteName        string `env:"FOLIO_SITE_NAME" envDefault:"Portfolio"`
	SiteURL         string `env:"FOLIO_SITE_URL" envDefault:"http://localhost:3000"`
	SiteDescription string `env:"FOLIO_SITE_DESCRIPTION"`
	SiteAuthor      string `env:"FOLIO_SITE_AUTHOR"`

	Addr         string `env:"FOLIO_ADDR" envDefault:":3000"`
	DatabasePath string `env:"FOLIO_DB_PATH" envDefault:"data/folio.db"`
	UploadsDir   string `env:"FOLIO_UPLOADS_DIR" envDefault:"public/uploads"`

	AdminEmail    string `env:"FOLIO_ADMIN_EMAIL"`
	AdminPassword string `env:"FOLIO_ADMIN_PASSWORD"`

	SessionSecret string        `env:"FOLIO_SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"FOLIO_SESSION_TTL" envDefault:"12h"`
	CookieSecure  bool          `env:"FOLIO_COOKIE_SECURE" envDefault:"false"`

	PostCacheTTL time.Duration `env:"FOLIO_POST_CACHE_TTL" envDefault:"5m"`
}

// MinSessionSecretLength is the minimum accepted session secret size.
const MinSessionSecretLength = 32

// LoadConfig reads .env (if present) and the environment into a Config.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; variables may come from the real environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("folio: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.SessionSecret) < MinSessionSecretLength {
		return fmt.Errorf("folio: FOLIO_SESSION_SECRET must be at least %d bytes", MinSessionSecretLength)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("folio: FOLIO_SESSION_TTL must be positive")
	}
	return nil
}
