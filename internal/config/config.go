package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/folio/internal/domain"
)

// Prefix is prepended to every environment variable name.
const Prefix = "FOLIO"

// Database holds libsql connection settings. A remote URL wins over a local path.
type Database struct {
	URL       string `envconfig:"URL"`
	AuthToken string `envconfig:"AUTH_TOKEN"`
	Path      string `envconfig:"LOCAL_PATH"` // local file, defaults to the XDG data dir
}

// OTEL holds metrics exporter settings.
type OTEL struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Endpoint string `envconfig:"ENDPOINT"`
	Insecure bool   `envconfig:"INSECURE" default:"false"`
}

// Config is the full application configuration.
type Config struct {
	Database        Database
	OTEL            OTEL
	Port            int           `envconfig:"PORT" default:"8080"`
	Title           string        `envconfig:"TITLE" default:"Portfolio"`
	Locale          string        `envconfig:"LOCALE" default:"en-US"`
	WeekStart       string        `envconfig:"WEEK_START" default:"sunday"`
	Debug           bool          `envconfig:"DEBUG" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads configuration from FOLIO_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, ok := domain.ParseWeekday(cfg.WeekStart); !ok {
		return nil, fmt.Errorf("load config: invalid %s_WEEK_START %q", Prefix, cfg.WeekStart)
	}
	return &cfg, nil
}

// Weekday returns the configured first day of the calendar week.
func (c *Config) Weekday() time.Weekday {
	d, _ := domain.ParseWeekday(c.WeekStart)
	return d
}
