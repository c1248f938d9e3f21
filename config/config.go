package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings, read from the environment.
type Config struct {
	BindAddress   string        `env:"BIND_ADDRESS" envDefault:"0.0.0.0:5050"`
	TLSDomains    []string      `env:"TLS_DOMAINS"`                   // e.g. "example.com,example2.com"
	MySQLDSN      string        `env:"MYSQL_DSN"`                     // MySQL will be used if this is set
	SQLiteFile    string        `env:"SQLITE_FILE" envDefault:"blog.db"` // SQLite is used when MYSQL_DSN is not configured
	SessionKey    string        `env:"SESSION_KEY"`                   // if empty, a random key is generated at startup
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"720h"`
	TemplatesGlob string        `env:"TEMPLATES_GLOB" envDefault:"templates/*.tmpl"`
	DebugMode     bool          `env:"DEBUG_MODE" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}
