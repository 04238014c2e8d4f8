// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig reads config/.env (without overriding the process environment),
// layers env vars over the defaults in teamtodoSettings and validates the result.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applySettings(v, teamtodoSettings)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setting is one configuration key with its default; every key is also
// bound to its upper-cased env name (postgres.max_conns -> POSTGRES_MAX_CONNS).
type setting struct {
	key string
	def any
}

var teamtodoSettings = []setting{
	{"logging.level", "debug"},
	{"logging.file", ""},
	{"logging.max_size_mb", 10},
	{"logging.max_backups", 3},
	{"logging.max_age_days", 28},

	{"server.host", "0.0.0.0"},
	{"server.port", 8080},
	{"server.shutdown_timeout", 5 * time.Second},
	{"http.request_timeout", 3 * time.Second},

	{"repository.backend", BackendPostgres},

	{"postgres.host", "localhost"},
	{"postgres.port", 5432},
	{"postgres.user", "postgres"},
	{"postgres.password", "postgres"},
	{"postgres.db_name", "teamtodo_db"},
	{"postgres.ssl_mode", "disable"},
	{"postgres.migrations_dir", "db/migrations"},
	{"postgres.migrate_timeout", 10 * time.Second},
	{"postgres.query_timeout", 2 * time.Second},
	{"postgres.max_conns", 10},
	{"postgres.min_conns", 2},
}

func applySettings(v *viper.Viper, settings []setting) {
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
		_ = v.BindEnv(s.key)
	}
}
