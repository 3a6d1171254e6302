package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultPort         = 3318
	DefaultDatabaseType = "sqlite"
	DefaultSQLiteURL    = "fms-roadmap.db"
	DefaultLogLevel     = "info"
	DefaultEnvFile      = ".env"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	RulesFile    string
	EnvFile      string
	LogLevel     string
}

// RegisterFlags binds the configuration flags to cfg. Zero values mean
// "not given on the command line" and are resolved later by Resolve.
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) {
	// Network and storage (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "server port (env PORT, default 3318)")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "database URL or sqlite file path (env DATABASE_URL)")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "database type: sqlite or postgres (env DATABASE_TYPE)")

	// Behaviour
	fs.StringVar(&cfg.RulesFile, "rules", "", "YAML rules configuration file (env RULES_FILE)")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "dotenv file to load (default .env when present)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
}

// Resolve fills every setting left empty by the command line from the
// environment, then from the dotenv file, then from defaults, and validates
// the result.
func Resolve(cfg Config) (Config, error) {
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DefaultDatabaseType
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	if cfg.RulesFile == "" {
		cfg.RulesFile = os.Getenv("RULES_FILE")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = DefaultLogLevel
		}
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SlogLevel returns the configured log level, or info if it does not parse.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// loadEnvFile never overrides variables already set in the environment.
// The default file is optional; an explicitly named one must exist.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}
