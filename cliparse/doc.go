// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

RegisterFlags binds every setting to a flag set, usually the persistent
flags of the cobra root command. Once the command line is parsed, Resolve
fills in the rest and validates the result:

	cliparse.RegisterFlags(cmd.PersistentFlags(), &cfg)
	// ...
	cfg, err := cliparse.Resolve(cfg)

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string or SQLite file (default: fms-roadmap.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - RulesFile: optional YAML rules configuration
  - EnvFile: dotenv file (default: .env, skipped when absent)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  Database type
	--rules              Rules file
	--env-file           Dotenv file
	--log-level          Log level

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	RULES_FILE    → --rules
	LOG_LEVEL     → --log-level

Variables may also come from the dotenv file, loaded with
github.com/joho/godotenv. Values already present in the environment win
over the file, and CLI flags take precedence over both.

# Validation

Resolve returns an error when:

  - PORT is not a number or the port is outside 1-65535
  - the database type is neither sqlite nor postgres
  - postgres is selected without a database URL
  - the log level does not parse
  - an explicitly named env file cannot be read
*/
package cliparse
