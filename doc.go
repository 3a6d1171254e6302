// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the migrant roadmap server.

A migrant fills in an entry survey (name, citizenship, entry date, purpose
and length of stay, fingerprinting and medical exam status). Answers are
kept as drafts, confirmed into versioned copies, and the latest confirmed
survey is turned into a dated checklist of actions ("roadmap") that can
be downloaded as a standalone HTML page.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or with flags:

	go run . serve -p 3318 -t postgres -d "postgres://..."

# Exporting

The current roadmap can be written without starting the server:

	go run . export --out roadmap.html

# Configuration

All settings are optional for SQLite:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string or SQLite file (default: fms-roadmap.db, required for postgres)
  - RULES_FILE (--rules): YAML list of work purposes
  - LOG_LEVEL (--log-level): debug, info, warn, error

Values may also come from a .env file (--env-file).

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (survey, roadmap)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON envelope helpers
  - models: Domain types, dates, validation
  - store: SQL persistence for surveys and roadmaps
  - rules: Recommendation rules
  - roadmap: Roadmap generation
  - export: HTML rendering
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
