// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the migrant roadmap API.

# Handler Types

Each handler is a struct built from the database connection:

  - SurveyHandler: form lifecycle (open, submit draft, confirm)
  - RoadmapHandler: roadmap generation and HTML export

Handlers are created via constructor functions:

	surveyHandler := handlers.NewSurveyHandler(db)
	roadmapHandler := handlers.NewRoadmapHandler(db, rules.NewEngine(cfg))

Both accept WithClock so tests can pin "today" and row timestamps.

# Survey Flow

Surveys are append-only: every submit and every confirm inserts a row.

	GET  /api/survey/open         → OpenForm (latest draft, or a new form)
	POST /api/survey/submit       → Submit (validate, save as draft)
	POST /api/survey/confirm/{id} → Confirm (copy as confirmed, version + 1)

Submit answers 400 with a field → message map when validation fails.
An entry date later than today is rejected.

# Roadmap Flow

	GET /api/roadmap/generate → Generate (from the latest confirmed survey)
	GET /api/roadmap/export   → Export (current roadmap as roadmap.html)

Generate answers 400 when no survey has been confirmed; Export answers
400 when no roadmap has been generated yet.

# API Description

	GET /api/openapi.json → OpenAPI (embedded api/openapi.yaml, served as JSON)

# Errors

Precondition failures return 400 with a message for the user. Store
failures are logged with log/slog and answered with a generic 500.
*/
package handlers
