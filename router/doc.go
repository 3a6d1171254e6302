// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the migrant roadmap API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, rules.NewEngine(rulesCfg))

# Endpoints

Health:

	GET /health

API description:

	GET /api/openapi.json - OpenAPI 3 document for the routes below

Survey form:

	GET  /api/survey/open         - Latest draft or an empty form
	POST /api/survey/submit       - Validate and save a draft
	POST /api/survey/confirm/{id} - Save a confirmed copy as a new version

Roadmap:

	GET /api/roadmap/generate - Build a roadmap from the latest confirmed survey
	GET /api/roadmap/export   - Download the current roadmap as HTML

Every /api route is wrapped with middleware.WithLogging. CORS is applied
to the whole mux by the caller.

# Handler Initialization

The router creates handler instances with dependency injection:

	surveyHandler := handlers.NewSurveyHandler(db)
	roadmapHandler := handlers.NewRoadmapHandler(db, engine)
*/
package router
