// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/migrant-roadmap/handlers"
	"github.com/danielhkuo/migrant-roadmap/middleware"
	"github.com/danielhkuo/migrant-roadmap/rules"
)

func NewRouter(db *sql.DB, engine *rules.Engine) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(db)
	roadmapHandler := handlers.NewRoadmapHandler(db, engine)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API description
	mux.HandleFunc("GET /api/openapi.json", middleware.WithLogging(handlers.OpenAPI))

	// Survey form
	mux.HandleFunc("GET /api/survey/open", middleware.WithLogging(surveyHandler.OpenForm))
	mux.HandleFunc("POST /api/survey/submit", middleware.WithLogging(surveyHandler.Submit))
	mux.HandleFunc("POST /api/survey/confirm/{id}", middleware.WithLogging(surveyHandler.Confirm))

	// Roadmap
	mux.HandleFunc("GET /api/roadmap/generate", middleware.WithLogging(roadmapHandler.Generate))
	mux.HandleFunc("GET /api/roadmap/export", middleware.WithLogging(roadmapHandler.Export))

	return mux
}
