// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/migrant-roadmap/export"
	"github.com/danielhkuo/migrant-roadmap/middleware"
	"github.com/danielhkuo/migrant-roadmap/models"
	"github.com/danielhkuo/migrant-roadmap/roadmap"
	"github.com/danielhkuo/migrant-roadmap/rules"
	"github.com/danielhkuo/migrant-roadmap/store"
)

type RoadmapHandler struct {
	surveys  *store.SurveyStore
	roadmaps *store.RoadmapStore
	builder  *roadmap.Builder
}

func NewRoadmapHandler(db *sql.DB, engine *rules.Engine) *RoadmapHandler {
	surveys := store.NewSurveyStore(db)
	roadmaps := store.NewRoadmapStore(db)
	return &RoadmapHandler{
		surveys:  surveys,
		roadmaps: roadmaps,
		builder:  roadmap.NewBuilder(surveys, roadmaps, engine),
	}
}

// WithClock replaces the time source for roadmap dates and timestamps
func (h *RoadmapHandler) WithClock(now func() time.Time) *RoadmapHandler {
	h.roadmaps.WithClock(now)
	h.builder.WithClock(now)
	return h
}

// Generate handles GET /api/roadmap/generate
// Builds a new roadmap from the most recently confirmed survey.
func (h *RoadmapHandler) Generate(w http.ResponseWriter, r *http.Request) {
	survey, err := h.surveys.FindLatestConfirmed(r.Context())
	if err != nil {
		slog.Error("failed to load confirmed survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgGenerateFailed)
		return
	}
	if survey == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgNoConfirmedSurvey)
		return
	}

	created, err := h.builder.Generate(r.Context(), survey.ID)
	if errors.Is(err, roadmap.ErrSurveyNotFound) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgNoConfirmedSurvey)
		return
	}
	if err != nil {
		slog.Error("failed to generate roadmap", "survey_id", survey.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgGenerateFailed)
		return
	}

	slog.Info("roadmap generated",
		"roadmap_id", created.ID,
		"survey_id", survey.ID,
		"recommendations", len(created.Recommendations),
	)

	middleware.SuccessResponse(w, models.MsgRoadmapGenerated, created)
}

// Export handles GET /api/roadmap/export
// Streams the current roadmap as an HTML attachment.
func (h *RoadmapHandler) Export(w http.ResponseWriter, r *http.Request) {
	current, err := h.builder.Current(r.Context())
	if err != nil {
		slog.Error("failed to load current roadmap", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgExportFailed)
		return
	}
	if current == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgNoRoadmap)
		return
	}

	body := export.HTML(*current)

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write export", "roadmap_id", current.ID, "error", err)
	}
}
