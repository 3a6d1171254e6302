// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/migrant-roadmap/middleware"
	"github.com/danielhkuo/migrant-roadmap/models"
	"github.com/danielhkuo/migrant-roadmap/store"
)

type SurveyHandler struct {
	surveys *store.SurveyStore
	now     func() time.Time
}

func NewSurveyHandler(db *sql.DB) *SurveyHandler {
	return &SurveyHandler{surveys: store.NewSurveyStore(db), now: time.Now}
}

// WithClock replaces the time source used for validation and timestamps
func (h *SurveyHandler) WithClock(now func() time.Time) *SurveyHandler {
	h.now = now
	h.surveys.WithClock(now)
	return h
}

// OpenForm handles GET /api/survey/open
func (h *SurveyHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	draft, err := h.surveys.FindLatestDraft(r.Context())
	if err != nil {
		slog.Error("failed to load draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgOpenFailed)
		return
	}

	if draft == nil {
		middleware.SuccessResponse(w, models.MsgNewForm, nil)
		return
	}

	middleware.SuccessResponse(w, models.MsgDraftFound, draft)
}

// Submit handles POST /api/survey/submit
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidJSON)
		return
	}

	// Validate input
	if errs := req.Validate(models.DateOf(h.now())); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	saved, err := h.surveys.Save(r.Context(), req.Draft())
	if err != nil {
		slog.Error("failed to save draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgSaveFailed)
		return
	}

	slog.Info("survey draft saved", "survey_id", saved.ID)

	middleware.SuccessResponse(w, models.MsgDraftSaved, saved)
}

// Confirm handles POST /api/survey/confirm/{id}
// The source row is left untouched; a new confirmed row is inserted.
func (h *SurveyHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")

	source, err := h.surveys.FindByID(r.Context(), surveyID)
	if err != nil {
		slog.Error("failed to load survey", "survey_id", surveyID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgSaveFailed)
		return
	}
	if source == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgSurveyNotFound)
		return
	}

	saved, err := h.surveys.Save(r.Context(), source.NextVersion())
	if err != nil {
		slog.Error("failed to save confirmed survey", "survey_id", surveyID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgSaveFailed)
		return
	}

	slog.Info("survey confirmed",
		"source_id", source.ID,
		"survey_id", saved.ID,
		"version", saved.Version,
	)

	middleware.SuccessResponse(w, models.MsgSurveyConfirmed, saved)
}
