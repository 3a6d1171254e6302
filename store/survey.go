// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/migrant-roadmap/models"
)

const surveyColumns = `
	id, full_name, citizenship, entry_date, purpose_of_stay, duration_of_stay,
	has_fingerprints, has_medical_exam, is_draft, is_valid, version, created_at, updated_at`

type SurveyStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSurveyStore(db *sql.DB) *SurveyStore {
	return &SurveyStore{db: db, now: time.Now}
}

// WithClock replaces the timestamp source, for deterministic tests.
func (s *SurveyStore) WithClock(now func() time.Time) *SurveyStore {
	s.now = now
	return s
}

// Save inserts survey as a new row and returns it with its assigned id and
// timestamps. Rows are never updated in place.
func (s *SurveyStore) Save(ctx context.Context, survey models.Survey) (models.Survey, error) {
	id, err := newID()
	if err != nil {
		return models.Survey{}, err
	}

	now := timestamp(s.now())
	survey.ID = id
	survey.CreatedAt = now
	survey.UpdatedAt = now
	if survey.Version == 0 {
		survey.Version = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO survey (`+surveyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, survey.ID, survey.FullName, survey.Citizenship, survey.EntryDate, survey.PurposeOfStay,
		survey.DurationOfStay, survey.HasFingerprints, survey.HasMedicalExam, survey.IsDraft,
		survey.IsValid, survey.Version, survey.CreatedAt, survey.UpdatedAt)
	if err != nil {
		return models.Survey{}, fmt.Errorf("failed to insert survey: %w", err)
	}

	return survey, nil
}

// FindByID returns nil when no survey has the id.
func (s *SurveyStore) FindByID(ctx context.Context, id string) (*models.Survey, error) {
	return s.queryOne(ctx, `SELECT `+surveyColumns+` FROM survey WHERE id = $1`, id)
}

// FindLatestDraft returns the most recently updated draft, or nil.
func (s *SurveyStore) FindLatestDraft(ctx context.Context) (*models.Survey, error) {
	return s.queryOne(ctx, `
		SELECT `+surveyColumns+`
		FROM survey
		WHERE is_draft = $1
		ORDER BY updated_at DESC, id DESC
		LIMIT 1
	`, true)
}

// FindLatestConfirmed returns the most recently created valid survey, or nil.
func (s *SurveyStore) FindLatestConfirmed(ctx context.Context) (*models.Survey, error) {
	return s.queryOne(ctx, `
		SELECT `+surveyColumns+`
		FROM survey
		WHERE is_valid = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, true)
}

func (s *SurveyStore) queryOne(ctx context.Context, query string, args ...any) (*models.Survey, error) {
	var survey models.Survey
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&survey.ID, &survey.FullName, &survey.Citizenship, &survey.EntryDate,
		&survey.PurposeOfStay, &survey.DurationOfStay, &survey.HasFingerprints,
		&survey.HasMedicalExam, &survey.IsDraft, &survey.IsValid, &survey.Version,
		&survey.CreatedAt, &survey.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query survey: %w", err)
	}

	survey.CreatedAt = survey.CreatedAt.UTC()
	survey.UpdatedAt = survey.UpdatedAt.UTC()
	return &survey, nil
}
