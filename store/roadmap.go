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

type RoadmapStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewRoadmapStore(db *sql.DB) *RoadmapStore {
	return &RoadmapStore{db: db, now: time.Now}
}

// WithClock replaces the timestamp source, for deterministic tests.
func (s *RoadmapStore) WithClock(now func() time.Time) *RoadmapStore {
	s.now = now
	return s
}

// Create inserts the roadmap and all of its recommendations in one
// transaction. Either every row is written or none is.
func (s *RoadmapStore) Create(ctx context.Context, roadmap models.Roadmap) (models.Roadmap, error) {
	roadmapID, err := newID()
	if err != nil {
		return models.Roadmap{}, err
	}
	roadmap.ID = roadmapID
	roadmap.CreatedAt = timestamp(s.now())

	recs := make([]models.Recommendation, len(roadmap.Recommendations))
	copy(recs, roadmap.Recommendations)
	for i := range recs {
		recID, err := newID()
		if err != nil {
			return models.Roadmap{}, err
		}
		recs[i].ID = recID
		recs[i].RoadmapID = roadmapID
	}
	roadmap.Recommendations = recs

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO roadmap (id, survey_id, created_date, created_at)
		VALUES ($1, $2, $3, $4)
	`, roadmap.ID, roadmap.SurveyID, roadmap.CreatedDate, roadmap.CreatedAt)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("failed to insert roadmap: %w", err)
	}

	for _, rec := range recs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO recommendation (id, roadmap_id, title, description, execution_date, display_order)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, rec.ID, rec.RoadmapID, rec.Title, rec.Description, rec.ExecutionDate, rec.DisplayOrder)
		if err != nil {
			return models.Roadmap{}, fmt.Errorf("failed to insert recommendation %d: %w", rec.DisplayOrder, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Roadmap{}, fmt.Errorf("failed to commit roadmap: %w", err)
	}

	return roadmap, nil
}

// FindCurrent returns the most recently created roadmap, or nil.
func (s *RoadmapStore) FindCurrent(ctx context.Context) (*models.Roadmap, error) {
	return s.queryOne(ctx, `
		SELECT id, survey_id, created_date, created_at
		FROM roadmap
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`)
}

// FindByID returns nil when no roadmap has the id.
func (s *RoadmapStore) FindByID(ctx context.Context, id string) (*models.Roadmap, error) {
	return s.queryOne(ctx, `
		SELECT id, survey_id, created_date, created_at
		FROM roadmap
		WHERE id = $1
	`, id)
}

// FindBySurveyID returns the newest roadmap generated from the survey, or nil.
func (s *RoadmapStore) FindBySurveyID(ctx context.Context, surveyID string) (*models.Roadmap, error) {
	return s.queryOne(ctx, `
		SELECT id, survey_id, created_date, created_at
		FROM roadmap
		WHERE survey_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, surveyID)
}

// Delete removes a roadmap together with its recommendations. The
// recommendations are deleted explicitly rather than relying on the
// foreign key cascade alone. Deleting an unknown id is not an error.
func (s *RoadmapStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recommendation WHERE roadmap_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete recommendations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM roadmap WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete roadmap: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

func (s *RoadmapStore) queryOne(ctx context.Context, query string, args ...any) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&roadmap.ID, &roadmap.SurveyID, &roadmap.CreatedDate, &roadmap.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query roadmap: %w", err)
	}
	roadmap.CreatedAt = roadmap.CreatedAt.UTC()

	recs, err := s.recommendations(ctx, roadmap.ID)
	if err != nil {
		return nil, err
	}
	roadmap.Recommendations = recs

	return &roadmap, nil
}

func (s *RoadmapStore) recommendations(ctx context.Context, roadmapID string) ([]models.Recommendation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, roadmap_id, title, description, execution_date, display_order
		FROM recommendation
		WHERE roadmap_id = $1
		ORDER BY display_order
	`, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	recs := []models.Recommendation{}
	for rows.Next() {
		var rec models.Recommendation
		if err := rows.Scan(&rec.ID, &rec.RoadmapID, &rec.Title, &rec.Description,
			&rec.ExecutionDate, &rec.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recommendations: %w", err)
	}

	return recs, nil
}
