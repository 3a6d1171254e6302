// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roadmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/migrant-roadmap/models"
	"github.com/danielhkuo/migrant-roadmap/rules"
)

// ErrSurveyNotFound is returned by Generate when the survey id is unknown.
var ErrSurveyNotFound = errors.New("survey not found")

// SurveyFinder loads surveys. *store.SurveyStore implements it.
type SurveyFinder interface {
	FindByID(ctx context.Context, id string) (*models.Survey, error)
}

// Repository persists roadmaps. *store.RoadmapStore implements it.
type Repository interface {
	Create(ctx context.Context, roadmap models.Roadmap) (models.Roadmap, error)
	FindCurrent(ctx context.Context) (*models.Roadmap, error)
	FindBySurveyID(ctx context.Context, surveyID string) (*models.Roadmap, error)
}

type Builder struct {
	surveys  SurveyFinder
	roadmaps Repository
	engine   *rules.Engine
	now      func() time.Time
}

func NewBuilder(surveys SurveyFinder, roadmaps Repository, engine *rules.Engine) *Builder {
	return &Builder{
		surveys:  surveys,
		roadmaps: roadmaps,
		engine:   engine,
		now:      time.Now,
	}
}

// WithClock replaces the source of "today", for deterministic tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Generate runs the rules against the survey and stores the result as a new
// roadmap dated today. Each call creates a new roadmap; earlier ones are kept.
func (b *Builder) Generate(ctx context.Context, surveyID string) (models.Roadmap, error) {
	survey, err := b.surveys.FindByID(ctx, surveyID)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("failed to load survey: %w", err)
	}
	if survey == nil {
		return models.Roadmap{}, fmt.Errorf("%w: %s", ErrSurveyNotFound, surveyID)
	}

	draft := models.Roadmap{
		SurveyID:        survey.ID,
		CreatedDate:     models.DateOf(b.now()),
		Recommendations: b.engine.Recommend(*survey),
	}

	created, err := b.roadmaps.Create(ctx, draft)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("failed to save roadmap: %w", err)
	}

	return created, nil
}

// Current returns the most recently generated roadmap, or nil if none exists.
func (b *Builder) Current(ctx context.Context) (*models.Roadmap, error) {
	current, err := b.roadmaps.FindCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current roadmap: %w", err)
	}
	return current, nil
}

// ForSurvey returns the newest roadmap generated from the survey, or nil.
func (b *Builder) ForSurvey(ctx context.Context, surveyID string) (*models.Roadmap, error) {
	found, err := b.roadmaps.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roadmap for survey %s: %w", surveyID, err)
	}
	return found, nil
}
