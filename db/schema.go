// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to types PostgreSQL and SQLite share. Column types are
// upper case because modernc sqlite only parses DATE/TIMESTAMP columns
// into time.Time when the declared type matches exactly.
const schema = `
-- Surveys (drafts and confirmed versions)
CREATE TABLE IF NOT EXISTS survey (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    citizenship TEXT NOT NULL,
    entry_date DATE NOT NULL,
    purpose_of_stay TEXT NOT NULL,
    duration_of_stay INTEGER NOT NULL CHECK (duration_of_stay > 0),
    has_fingerprints BOOLEAN NOT NULL,
    has_medical_exam BOOLEAN NOT NULL,
    is_draft BOOLEAN NOT NULL,
    is_valid BOOLEAN NOT NULL,
    version INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_survey_draft ON survey(is_draft, updated_at);
CREATE INDEX IF NOT EXISTS idx_survey_valid ON survey(is_valid, created_at);

-- Roadmaps
CREATE TABLE IF NOT EXISTS roadmap (
    id TEXT PRIMARY KEY,
    survey_id TEXT NOT NULL REFERENCES survey(id),
    created_date DATE NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_roadmap_survey_id ON roadmap(survey_id);
CREATE INDEX IF NOT EXISTS idx_roadmap_created_at ON roadmap(created_at);

-- Recommendations
CREATE TABLE IF NOT EXISTS recommendation (
    id TEXT PRIMARY KEY,
    roadmap_id TEXT NOT NULL REFERENCES roadmap(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    execution_date DATE NOT NULL,
    display_order INTEGER NOT NULL CHECK (display_order >= 1),
    UNIQUE (roadmap_id, display_order)
);

CREATE INDEX IF NOT EXISTS idx_recommendation_roadmap_id ON recommendation(roadmap_id);
`
