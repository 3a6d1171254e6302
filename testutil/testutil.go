// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/migrant-roadmap/db"
	"github.com/google/uuid"
)

// Epoch is the first instant handed out by a default test Clock.
var Epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh SQLite database file with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// Clock is a deterministic time source. Every call to Now returns the
// current instant and then advances it by Step.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewClock returns a Clock starting at start that advances one second per call
func NewClock(start time.Time) *Clock {
	return &Clock{now: start, Step: time.Second}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}

// SurveyFixture describes a survey row inserted by CreateTestSurvey
type SurveyFixture struct {
	FullName        string
	Citizenship     string
	EntryDate       string // YYYY-MM-DD
	PurposeOfStay   string
	DurationOfStay  int
	HasFingerprints bool
	HasMedicalExam  bool
	IsDraft         bool
	IsValid         bool
	Version         int
	CreatedAt       time.Time
}

// ConfirmedSurvey returns a valid, non-draft fixture entering on 2024-03-01
func ConfirmedSurvey() SurveyFixture {
	return SurveyFixture{
		FullName:       "Иванов Иван",
		Citizenship:    "Узбекистан",
		EntryDate:      "2024-03-01",
		PurposeOfStay:  "работа",
		DurationOfStay: 180,
		IsValid:        true,
		Version:        2,
		CreatedAt:      Epoch,
	}
}

// DraftSurvey returns a draft fixture with the same answers as ConfirmedSurvey
func DraftSurvey() SurveyFixture {
	f := ConfirmedSurvey()
	f.IsDraft = true
	f.IsValid = false
	f.Version = 1
	return f
}

// CreateTestSurvey inserts a survey row and returns its ID
func CreateTestSurvey(t *testing.T, db *sql.DB, f SurveyFixture) string {
	t.Helper()

	surveyID := uuid.NewString()
	if f.Version == 0 {
		f.Version = 1
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = Epoch
	}

	_, err := db.Exec(`
		INSERT INTO survey (id, full_name, citizenship, entry_date, purpose_of_stay, duration_of_stay,
		                    has_fingerprints, has_medical_exam, is_draft, is_valid, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
	`, surveyID, f.FullName, f.Citizenship, f.EntryDate, f.PurposeOfStay, f.DurationOfStay,
		f.HasFingerprints, f.HasMedicalExam, f.IsDraft, f.IsValid, f.Version, f.CreatedAt.UTC())
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}

	return surveyID
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
