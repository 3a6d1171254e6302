// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/migrant-roadmap/testutil"
)

// today is the date every handler test runs on
var today = time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)

// envelope decodes models.APIResponse with a typed data field
type envelope[T any] struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    T                 `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var resp envelope[T]
	testutil.AssertJSON(t, w, &resp)
	return resp
}

// validSubmission is a complete form answer entering on 2024-03-01
func validSubmission() map[string]any {
	return map[string]any{
		"fullName":        "Иванов Иван",
		"citizenship":     "Узбекистан",
		"entryDate":       "2024-03-01",
		"purposeOfStay":   "работа",
		"durationOfStay":  180,
		"hasFingerprints": false,
		"hasMedicalExam":  false,
	}
}
