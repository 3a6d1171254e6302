// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/migrant-roadmap/models"
)

func confirmedSurvey(fingerprints, medical bool, purpose string, duration int) models.Survey {
	return models.Survey{
		ID:              "survey-1",
		FullName:        "Иванов Иван Иванович",
		Citizenship:     "Тестландия",
		EntryDate:       models.NewDate(2024, 3, 1),
		PurposeOfStay:   purpose,
		DurationOfStay:  duration,
		HasFingerprints: fingerprints,
		HasMedicalExam:  medical,
		IsValid:         true,
		Version:         2,
	}
}

func titles(recs []models.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestRecommend_AllRulesFire(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	s := confirmedSurvey(false, false, "работа", 100)

	recs := engine.Recommend(s)
	require.Len(t, recs, 6)

	assert.Equal(t, []string{
		TitleRegistration,
		TitleFingerprints,
		TitleMedicalExam,
		TitleWorkPatent,
		TitleStayExtension,
		TitleDeparture,
	}, titles(recs))

	entry := s.EntryDate
	wantDue := []models.Date{
		entry.AddDays(7),
		entry.AddDays(14),
		entry.AddDays(21),
		entry.AddDays(30),
		entry.AddDays(60),
		entry.AddDays(93),
	}
	for i, r := range recs {
		assert.Equal(t, wantDue[i], r.ExecutionDate, "due date of %q", r.Title)
		assert.Equal(t, i+1, r.DisplayOrder)
	}
}

func TestRecommend_MinimalSurvey(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	s := confirmedSurvey(true, true, "туризм", 30)

	recs := engine.Recommend(s)
	require.Len(t, recs, 2)

	assert.Equal(t, []string{TitleRegistration, TitleDeparture}, titles(recs))
	assert.Equal(t, s.EntryDate.AddDays(7), recs[0].ExecutionDate)
	assert.Equal(t, s.EntryDate.AddDays(23), recs[1].ExecutionDate)
	assert.Equal(t, 1, recs[0].DisplayOrder)
	assert.Equal(t, 2, recs[1].DisplayOrder)
}

func TestRecommend_DisplayOrderIsContiguous(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	for _, fingerprints := range []bool{true, false} {
		for _, medical := range []bool{true, false} {
			for _, purpose := range []string{"работа", "учеба"} {
				for _, duration := range []int{30, 90, 91, 365} {
					recs := engine.Recommend(confirmedSurvey(fingerprints, medical, purpose, duration))
					for i, r := range recs {
						if r.DisplayOrder != i+1 {
							t.Fatalf("order gap: fingerprints=%v medical=%v purpose=%s duration=%d got %d at %d",
								fingerprints, medical, purpose, duration, r.DisplayOrder, i)
						}
					}
					assert.Equal(t, TitleRegistration, recs[0].Title)
					assert.Equal(t, TitleDeparture, recs[len(recs)-1].Title)
				}
			}
		}
	}
}

func TestRecommend_ExtensionThreshold(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	at := engine.Recommend(confirmedSurvey(true, true, "туризм", 90))
	assert.NotContains(t, titles(at), TitleStayExtension)

	above := engine.Recommend(confirmedSurvey(true, true, "туризм", 91))
	assert.Contains(t, titles(above), TitleStayExtension)
}

func TestRecommend_DepartureDescriptionNamesDeadline(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	s := confirmedSurvey(true, true, "туризм", 30)

	recs := engine.Recommend(s)
	departure := recs[len(recs)-1]

	// 2024-03-01 + 30 days
	assert.Contains(t, departure.Description, "31.03.2024")
	assert.Equal(t, models.NewDate(2024, 3, 24), departure.ExecutionDate)
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	s := confirmedSurvey(false, false, "работа", 120)
	before := s

	engine.Recommend(s)

	assert.Equal(t, before, s)
}

func TestRecommend_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	s := confirmedSurvey(false, true, "трудоустройство", 200)

	assert.Equal(t, engine.Recommend(s), engine.Recommend(s))
}

func TestIsWorkPurpose(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	testCases := []struct {
		purpose  string
		expected bool
	}{
		{"работа", true},
		{"Работа", true},
		{"РАБОТА", true},
		{"трудоустройство", true},
		{"ТрудоУстройство", true},
		{"work", false},
		{"работа ", false},
		{"учеба", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.purpose, func(t *testing.T) {
			assert.Equal(t, tc.expected, engine.IsWorkPurpose(tc.purpose))
		})
	}
}

func TestIsWorkPurpose_CustomSet(t *testing.T) {
	engine := NewEngine(Config{WorkPurposes: []string{"Work", "employment"}})

	assert.True(t, engine.IsWorkPurpose("work"))
	assert.True(t, engine.IsWorkPurpose("EMPLOYMENT"))
	assert.False(t, engine.IsWorkPurpose("работа"))

	recs := engine.Recommend(confirmedSurvey(true, true, "work", 100))
	assert.Equal(t, []string{TitleRegistration, TitleWorkPatent, TitleStayExtension, TitleDeparture}, titles(recs))
}

func TestRecommend_DescriptionsAreFilled(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	for _, r := range engine.Recommend(confirmedSurvey(false, false, "работа", 100)) {
		assert.NotEmpty(t, strings.TrimSpace(r.Description), r.Title)
		assert.Empty(t, r.ID)
	}
}
