// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// MaxDurationOfStay is the longest stay, in days, the form accepts. It keeps
// every computed date within four-digit years and the value within a 32-bit
// INTEGER column.
const MaxDurationOfStay = 3650

// Field validation messages, keyed by JSON field name in the error map
const (
	ErrFullNameRequired     = "ФИО обязательно для заполнения"
	ErrCitizenshipRequired  = "Гражданство обязательно для заполнения"
	ErrEntryDateRequired    = "Дата въезда обязательна для заполнения"
	ErrEntryDateInFuture    = "Дата въезда не может быть в будущем"
	ErrPurposeRequired      = "Цель пребывания обязательна для заполнения"
	ErrDurationRequired     = "Срок пребывания обязателен для заполнения"
	ErrDurationNotPositive  = "Срок пребывания должен быть положительным числом"
	ErrDurationTooLong      = "Срок пребывания не может превышать 3650 дней"
	ErrFingerprintsRequired = "Необходимо указать наличие дактилоскопии"
	ErrMedicalExamRequired  = "Необходимо указать наличие медосмотра"
)

// Validate checks the required answer fields against today's date.
// It returns a field → message map, empty when the request is valid.
func (r SurveyRequest) Validate(today Date) map[string]string {
	errs := map[string]string{}

	if isBlank(r.FullName) {
		errs["fullName"] = ErrFullNameRequired
	}
	if isBlank(r.Citizenship) {
		errs["citizenship"] = ErrCitizenshipRequired
	}

	switch {
	case r.EntryDate == nil:
		errs["entryDate"] = ErrEntryDateRequired
	case r.EntryDate.After(today):
		errs["entryDate"] = ErrEntryDateInFuture
	}

	if isBlank(r.PurposeOfStay) {
		errs["purposeOfStay"] = ErrPurposeRequired
	}

	switch {
	case r.DurationOfStay == nil:
		errs["durationOfStay"] = ErrDurationRequired
	case *r.DurationOfStay <= 0:
		errs["durationOfStay"] = ErrDurationNotPositive
	case *r.DurationOfStay > MaxDurationOfStay:
		errs["durationOfStay"] = ErrDurationTooLong
	}

	if r.HasFingerprints == nil {
		errs["hasFingerprints"] = ErrFingerprintsRequired
	}
	if r.HasMedicalExam == nil {
		errs["hasMedicalExam"] = ErrMedicalExamRequired
	}

	return errs
}

// Draft converts a validated request into a new draft survey.
// Call only after Validate returned no errors.
func (r SurveyRequest) Draft() Survey {
	return Survey{
		FullName:        *r.FullName,
		Citizenship:     *r.Citizenship,
		EntryDate:       *r.EntryDate,
		PurposeOfStay:   *r.PurposeOfStay,
		DurationOfStay:  *r.DurationOfStay,
		HasFingerprints: *r.HasFingerprints,
		HasMedicalExam:  *r.HasMedicalExam,
		IsDraft:         true,
		IsValid:         false,
		Version:         1,
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
