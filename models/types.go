package models

import "time"

// Response messages shown to the form's users
const (
	MsgDraftFound        = "Найден черновик анкеты"
	MsgNewForm           = "Новая анкета"
	MsgDraftSaved        = "Анкета успешно сохранена как черновик"
	MsgSurveyConfirmed   = "Анкета успешно сохранена"
	MsgValidationFailed  = "Ошибки валидации"
	MsgInvalidJSON       = "Некорректный формат запроса"
	MsgSurveyNotFound    = "Survey not found"
	MsgSaveFailed        = "Ошибка при сохранении анкеты"
	MsgOpenFailed        = "Ошибка при загрузке анкеты"
	MsgRoadmapGenerated  = "Путеводитель успешно сформирован"
	MsgNoConfirmedSurvey = "Не найдена валидная анкета. Сначала заполните и сохраните анкету."
	MsgGenerateFailed    = "Ошибка при формировании путеводителя"
	MsgNoRoadmap         = "Путеводитель не найден. Сначала создайте путеводитель."
	MsgExportFailed      = "Ошибка при экспорте путеводителя"
	MsgInternalError     = "Внутренняя ошибка сервера"
)

// Request types

// SurveyRequest carries the answer fields of the form. Pointers distinguish
// a missing field from its zero value.
type SurveyRequest struct {
	FullName        *string `json:"fullName"`
	Citizenship     *string `json:"citizenship"`
	EntryDate       *Date   `json:"entryDate"`
	PurposeOfStay   *string `json:"purposeOfStay"`
	DurationOfStay  *int    `json:"durationOfStay"`
	HasFingerprints *bool   `json:"hasFingerprints"`
	HasMedicalExam  *bool   `json:"hasMedicalExam"`
}

// Response types

// APIResponse is the envelope shared by every JSON endpoint.
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Domain types

type Survey struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Citizenship     string    `json:"citizenship"`
	EntryDate       Date      `json:"entryDate"`
	PurposeOfStay   string    `json:"purposeOfStay"`
	DurationOfStay  int       `json:"durationOfStay"`
	HasFingerprints bool      `json:"hasFingerprints"`
	HasMedicalExam  bool      `json:"hasMedicalExam"`
	IsDraft         bool      `json:"isDraft"`
	IsValid         bool      `json:"isValid"`
	Version         int       `json:"version"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NextVersion returns the confirmed successor of s: answers are copied,
// identity and timestamps are left for the store to assign.
func (s Survey) NextVersion() Survey {
	return Survey{
		FullName:        s.FullName,
		Citizenship:     s.Citizenship,
		EntryDate:       s.EntryDate,
		PurposeOfStay:   s.PurposeOfStay,
		DurationOfStay:  s.DurationOfStay,
		HasFingerprints: s.HasFingerprints,
		HasMedicalExam:  s.HasMedicalExam,
		IsDraft:         false,
		IsValid:         true,
		Version:         s.Version + 1,
	}
}

type Roadmap struct {
	ID              string           `json:"id"`
	SurveyID        string           `json:"surveyId"`
	CreatedDate     Date             `json:"createdDate"`
	CreatedAt       time.Time        `json:"-"`
	Recommendations []Recommendation `json:"recommendations"`
}

type Recommendation struct {
	ID            string `json:"id"`
	RoadmapID     string `json:"-"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ExecutionDate Date   `json:"executionDate"`
	DisplayOrder  int    `json:"displayOrder"` // 1-indexed
}
