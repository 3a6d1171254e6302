// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rules

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/danielhkuo/migrant-roadmap/models"
)

// Recommendation titles
const (
	TitleRegistration  = "Миграционный учет"
	TitleFingerprints  = "Прохождение дактилоскопии"
	TitleMedicalExam   = "Медицинское освидетельствование"
	TitleWorkPatent    = "Получение патента на работу"
	TitleStayExtension = "Продление срока временного пребывания"
	TitleDeparture     = "Выезд из Российской Федерации"
)

// Days after entry by which each action is due
const (
	RegistrationDays  = 7
	FingerprintsDays  = 14
	MedicalExamDays   = 21
	WorkPatentDays    = 30
	StayExtensionDays = 60

	// DepartureLeadDays is how long before the end of stay the departure
	// reminder falls due
	DepartureLeadDays = 7

	// ExtensionThresholdDays is the longest stay that needs no extension
	ExtensionThresholdDays = 90
)

const (
	descRegistration = "Необходимо встать на миграционный учет в течение 7 рабочих дней с момента въезда в Российскую Федерацию. " +
		"Обратитесь в территориальное подразделение МВД России или в многофункциональный центр (МФЦ)."
	descFingerprints = "Необходимо пройти процедуру дактилоскопической регистрации в территориальном органе МВД России. " +
		"Запишитесь на прием заранее через официальный сайт или по телефону."
	descMedicalExam = "Пройдите медицинское освидетельствование в медицинской организации, имеющей соответствующую лицензию. " +
		"Получите сертификат об отсутствии ВИЧ-инфекции, сертификат об отсутствии инфекционных заболеваний и сертификат об отсутствии наркозависимости."
	descWorkPatent = "Для осуществления трудовой деятельности необходимо получить патент. " +
		"Обратитесь в территориальное подразделение МВД России с необходимыми документами " +
		"(паспорт, миграционная карта, фотографии, медицинские сертификаты, документ об оплате патента)."
	descStayExtension = "Если планируемый срок пребывания превышает 90 дней, необходимо подать заявление о продлении срока " +
		"временного пребывания в территориальное подразделение МВД России."
	descDepartureFormat = "Срок вашего пребывания истекает. Убедитесь, что вы покинете территорию Российской Федерации до %s " +
		"или продлите документы на пребывание."
)

// rule is one gated recommendation. Rules run in declaration order and
// never look at each other's output.
type rule struct {
	title    string
	applies  func(models.Survey) bool
	due      func(models.Survey) models.Date
	describe func(models.Survey) string
}

// Engine turns a confirmed survey into its ordered recommendations.
// It is safe for concurrent use.
type Engine struct {
	workPurposes map[string]struct{}
	rules        []rule
}

func NewEngine(cfg Config) *Engine {
	e := &Engine{workPurposes: make(map[string]struct{}, len(cfg.WorkPurposes))}
	for _, p := range cfg.WorkPurposes {
		e.workPurposes[fold(p)] = struct{}{}
	}

	e.rules = []rule{
		{
			title:    TitleRegistration,
			applies:  always,
			due:      daysAfterEntry(RegistrationDays),
			describe: fixed(descRegistration),
		},
		{
			title:    TitleFingerprints,
			applies:  func(s models.Survey) bool { return !s.HasFingerprints },
			due:      daysAfterEntry(FingerprintsDays),
			describe: fixed(descFingerprints),
		},
		{
			title:    TitleMedicalExam,
			applies:  func(s models.Survey) bool { return !s.HasMedicalExam },
			due:      daysAfterEntry(MedicalExamDays),
			describe: fixed(descMedicalExam),
		},
		{
			title:    TitleWorkPatent,
			applies:  func(s models.Survey) bool { return e.IsWorkPurpose(s.PurposeOfStay) },
			due:      daysAfterEntry(WorkPatentDays),
			describe: fixed(descWorkPatent),
		},
		{
			title:    TitleStayExtension,
			applies:  func(s models.Survey) bool { return s.DurationOfStay > ExtensionThresholdDays },
			due:      daysAfterEntry(StayExtensionDays),
			describe: fixed(descStayExtension),
		},
		{
			title:   TitleDeparture,
			applies: always,
			due: func(s models.Survey) models.Date {
				return s.EntryDate.AddDays(s.DurationOfStay - DepartureLeadDays)
			},
			describe: func(s models.Survey) string {
				return fmt.Sprintf(descDepartureFormat, DepartureDeadline(s).Human())
			},
		},
	}

	return e
}

// Recommend evaluates every rule against s in fixed order. Display order
// starts at 1 and counts emitted recommendations only.
func (e *Engine) Recommend(s models.Survey) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(e.rules))
	order := 1
	for _, r := range e.rules {
		if !r.applies(s) {
			continue
		}
		recs = append(recs, models.Recommendation{
			Title:         r.title,
			Description:   r.describe(s),
			ExecutionDate: r.due(s),
			DisplayOrder:  order,
		})
		order++
	}
	return recs
}

// IsWorkPurpose reports whether purpose is one of the configured work
// purposes, ignoring case.
func (e *Engine) IsWorkPurpose(purpose string) bool {
	_, ok := e.workPurposes[fold(purpose)]
	return ok
}

// DepartureDeadline is the last day of the declared stay.
func DepartureDeadline(s models.Survey) models.Date {
	return s.EntryDate.AddDays(s.DurationOfStay)
}

func always(models.Survey) bool { return true }

func daysAfterEntry(n int) func(models.Survey) models.Date {
	return func(s models.Survey) models.Date { return s.EntryDate.AddDays(n) }
}

func fixed(text string) func(models.Survey) string {
	return func(models.Survey) string { return text }
}

// A cases.Caser keeps state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
