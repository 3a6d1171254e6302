// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SurveyRequest: fullName, citizenship, entryDate, purposeOfStay,
    durationOfStay, hasFingerprints, hasMedicalExam

All fields are pointers so that Validate can tell a missing answer from
false or zero:

	errs := req.Validate(models.DateOf(time.Now()))
	if len(errs) > 0 {
		// respond 400 with errs
	}
	draft := req.Draft()

# Response Types

Every JSON endpoint answers with the same envelope:

	{"success": true, "message": "...", "data": {...}}
	{"success": false, "message": "...", "errors": {"fullName": "..."}}

# Domain Types

  - Survey: form answers plus draft/valid flags and version
  - Roadmap: dated set of recommendations generated from one survey
  - Recommendation: titled action with execution date and display order

Confirming a draft never edits it; NextVersion builds the successor row:

	confirmed := draft.NextVersion() // IsDraft=false, IsValid=true, Version+1

# Dates

Date is a calendar date. It is written as YYYY-MM-DD in JSON and SQL, and
Human formats it as DD.MM.YYYY for generated documents.
*/
package models
