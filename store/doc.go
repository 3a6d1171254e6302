// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists surveys and roadmaps with raw SQL over database/sql.

# Surveys

Survey rows are insert-only. Saving a draft, confirming a form and
re-confirming it each add a row, so the table doubles as an answer history:

	surveys := store.NewSurveyStore(db)
	saved, err := surveys.Save(ctx, req.Draft())

Lookups return (nil, nil) when nothing matches:

  - FindByID: exact id
  - FindLatestDraft: newest row with is_draft set, by updated_at
  - FindLatestConfirmed: newest row with is_valid set, by created_at

# Roadmaps

RoadmapStore.Create writes a roadmap and its recommendations in a single
transaction. Recommendations are always loaded ordered by display_order.

	roadmaps := store.NewRoadmapStore(db)
	created, err := roadmaps.Create(ctx, models.Roadmap{SurveyID: id, ...})
	current, err := roadmaps.FindCurrent(ctx)

# Identifiers and Time

Ids are UUIDv7 strings. Timestamps are stored in UTC truncated to
microseconds, and ties on a timestamp are broken by id.
*/
package store
