// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roadmap turns a confirmed survey into a stored roadmap.

Builder loads the survey, asks the rules engine for recommendations and
persists the roadmap with all of its recommendations in one call to the
repository:

	builder := roadmap.NewBuilder(surveys, roadmaps, rules.NewEngine(cfg))
	created, err := builder.Generate(ctx, surveyID)
	if errors.Is(err, roadmap.ErrSurveyNotFound) {
		// 400
	}

Current returns the newest roadmap, which is the one the export endpoint
renders.
*/
package roadmap
