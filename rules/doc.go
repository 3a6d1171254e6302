// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rules maps a confirmed survey to the ordered list of bureaucratic
actions a migrant has to take.

# Rule Sequence

Rules are evaluated in this order; each is gated only by the survey:

	1. Migration registration     always                      entry + 7
	2. Fingerprinting             fingerprints not done       entry + 14
	3. Medical examination        medical exam not done       entry + 21
	4. Work patent                purpose is a work purpose   entry + 30
	5. Stay extension             duration > 90 days          entry + 60
	6. Departure reminder         always                      entry + duration - 7

The departure description names the deadline (entry + duration) as
DD.MM.YYYY. Display order counts emitted recommendations from 1.

# Work Purposes

The set of purpose-of-stay answers that trigger the work patent comes from
Config and defaults to "работа" and "трудоустройство". Values are compared
after NFC normalization and Unicode case folding, so "Работа" matches but
synonyms do not.

A YAML file can override the set:

	work_purposes:
	  - работа
	  - трудоустройство

Usage:

	cfg, err := rules.LoadConfig(path)
	engine := rules.NewEngine(cfg)
	recs := engine.Recommend(survey)
*/
package rules
