// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID returns a UUIDv7. Ids sort in creation order, so the largest id is
// also the newest row.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

// timestamp normalizes t to what both databases store losslessly.
func timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
