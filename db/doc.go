// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - postgres: github.com/lib/pq, URL passed through unchanged
  - sqlite: modernc.org/sqlite (pure Go), with foreign keys and a busy
    timeout enabled through DSN pragmas and a single open connection

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both databases.

# Tables

  - survey: form answers, draft/valid flags, version, timestamps
  - roadmap: one generated roadmap per row, referencing its survey
  - recommendation: ordered items of a roadmap

# Relationships

	survey 1──* roadmap
	roadmap 1──* recommendation (ON DELETE CASCADE)

recommendation.(roadmap_id, display_order) is unique.
*/
package db
