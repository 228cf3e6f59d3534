package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS parties (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			host_id    TEXT NOT NULL,
			capacity   INTEGER NOT NULL DEFAULT 6,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS party_members (
			party_id TEXT NOT NULL REFERENCES parties(id) ON DELETE CASCADE,
			user_id  TEXT NOT NULL,
			PRIMARY KEY (party_id, user_id)
		);

		CREATE TABLE IF NOT EXISTS availability (
			user_id    TEXT NOT NULL,
			week_start DATE NOT NULL,
			day        INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
			slot       INTEGER NOT NULL CHECK(slot BETWEEN 0 AND 47),
			state      TEXT NOT NULL CHECK(state IN ('available', 'preferred', 'unavailable')),
			PRIMARY KEY (user_id, week_start, day, slot)
		);

		CREATE INDEX IF NOT EXISTS idx_party_members_user ON party_members(user_id);
		CREATE INDEX IF NOT EXISTS idx_availability_week ON availability(user_id, week_start);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
