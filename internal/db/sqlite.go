// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/dateutil"
)

// Ensure SQLite implements avail.Repository.
var _ avail.Repository = (*SQLite)(nil)

// SQLite implements avail.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
// Parent directories of path are created if missing.
func New(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// LoadWeek retrieves one user's availability snapshot for a week.
// A week with no rows is an empty week, not an error.
func (s *SQLite) LoadWeek(ctx context.Context, userID string, weekStart time.Time) (avail.Week, error) {
	query := `
		SELECT day, slot, state
		FROM availability
		WHERE user_id = ? AND week_start = ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID, dateutil.WeekKey(weekStart))
	if err != nil {
		return avail.Week{}, fmt.Errorf("%w: querying week: %v", avail.ErrStoreUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	week := avail.NewWeek()
	for rows.Next() {
		var (
			day, slot int
			state     string
		)
		if err := rows.Scan(&day, &slot, &state); err != nil {
			return avail.Week{}, fmt.Errorf("scanning slot: %w", err)
		}
		st, err := avail.ParseState(state)
		if err != nil {
			return avail.Week{}, fmt.Errorf("parsing slot state: %w", err)
		}
		week.Set(day, slot, st)
	}
	if err := rows.Err(); err != nil {
		return avail.Week{}, fmt.Errorf("%w: iterating week: %v", avail.ErrStoreUnavailable, err)
	}

	return week, nil
}

// SaveWeek overwrites the stored snapshot for (userID, weekStart).
// The snapshot is replaced whole: delete then insert, in one transaction.
func (s *SQLite) SaveWeek(ctx context.Context, userID string, weekStart time.Time, w avail.Week) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", avail.ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	key := dateutil.WeekKey(weekStart)

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM availability WHERE user_id = ? AND week_start = ?",
		userID, key,
	); err != nil {
		return fmt.Errorf("%w: clearing snapshot: %v", avail.ErrStoreUnavailable, err)
	}

	var insertErr error
	w.Each(func(day, slot int, state avail.SlotState) {
		if insertErr != nil {
			return
		}
		_, insertErr = tx.ExecContext(ctx,
			"INSERT INTO availability (user_id, week_start, day, slot, state) VALUES (?, ?, ?, ?, ?)",
			userID, key, day, slot, state.String(),
		)
	})
	if insertErr != nil {
		return fmt.Errorf("%w: inserting slot: %v", avail.ErrStoreUnavailable, insertErr)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing snapshot: %v", avail.ErrStoreUnavailable, err)
	}

	return nil
}

// CreateUser persists a user, generating an ID when absent.
func (s *SQLite) CreateUser(ctx context.Context, id, name string) (string, error) {
	if id == "" {
		id = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, name) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name",
		id, name,
	)
	if err != nil {
		return "", fmt.Errorf("inserting user: %w", err)
	}
	return id, nil
}

// CreateParty persists a new party and its initial membership.
func (s *SQLite) CreateParty(ctx context.Context, p *avail.Party) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Capacity <= 0 {
		p.Capacity = avail.DefaultPartyCapacity
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO parties (id, name, host_id, capacity, created_at) VALUES (?, ?, ?, ?, ?)",
		p.ID, p.Name, p.HostID, p.Capacity, p.CreatedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("inserting party: %w", err)
	}

	for _, member := range p.Members {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO party_members (party_id, user_id) VALUES (?, ?)",
			p.ID, member,
		); err != nil {
			return fmt.Errorf("inserting member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing party: %w", err)
	}

	return nil
}

// GetParty retrieves a party and its members by ID.
func (s *SQLite) GetParty(ctx context.Context, partyID string) (*avail.Party, error) {
	var (
		p         avail.Party
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, host_id, capacity, created_at FROM parties WHERE id = ?",
		partyID,
	).Scan(&p.ID, &p.Name, &p.HostID, &p.Capacity, &createdAt)
	if err == sql.ErrNoRows {
		return nil, avail.ErrPartyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying party: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}

	p.Members, err = s.PartyMembers(ctx, partyID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// PartyMembers returns the member user IDs of a party, ordered by join order.
func (s *SQLite) PartyMembers(ctx context.Context, partyID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM party_members WHERE party_id = ? ORDER BY rowid",
		partyID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying members: %v", avail.ErrStoreUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var members []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating members: %v", avail.ErrStoreUnavailable, err)
	}

	return members, nil
}

// AddMember adds a user to a party, enforcing capacity and uniqueness.
func (s *SQLite) AddMember(ctx context.Context, partyID, userID string) error {
	p, err := s.GetParty(ctx, partyID)
	if err != nil {
		return err
	}
	if p.HasMember(userID) {
		return avail.ErrAlreadyMember
	}
	if len(p.Members) >= p.Capacity {
		return avail.ErrPartyFull
	}

	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO party_members (party_id, user_id) VALUES (?, ?)",
		partyID, userID,
	); err != nil {
		return fmt.Errorf("inserting member: %w", err)
	}

	return nil
}

// ListParties returns every party the user belongs to, oldest first.
func (s *SQLite) ListParties(ctx context.Context, userID string) ([]*avail.Party, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id
		FROM parties p
		JOIN party_members m ON m.party_id = p.id
		WHERE m.user_id = ?
		ORDER BY p.created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying parties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning party id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parties: %w", err)
	}

	var parties []*avail.Party
	for _, id := range ids {
		p, err := s.GetParty(ctx, id)
		if err != nil {
			return nil, err
		}
		parties = append(parties, p)
	}

	return parties, nil
}
