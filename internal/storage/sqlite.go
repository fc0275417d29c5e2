// Package storage persists player profiles in SQLite: the last selected
// character and the characters the player has unlocked. No scores are kept.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "default"

// Store manages the SQLite database connection for profile persistence.
type Store struct {
	db *sql.DB
}

// Profile is the saved state of one player.
type Profile struct {
	Name              string
	SelectedCharacter string // Empty if nothing was saved yet
	Unlocked          []string
	UpdatedAt         time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			selected_character TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS unlocks (
			profile TEXT NOT NULL,
			character_id TEXT NOT NULL,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, character_id)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadProfile returns the saved profile. A profile that was never saved is
// returned empty, not as an error.
func (s *Store) LoadProfile(name string) (Profile, error) {
	p := Profile{Name: profileName(name)}

	var updatedAt any
	err := s.db.QueryRow(
		"SELECT selected_character, updated_at FROM profiles WHERE name = ?",
		p.Name,
	).Scan(&p.SelectedCharacter, &updatedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("storage: cannot query profile: %w", err)
	}
	if err == nil {
		p.UpdatedAt = parseTime(updatedAt)
	}

	unlocked, err := s.Unlocked(p.Name)
	if err != nil {
		return Profile{}, err
	}
	p.Unlocked = unlocked

	return p, nil
}

// SaveSelection records the selected character for a profile.
func (s *Store) SaveSelection(name, characterID string) error {
	_, err := s.db.Exec(
		`INSERT INTO profiles (name, selected_character, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   selected_character = excluded.selected_character,
		   updated_at = excluded.updated_at`,
		profileName(name), characterID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save selection: %w", err)
	}
	return nil
}

// Unlock marks a character as unlocked for a profile.
// Returns false if it was already unlocked.
func (s *Store) Unlock(name, characterID string) (bool, error) {
	res, err := s.db.Exec(
		"INSERT OR IGNORE INTO unlocks (profile, character_id) VALUES (?, ?)",
		profileName(name), characterID,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot unlock %q: %w", characterID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// Unlocked returns the character ids unlocked for a profile, oldest first.
func (s *Store) Unlocked(name string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT character_id FROM unlocks
		 WHERE profile = ?
		 ORDER BY unlocked_at, rowid`,
		profileName(name),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query unlocks: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ids, nil
}

func profileName(name string) string {
	if name == "" {
		return DefaultProfile
	}
	return name
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
