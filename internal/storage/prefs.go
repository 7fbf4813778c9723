// Package storage persists control-panel preferences between launches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only host settings live here; no score or game state is stored.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Prefs is the saved control-panel state, re-applied as events on the next
// launch.
type Prefs struct {
	Slider    float64 // raw difficulty slider value (0-20)
	Breakout  bool
	Music     bool
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
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

// migrate creates the schema if it doesn't exist. The prefs table is a
// single row keyed at id 1.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS prefs (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			slider REAL NOT NULL,
			breakout INTEGER NOT NULL DEFAULT 0,
			music INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// Load returns the saved preferences. ok is false when nothing has been
// saved yet.
func (s *Store) Load() (p Prefs, ok bool, err error) {
	var breakout, music int
	var updatedAt any

	scanErr := s.db.QueryRow(
		"SELECT slider, breakout, music, updated_at FROM prefs WHERE id = 1",
	).Scan(&p.Slider, &breakout, &music, &updatedAt)

	if scanErr == sql.ErrNoRows {
		return Prefs{}, false, nil
	}
	if scanErr != nil {
		return Prefs{}, false, fmt.Errorf("storage: cannot load prefs: %w", scanErr)
	}

	p.Breakout = breakout != 0
	p.Music = music != 0

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		p.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			p.UpdatedAt = parsed
		}
	}

	return p, true, nil
}

// Save upserts the single preferences row.
func (s *Store) Save(p Prefs) error {
	breakout := 0
	if p.Breakout {
		breakout = 1
	}
	music := 0
	if p.Music {
		music = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO prefs (id, slider, breakout, music, updated_at)
		 VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   slider = excluded.slider,
		   breakout = excluded.breakout,
		   music = excluded.music,
		   updated_at = CURRENT_TIMESTAMP`,
		p.Slider, breakout, music,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save prefs: %w", err)
	}
	return nil
}

// Reset deletes the saved preferences.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM prefs WHERE id = 1"); err != nil {
		return fmt.Errorf("storage: cannot reset prefs: %w", err)
	}
	return nil
}
