// SQLite-backed seed storage. Written once by SeedKankaChaos, read back
// for reproducible perturbation replay.
package chaos

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection holding the chaos seed data.
type Store struct {
	conn *sqlx.DB
}

// OpenStore opens or creates the seed database at the given path.
func OpenStore(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open chaos store: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate chaos store: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS chaos_events (
		id TEXT PRIMARY KEY,
		astro_day INTEGER NOT NULL,
		magnitude INTEGER NOT NULL,
		kind TEXT NOT NULL,
		direction TEXT NOT NULL,
		duration_days INTEGER NOT NULL,
		note TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS chaos_days (
		event_id TEXT NOT NULL,
		astro_day INTEGER NOT NULL,
		event_day INTEGER NOT NULL,
		offset REAL NOT NULL,
		phase TEXT NOT NULL,
		faces TEXT NOT NULL,
		PRIMARY KEY (event_id, astro_day)
	);

	CREATE TABLE IF NOT EXISTS chaos_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_chaos_events_day ON chaos_events(astro_day);
	CREATE INDEX IF NOT EXISTS idx_chaos_days_day ON chaos_days(astro_day);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// ReplaceSeed writes a full seed dataset, replacing any prior one.
func (s *Store) ReplaceSeed(seed int64, events []Event, perturbations map[string][]DayPerturbation) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM chaos_events"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM chaos_days"); err != nil {
		return err
	}

	evStmt, err := tx.Preparex(`INSERT INTO chaos_events
		(id, astro_day, magnitude, kind, direction, duration_days, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer evStmt.Close()

	dayStmt, err := tx.Preparex(`INSERT INTO chaos_days
		(event_id, astro_day, event_day, offset, phase, faces)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer dayStmt.Close()

	for _, ev := range events {
		if _, err := evStmt.Exec(ev.ID, ev.AstroDay, ev.Magnitude, ev.Kind,
			ev.Direction, ev.DurationDays, ev.Note); err != nil {
			return fmt.Errorf("insert chaos event day %d: %w", ev.AstroDay, err)
		}
		for _, d := range perturbations[ev.ID] {
			if _, err := dayStmt.Exec(ev.ID, d.AstroDay, d.EventDay,
				d.Offset, d.Phase, d.Faces); err != nil {
				return fmt.Errorf("insert chaos day %d: %w", d.AstroDay, err)
			}
		}
	}

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO chaos_meta (key, value) VALUES ('seed', ?)",
		strconv.FormatInt(seed, 10),
	); err != nil {
		return err
	}

	return tx.Commit()
}

// Seed returns the seed the current dataset was generated from, or zero
// when the store has never been seeded.
func (s *Store) Seed() (int64, error) {
	var value string
	err := s.conn.Get(&value, "SELECT value FROM chaos_meta WHERE key = 'seed'")
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// Events returns all chaos events in day order.
func (s *Store) Events() ([]Event, error) {
	var events []Event
	err := s.conn.Select(&events,
		"SELECT id, astro_day, magnitude, kind, direction, duration_days, note FROM chaos_events ORDER BY astro_day")
	return events, err
}

// PerturbationForDay returns the anomalous Kanka reading for an astro
// day, or ok=false when the day is undisturbed.
func (s *Store) PerturbationForDay(astroDay int) (DayPerturbation, bool, error) {
	var d DayPerturbation
	err := s.conn.Get(&d,
		"SELECT astro_day, event_day, offset, phase, faces FROM chaos_days WHERE astro_day = ?",
		astroDay)
	if errors.Is(err, sql.ErrNoRows) {
		return DayPerturbation{}, false, nil
	}
	if err != nil {
		return DayPerturbation{}, false, err
	}
	return d, true, nil
}
