package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    session    TEXT NOT NULL DEFAULT '',
    action     TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS events_name ON events (name, id);
`

const timeLayout = "2006-01-02 15:04:05"

// Action is what happened to a command's window.
type Action string

const (
	Started Action = "start"
	Stopped Action = "stop" // SIGTERM sent
	Killed  Action = "kill" // window destroyed
)

// Store wraps a SQLite database recording start/stop history.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at dir/state.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "state.db"))
	if err != nil {
		return nil, err
	}

	// WAL mode for safe concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends an event for the named command.
func (s *Store) Record(name, session string, action Action) error {
	_, err := s.db.Exec(
		"INSERT INTO events (name, session, action) VALUES (?, ?, ?)",
		name, session, string(action))
	return err
}

// Event is one history row.
type Event struct {
	Name    string
	Session string
	Action  Action
	At      time.Time
}

// Recent returns the newest events first. An empty name matches every command.
func (s *Store) Recent(name string, limit int) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT name, session, action, created_at
		FROM events
		WHERE ? = '' OR name = ?
		ORDER BY id DESC
		LIMIT ?
	`, name, name, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Event
	for rows.Next() {
		var ev Event
		var action, at string
		if err := rows.Scan(&ev.Name, &ev.Session, &action, &at); err != nil {
			return nil, err
		}
		ev.Action = Action(action)
		ev.At = parseTime(at)
		result = append(result, ev)
	}
	return result, rows.Err()
}

// LastStarted returns the most recent start time per command name.
func (s *Store) LastStarted() (map[string]time.Time, error) {
	rows, err := s.db.Query(
		"SELECT name, MAX(created_at) FROM events WHERE action = ? GROUP BY name",
		string(Started))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var name, at string
		if err := rows.Scan(&name, &at); err != nil {
			return nil, err
		}
		result[name] = parseTime(at)
	}
	return result, rows.Err()
}

// parseTime accepts both the plain SQLite layout and RFC 3339, since the
// driver may hand back either for TIMESTAMP columns.
func parseTime(s string) time.Time {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
