package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskshell/internal/logger"
	"taskshell/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the task list in a SQLite database. The database is opened
// lazily so HasScheduleFile can be asked before the file is created.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore creates a store for the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Path returns the database path.
func (s *SQLiteStore) Path() string { return s.path }

// HasScheduleFile reports whether the database file exists.
func (s *SQLiteStore) HasScheduleFile() bool { return fileExists(s.path) }

// Close closes the database connection if one was opened.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	dsn := s.path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s.db = db
	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL,
		start_at TEXT,
		end_at   TEXT,
		done     INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS tags (
		task_id  TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		tag      TEXT NOT NULL,
		PRIMARY KEY (task_id, position)
	);

	CREATE TABLE IF NOT EXISTS reminders (
		task_id  TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		note     TEXT NOT NULL,
		at       TEXT NOT NULL,
		PRIMARY KEY (task_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position);
	`
	_, err := db.Exec(schema)
	return err
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

// Save replaces every stored task with tasks in one transaction.
func (s *SQLiteStore) Save(tasks []*model.Task) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM reminders", "DELETE FROM tags", "DELETE FROM tasks"} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clear schedule: %w", err)
		}
	}

	for pos, t := range tasks {
		id := uuid.NewString()
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, position, name, start_at, end_at, done) VALUES (?, ?, ?, ?, ?, ?)`,
			id, pos, t.Name, formatNullable(t.Start), formatNullable(t.End), boolToInt(t.Done),
		); err != nil {
			return fmt.Errorf("insert task %q: %w", t.Name, err)
		}
		for i, tag := range t.Tags {
			if _, err := tx.Exec(`INSERT INTO tags (task_id, position, tag) VALUES (?, ?, ?)`, id, i, tag); err != nil {
				return fmt.Errorf("insert tag %q: %w", tag, err)
			}
		}
		for i, r := range t.Reminders {
			if _, err := tx.Exec(
				`INSERT INTO reminders (task_id, position, note, at) VALUES (?, ?, ?, ?)`,
				id, i, r.Note, r.At.Format(time.RFC3339Nano),
			); err != nil {
				return fmt.Errorf("insert reminder %q: %w", r.Note, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	logger.ServiceOperation("storage", "save", "backend", BackendSQLite, "tasks", len(tasks))
	return nil
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

// Load reads every task in position order.
func (s *SQLiteStore) Load() ([]*model.Task, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, name, start_at, end_at, done FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	type row struct {
		id  string
		rec taskRecord
	}
	var loaded []row
	for rows.Next() {
		var (
			r          row
			start, end sql.NullString
			done       int
		)
		if err := rows.Scan(&r.id, &r.rec.Name, &start, &end, &done); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if r.rec.Start, err = parseNullable(start); err != nil {
			rows.Close()
			return nil, err
		}
		if r.rec.End, err = parseNullable(end); err != nil {
			rows.Close()
			return nil, err
		}
		r.rec.Done = done != 0
		loaded = append(loaded, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	tasks := make([]*model.Task, 0, len(loaded))
	for _, r := range loaded {
		if r.rec.Tags, err = loadTags(db, r.id); err != nil {
			return nil, err
		}
		if r.rec.Reminders, err = loadReminders(db, r.id); err != nil {
			return nil, err
		}
		t, err := fromRecord(r.rec)
		if err != nil {
			return nil, fmt.Errorf("task %q in %s: %w", r.rec.Name, s.path, err)
		}
		tasks = append(tasks, t)
	}
	logger.ServiceOperation("storage", "load", "backend", BackendSQLite, "tasks", len(tasks))
	return tasks, nil
}

func loadTags(db *sql.DB, taskID string) ([]string, error) {
	rows, err := db.Query(`SELECT tag FROM tags WHERE task_id = ? ORDER BY position`, taskID)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func loadReminders(db *sql.DB, taskID string) ([]reminderRecord, error) {
	rows, err := db.Query(`SELECT note, at FROM reminders WHERE task_id = ? ORDER BY position`, taskID)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []reminderRecord
	for rows.Next() {
		var note, at string
		if err := rows.Scan(&note, &at); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("reminder %q: bad time %q: %w", note, at, err)
		}
		reminders = append(reminders, reminderRecord{Note: note, At: t})
	}
	return reminders, rows.Err()
}

func formatNullable(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}

func parseNullable(s sql.NullString) (*time.Time, error) {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, fmt.Errorf("bad stored time %q: %w", s.String, err)
	}
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
