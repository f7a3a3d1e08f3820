// Package storage persists the current task list. Two backends are available:
// a YAML document and a SQLite database. The schedule history is never saved;
// loading always starts a fresh undo stack.
package storage

import (
	"fmt"
	"os"
	"strings"
	"time"

	"taskshell/internal/model"
)

// Store is the storage collaborator used by the save and load commands.
type Store interface {
	// Path returns the file the store reads and writes.
	Path() string
	// HasScheduleFile reports whether the file exists.
	HasScheduleFile() bool
	// Load reads every task from the file.
	Load() ([]*model.Task, error)
	// Save replaces the file contents with tasks.
	Save(tasks []*model.Task) error
	// Close releases any handle held by the store.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend at path.
func Open(backend, path string) (Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	switch strings.ToLower(backend) {
	case "", BackendYAML:
		return NewYAMLStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (use %s or %s)", backend, BackendYAML, BackendSQLite)
	}
}

// taskRecord is the persisted form of a task.
type taskRecord struct {
	Name      string           `yaml:"name"`
	Start     *time.Time       `yaml:"start,omitempty"`
	End       *time.Time       `yaml:"end,omitempty"`
	Done      bool             `yaml:"done,omitempty"`
	Tags      []string         `yaml:"tags,omitempty"`
	Reminders []reminderRecord `yaml:"reminders,omitempty"`
}

type reminderRecord struct {
	Note string    `yaml:"note"`
	At   time.Time `yaml:"at"`
}

func toRecord(t *model.Task) taskRecord {
	rec := taskRecord{
		Name:  t.Name,
		Start: t.Start,
		End:   t.End,
		Done:  t.Done,
		Tags:  t.Tags,
	}
	for _, r := range t.Reminders {
		rec.Reminders = append(rec.Reminders, reminderRecord{Note: r.Note, At: r.At})
	}
	return rec
}

// fromRecord validates a record with the same rules as a newly added task.
func fromRecord(rec taskRecord) (*model.Task, error) {
	t, err := model.NewTask(rec.Name, rec.Start, rec.End, rec.Tags)
	if err != nil {
		return nil, err
	}
	reminders := make([]model.Reminder, 0, len(rec.Reminders))
	for _, r := range rec.Reminders {
		rem, err := model.NewReminder(r.Note, r.At)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return t.WithDone(rec.Done).WithReminders(reminders), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
