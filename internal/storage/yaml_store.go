package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"taskshell/internal/logger"
	"taskshell/internal/model"
)

const scheduleFileVersion = 1

type scheduleDocument struct {
	Version int          `yaml:"version"`
	Tasks   []taskRecord `yaml:"tasks"`
}

// YAMLStore keeps the task list in a single YAML document.
type YAMLStore struct {
	path string
}

// NewYAMLStore creates a store for path. The file is not touched until Save.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

// Path returns the document path.
func (s *YAMLStore) Path() string { return s.path }

// HasScheduleFile reports whether the document exists.
func (s *YAMLStore) HasScheduleFile() bool { return fileExists(s.path) }

// Close is a no-op.
func (s *YAMLStore) Close() error { return nil }

// Load reads and validates every task in the document.
func (s *YAMLStore) Load() ([]*model.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}

	var doc scheduleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schedule file %s: %w", s.path, err)
	}
	if doc.Version > scheduleFileVersion {
		return nil, fmt.Errorf("schedule file %s has unsupported version %d", s.path, doc.Version)
	}

	tasks := make([]*model.Task, 0, len(doc.Tasks))
	for i, rec := range doc.Tasks {
		t, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("task %d in %s: %w", i+1, s.path, err)
		}
		tasks = append(tasks, t)
	}
	logger.ServiceOperation("storage", "load", "backend", BackendYAML, "tasks", len(tasks))
	return tasks, nil
}

// Save writes tasks to a temporary file and renames it over the document.
func (s *YAMLStore) Save(tasks []*model.Task) error {
	doc := scheduleDocument{Version: scheduleFileVersion, Tasks: make([]taskRecord, 0, len(tasks))}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, toRecord(t))
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".schedule-*.yaml")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write schedule: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace schedule file: %w", err)
	}

	logger.ServiceOperation("storage", "save", "backend", BackendYAML, "tasks", len(tasks))
	return nil
}
