package services

import (
	"fmt"
	"path/filepath"

	"taskshell/internal/logger"
	"taskshell/internal/model"
	"taskshell/internal/storage"
)

// StorageService reads and writes the schedule file through a storage backend.
type StorageService struct {
	backend string
	path    string
	store   storage.Store
}

// NewStorageService creates a service for the schedule file at path.
func NewStorageService(backend, path string) *StorageService {
	return &StorageService{backend: backend, path: path}
}

// Name returns the service name "storage" for registration.
func (s *StorageService) Name() string {
	return StorageServiceName
}

// Initialize opens the configured backend.
func (s *StorageService) Initialize() error {
	if s.store != nil {
		return nil
	}
	store, err := storage.Open(s.backend, s.path)
	if err != nil {
		return err
	}
	s.store = store
	return nil
}

// Path returns the current schedule file.
func (s *StorageService) Path() string {
	return s.path
}

// Exists reports whether the current schedule file exists.
func (s *StorageService) Exists() bool {
	return s.store != nil && s.store.HasScheduleFile()
}

// ExistsAt reports whether a schedule file exists at path.
func (s *StorageService) ExistsAt(path string) bool {
	store, err := storage.Open(s.backend, path)
	if err != nil {
		return false
	}
	defer func() { _ = store.Close() }()
	return store.HasScheduleFile()
}

// SamePath reports whether path names the current schedule file.
func (s *StorageService) SamePath(path string) bool {
	a, errA := filepath.Abs(path)
	b, errB := filepath.Abs(s.path)
	return errA == nil && errB == nil && a == b
}

// Load reads the current schedule file.
func (s *StorageService) Load() ([]*model.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage is not initialized")
	}
	return s.store.Load()
}

// Save writes tasks to the current schedule file.
func (s *StorageService) Save(tasks []*model.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage is not initialized")
	}
	return s.store.Save(tasks)
}

// SaveAs writes tasks to path and makes it the current schedule file.
func (s *StorageService) SaveAs(path string, tasks []*model.Task) error {
	store, err := storage.Open(s.backend, path)
	if err != nil {
		return err
	}
	if err := store.Save(tasks); err != nil {
		_ = store.Close()
		return err
	}
	s.switchTo(path, store)
	return nil
}

// LoadFrom reads path and makes it the current schedule file.
func (s *StorageService) LoadFrom(path string) ([]*model.Task, error) {
	store, err := storage.Open(s.backend, path)
	if err != nil {
		return nil, err
	}
	if !store.HasScheduleFile() {
		_ = store.Close()
		return nil, fmt.Errorf("no schedule file at %s", path)
	}
	tasks, err := store.Load()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	s.switchTo(path, store)
	return tasks, nil
}

// Close releases the current backend.
func (s *StorageService) Close() error {
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}

func (s *StorageService) switchTo(path string, store storage.Store) {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			logger.Warn("Failed to close previous schedule store", "path", s.path, "error", err)
		}
	}
	logger.ServiceOperation(StorageServiceName, "switch", "from", s.path, "to", path)
	s.path = path
	s.store = store
}
