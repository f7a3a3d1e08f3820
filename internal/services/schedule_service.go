package services

import (
	"taskshell/internal/logger"
	"taskshell/internal/model"
	"taskshell/internal/schedule"
)

// ScheduleService owns the in-memory schedule and its undo history.
type ScheduleService struct {
	maxStates int
	schedule  *schedule.Schedule
}

// NewScheduleService creates a service whose history keeps maxStates states.
func NewScheduleService(maxStates int) *ScheduleService {
	return &ScheduleService{maxStates: maxStates}
}

// Name returns the service name "schedule" for registration.
func (s *ScheduleService) Name() string {
	return ScheduleServiceName
}

// Initialize creates an empty schedule unless one is already present.
func (s *ScheduleService) Initialize() error {
	if s.schedule == nil {
		s.schedule = schedule.New(s.maxStates)
	}
	return nil
}

// Schedule returns the live schedule, creating it on first use.
func (s *ScheduleService) Schedule() *schedule.Schedule {
	if s.schedule == nil {
		s.schedule = schedule.New(s.maxStates)
	}
	return s.schedule
}

// Replace discards the history and starts a new schedule holding tasks.
// Undo cannot go past the replaced state.
func (s *ScheduleService) Replace(tasks []*model.Task) {
	s.schedule = schedule.FromTasks(s.maxStates, tasks)
	logger.ServiceOperation(ScheduleServiceName, "replace", "tasks", len(tasks))
}
