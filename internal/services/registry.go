// Package services provides the long-lived collaborators commands work with:
// the schedule, the storage backend, the time parser and the configuration.
package services

import (
	"fmt"
	"sync"

	"taskshell/internal/logger"
	"taskshell/pkg/tasktypes"
)

// Service names used for registration and lookup.
const (
	ScheduleServiceName      = "schedule"
	StorageServiceName       = "storage"
	TimeServiceName          = "time"
	ConfigurationServiceName = "configuration"
)

// Registry manages service registration and lifecycle for taskshell services.
type Registry struct {
	mu       sync.RWMutex
	services map[string]tasktypes.Service
	order    []string
}

// NewRegistry creates a new service registry with an empty service map.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]tasktypes.Service),
	}
}

// RegisterService adds a service to the registry, returning an error if already registered.
func (r *Registry) RegisterService(service tasktypes.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := service.Name()
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %s already registered", name)
	}

	r.services[name] = service
	r.order = append(r.order, name)
	return nil
}

// GetService retrieves a service by name, returning an error if not found.
func (r *Registry) GetService(name string) (tasktypes.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, exists := r.services[name]
	if !exists {
		return nil, fmt.Errorf("service %s not found", name)
	}

	return service, nil
}

// InitializeAll initializes all registered services in registration order.
func (r *Registry) InitializeAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if err := r.services[name].Initialize(); err != nil {
			return fmt.Errorf("failed to initialize service %s: %w", name, err)
		}
		logger.ServiceOperation(name, "initialize")
	}

	return nil
}

// GetAllServices returns a copy of all registered services.
func (r *Registry) GetAllServices() map[string]tasktypes.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]tasktypes.Service, len(r.services))
	for name, service := range r.services {
		result[name] = service
	}

	return result
}

// GlobalRegistry is the global service registry instance used throughout taskshell.
var GlobalRegistry = NewRegistry()

// globalRegistryMu protects access to the GlobalRegistry variable itself
var globalRegistryMu sync.RWMutex

// GetGlobalRegistry returns the global service registry instance in a thread-safe manner
func GetGlobalRegistry() *Registry {
	globalRegistryMu.RLock()
	defer globalRegistryMu.RUnlock()
	return GlobalRegistry
}

// SetGlobalRegistry sets the global service registry instance in a thread-safe manner
func SetGlobalRegistry(registry *Registry) {
	globalRegistryMu.Lock()
	defer globalRegistryMu.Unlock()
	GlobalRegistry = registry
}

func lookup[T tasktypes.Service](name string) (T, error) {
	var zero T
	service, err := GetGlobalRegistry().GetService(name)
	if err != nil {
		return zero, err
	}
	typed, ok := service.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has unexpected type %T", name, service)
	}
	return typed, nil
}

// GetScheduleService returns the registered schedule service.
func GetScheduleService() (*ScheduleService, error) {
	return lookup[*ScheduleService](ScheduleServiceName)
}

// GetStorageService returns the registered storage service.
func GetStorageService() (*StorageService, error) {
	return lookup[*StorageService](StorageServiceName)
}

// GetTimeService returns the registered time service.
func GetTimeService() (*TimeService, error) {
	return lookup[*TimeService](TimeServiceName)
}

// GetConfigurationService returns the registered configuration service.
func GetConfigurationService() (*ConfigurationService, error) {
	return lookup[*ConfigurationService](ConfigurationServiceName)
}
