package services

import (
	"fmt"

	"taskshell/internal/config"
)

// ConfigurationService exposes the loaded configuration to commands.
type ConfigurationService struct {
	cfg         *config.Config
	initialized bool
}

// NewConfigurationService creates a ConfigurationService for cfg.
func NewConfigurationService(cfg *config.Config) *ConfigurationService {
	return &ConfigurationService{cfg: cfg}
}

// Name returns the service name "configuration" for registration.
func (c *ConfigurationService) Name() string {
	return ConfigurationServiceName
}

// Initialize validates the configuration once.
func (c *ConfigurationService) Initialize() error {
	if c.initialized {
		return nil
	}
	if c.cfg == nil {
		return fmt.Errorf("no configuration loaded")
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Config returns the configuration.
func (c *ConfigurationService) Config() *config.Config {
	return c.cfg
}

// Autosave reports whether exit should save the schedule.
func (c *ConfigurationService) Autosave() bool {
	return c.cfg != nil && c.cfg.Exit.Autosave
}
