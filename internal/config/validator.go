package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tradewatch/sentinel/internal/tmux"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "supervisor.grace_period_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"DEBUG", "INFO", "WARN", "ERROR"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSession()...)
	errors = append(errors, c.validateMonitor()...)
	errors = append(errors, c.validateSupervisor()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateSession() []ValidationError {
	var errors []ValidationError

	// Session, socket, and window names all end up as tmux targets, so
	// they share the session-name rules.
	for field, value := range map[string]string{
		"session.name":           c.Session.Name,
		"session.socket":         c.Session.Socket,
		"session.monitor_window": c.Session.MonitorWindow,
		"session.logs_window":    c.Session.LogsWindow,
	} {
		if err := tmux.ValidateSessionName(value); err != nil {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   value,
				Message: "must contain only letters, digits, hyphens, and underscores",
			})
		}
	}

	if c.Session.MonitorWindow == c.Session.LogsWindow {
		errors = append(errors, ValidationError{
			Field:   "session.logs_window",
			Value:   c.Session.LogsWindow,
			Message: "must differ from session.monitor_window",
		})
	}

	return errors
}

func (c *Config) validateMonitor() []ValidationError {
	var errors []ValidationError

	if len(c.Monitor.Command) == 0 {
		errors = append(errors, ValidationError{
			Field:   "monitor.command",
			Value:   c.Monitor.Command,
			Message: "must name the monitor launch command",
		})
	}

	return errors
}

func (c *Config) validateSupervisor() []ValidationError {
	var errors []ValidationError

	// The contract requires at least one second of grace before escalating
	// to a forced kill.
	if c.Supervisor.GracePeriodSeconds < 1 {
		errors = append(errors, ValidationError{
			Field:   "supervisor.grace_period_seconds",
			Value:   c.Supervisor.GracePeriodSeconds,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
