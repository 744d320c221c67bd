package cli

import (
	"errors"
	"fmt"
)

// Process exit codes. A configuration that fails validation exits with
// ExitInvalid so CI pipelines can tell "bad config" from "bad
// invocation".
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

// ConfigError represents a problem with a configuration file itself:
// it cannot be read, written, or understood.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Path, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationFailedError reports that a configuration was checked and
// found invalid. It carries the finding counts for the exit message.
type ValidationFailedError struct {
	Errors   int
	Warnings int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d error(s), %d warning(s)", e.Errors, e.Warnings)
}

// ExitCode marks validation failure as distinct from usage errors.
func (e *ValidationFailedError) ExitCode() int {
	return ExitInvalid
}

// NewConfigError creates a new ConfigError.
func NewConfigError(path, message string) *ConfigError {
	return &ConfigError{
		Path:    path,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ExitCode maps an error to the process exit code. A nil error is
// ExitOK; an error that carries its own code anywhere in its chain
// wins; anything else is ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return ExitUsage
}
