package iban

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument is returned when a required configuration value is missing.
	ErrNilArgument = errors.New("iban: required argument is nil")
	// ErrInvalidArgument is returned when a configuration value is present but unusable.
	ErrInvalidArgument = errors.New("iban: invalid argument")
	// ErrUnsupportedOperation is returned by every write attempted through a read-only view.
	ErrUnsupportedOperation = errors.New("iban: unsupported operation")
)

// ConfigError reports a construction-time configuration problem.
// It unwraps to ErrNilArgument or ErrInvalidArgument.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func nilArgument(field string) error {
	return &ConfigError{Field: field, Reason: "must not be nil", Err: ErrNilArgument}
}

func invalidArgument(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...), Err: ErrInvalidArgument}
}

// ParseError is returned by Parse when a value is not a valid IBAN.
// The full validation result is kept so callers can branch on the outcome.
type ParseError struct {
	Result Result
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("iban: cannot parse %q: %s", e.Result.Value, e.Result.Outcome)
}
