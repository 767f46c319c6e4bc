package sorter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMethod is matched by errors.Is for every *InvalidMethodError.
var ErrInvalidMethod = errors.New("invalid sort method")

// InvalidMethodError is returned when a method name does not identify one of
// the supported algorithms.
type InvalidMethodError struct {
	// Method is the rejected name after lowercasing
	Method string
	// Valid lists the accepted method names
	Valid []string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("unknown sort method: %q, use one of: %s", e.Method, strings.Join(e.Valid, ", "))
}

// Is allows errors.Is(err, ErrInvalidMethod)
func (e *InvalidMethodError) Is(target error) bool {
	return target == ErrInvalidMethod
}

// NewInvalidMethodError creates an InvalidMethodError listing all valid methods
func NewInvalidMethodError(method string) error {
	return &InvalidMethodError{Method: method, Valid: Methods()}
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %v", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Reason
}
