//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// ConfigurationError represents a structural problem with a request or a
// configuration artifact: an invalid weight vector, an unknown enum value, or
// a malformed request shape. It is the only error kind that crosses the
// engine boundary; computational degradation is represented as data instead.
type ConfigurationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	msg := "configuration error"
	if e.Field != "" {
		msg = fmt.Sprintf("%s in %s", msg, e.Field)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
