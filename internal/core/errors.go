package core

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every setup error (errors.Is).
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports an invalid game setup. It is returned before
// any state exists and is not recoverable by the engines.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
