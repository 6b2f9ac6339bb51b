// Package errs holds the failure taxonomy of an optimization run. Every
// error that aborts a run is one of the four types below, so callers can
// tell the failing stage apart with errors.As.
package errs

import "fmt"

// DataLoadError reports that the dataset could not be resolved or parsed.
type DataLoadError struct {
	Dataset string
	Version int
	Err     error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("data load %s (version %d): %v", e.Dataset, e.Version, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// ConfigurationError reports an invalid run setting or precondition.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Field, e.Message)
}

// Configf builds a ConfigurationError with a formatted message.
func Configf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// FitError reports that the classifier rejected a configuration or failed
// to converge. Partition and Trial are 0-indexed.
type FitError struct {
	Partition int
	Trial     int
	Config    string
	Err       error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("fit partition %d trial %d %s: %v", e.Partition+1, e.Trial+1, e.Config, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }

// ExportError reports that a report artifact could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
