// Package pdf renders HTML documents to PDF with headless Chrome and counts
// pages in rendered output.
package pdf

import "fmt"

// ConfigError indicates a missing rendering capability (no usable Chrome or
// Chromium). Unlike operational render errors it is fatal: generation cannot
// proceed without it.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf configuration error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
