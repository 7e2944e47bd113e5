package types

import "fmt"

// EnumerationError is returned when the target directory cannot be listed.
// It aborts the whole run.
type EnumerationError struct {
	Dir string
	Err error
}

func (e EnumerationError) Error() string {
	return fmt.Sprintf("failed to enumerate %s: %v", e.Dir, e.Err)
}

func (e EnumerationError) Unwrap() error { return e.Err }

// RenameError is returned when a single rename fails. The run continues
// with the remaining files.
type RenameError struct {
	From string
	To   string
	Err  error
}

func (e RenameError) Error() string {
	return fmt.Sprintf("failed to rename %s to %s: %v", e.From, e.To, e.Err)
}

func (e RenameError) Unwrap() error { return e.Err }

// ConfigError wraps failures reading or decoding a config file.
type ConfigError struct {
	Path string
	Err  error
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e ConfigError) Unwrap() error { return e.Err }
