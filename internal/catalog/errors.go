package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError reports an unknown component or category name. It is
// non-fatal and carries up to MaxSuggestions near-miss names so the
// caller can self-correct.
type NotFoundError struct {
	// Kind is "component" or "category".
	Kind string

	// Name is the name that was requested.
	Name string

	// Suggestions are near-miss names, capped at MaxSuggestions.
	Suggestions []string
}

// MaxSuggestions caps the suggestion list on a NotFoundError.
const MaxSuggestions = 5

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s %q not found, did you mean: %s", e.Kind, e.Name, strings.Join(e.Suggestions, ", "))
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// RefreshError reports a failed recrawl. The previous snapshot, stale
// or not, remains authoritative; the process keeps running.
type RefreshError struct {
	Err error
}

// Error implements the error interface.
func (e *RefreshError) Error() string {
	return fmt.Sprintf("registry refresh failed: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *RefreshError) Unwrap() error {
	return e.Err
}
