// Package source provides access to the remote component repository.
//
// The repository is treated as an opaque tree service: list a directory,
// fetch a file's raw content. The production implementation talks to the
// GitHub contents API; tests substitute an in-memory Source.
package source

import (
	"context"
	"fmt"
)

// Entry is one item from a directory listing.
type Entry struct {
	// Name is the entry's base name.
	Name string

	// Path is the repository-relative path, which doubles as the
	// content-fetch locator.
	Path string

	// Size is the file size in bytes. Zero for directories.
	Size int64

	// IsDir reports whether the entry is a directory.
	IsDir bool

	// SourceURL is the human-facing URL for the entry, if known.
	SourceURL string
}

// Source lists directories and fetches raw file content from the remote
// repository.
type Source interface {
	// ListDirectory returns the entries directly under path.
	ListDirectory(ctx context.Context, path string) ([]Entry, error)

	// FetchContent returns the full text of the file at path.
	FetchContent(ctx context.Context, path string) (string, error)
}

// FetchError is a transient failure loading one path. The crawler logs it
// and continues; it never aborts a crawl.
type FetchError struct {
	// Op is "list" or "fetch".
	Op string

	// Path is the repository path that failed.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}
