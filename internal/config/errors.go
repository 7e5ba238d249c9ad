package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxPages is returned when the crawl visit cap is not
	// positive. A cap of zero would mean the crawl fetches nothing.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be positive")

	// ErrInvalidConcurrency is returned when the worker count is not
	// positive. Zero workers would mean no processing at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidPerPage is returned when the listing page size is not
	// positive.
	ErrInvalidPerPage = errors.New("invalid per page: must be positive")

	// ErrConflictingOutputFormats is returned when more than one of --csv,
	// --json and --markdown is specified. Only one output format can be
	// used at a time.
	ErrConflictingOutputFormats = errors.New("conflicting output formats: choose one of --csv, --json, --markdown")
)
