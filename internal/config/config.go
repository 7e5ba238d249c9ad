package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout is the HTTP client timeout for each request.
	// Without one, a single hung endpoint stalls a worker forever.
	// 30 seconds is generous for organization websites while still
	// guaranteeing forward progress.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxPages is the maximum number of pages fetched per site crawl.
	// Deep traversal proved too slow across thousands of organizations, so
	// the crawl is bounded to the seed page. The bound is configuration, not
	// logic: raise it via --max-pages to crawl deeper.
	DefaultMaxPages = 1

	// DefaultConcurrency is the number of organizations processed in
	// parallel. Organizations are independent, and each crawl spends most of
	// its time waiting on remote servers, so a high fan-out is safe.
	DefaultConcurrency = 100

	// DefaultUserAgent identifies orgscan in HTTP requests.
	// A descriptive User-Agent lets site operators identify the traffic.
	DefaultUserAgent = "orgscan/1.0 (+https://github.com/orgscan/orgscan)"

	// DefaultAcceptLanguage is sent with every HTML request. The follower
	// patterns match English page text, so we ask for the English variant.
	DefaultAcceptLanguage = "en-US,en;q=0.5"

	// DefaultMaxBodySize limits the response body size to read.
	// 5MB is sufficient for HTML pages while preventing memory exhaustion
	// from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultListingURL is the upstream organization listing endpoint.
	DefaultListingURL = "http://dop.edu.ru/organization/list"

	// DefaultPerPage is the page size requested from the listing endpoint.
	// Large enough to fetch the whole list in one request in practice.
	DefaultPerPage = 5000

	// DefaultOrientation filters the listing to technical and natural
	// science organizations.
	DefaultOrientation = "3,6"

	// AppName is the application name used for XDG directory paths.
	AppName = "orgscan"
)

// Config holds all configuration options for orgscan.
// This struct is designed to be populated from CLI flags and an optional
// config file, then passed through the application via dependency injection.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Timeout is the HTTP timeout for each request.
	Timeout time.Duration

	// MaxPages is the visit cap per site crawl (the crawl fetches at most
	// this many pages regardless of how many same-site links it discovers).
	MaxPages int

	// Concurrency is the number of organizations processed in parallel.
	Concurrency int

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// AcceptLanguage is the Accept-Language header sent with HTML requests.
	AcceptLanguage string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated. 0 means the default.
	MaxBodySize int64

	// ListingURL is the upstream organization listing endpoint.
	ListingURL string

	// PerPage is the page size requested from the listing endpoint.
	PerPage int

	// Orientation is the listing orientation filter. Empty disables the
	// filter.
	Orientation string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// CSVOutput enables CSV output (the default batch export format).
	// Mutually exclusive with JSONOutput and MarkdownOutput.
	CSVOutput bool

	// JSONOutput enables JSON output instead of CSV.
	JSONOutput bool

	// MarkdownOutput enables Markdown output instead of CSV.
	MarkdownOutput bool

	// OutputFile is the export destination path. Empty means stdout.
	OutputFile string

	// DBDir is the directory path for the SQLite results database.
	// When set, enriched records are also saved there.
	// When empty, results are not persisted.
	DBDir string

	// SaveToDB indicates whether to save enriched records to the database.
	// This is automatically set to true when DBDir is configured.
	SaveToDB bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .orgscan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// Sites are the site URLs to process when scanning explicit sites
	// rather than the upstream listing.
	Sites []string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (timeout, page size,
// concurrency). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:        DefaultTimeout,
		MaxPages:       DefaultMaxPages,
		Concurrency:    DefaultConcurrency,
		UserAgent:      DefaultUserAgent,
		AcceptLanguage: DefaultAcceptLanguage,
		MaxBodySize:    DefaultMaxBodySize,
		ListingURL:     DefaultListingURL,
		PerPage:        DefaultPerPage,
		Orientation:    DefaultOrientation,
	}
}

// XDGDataDir returns the XDG data directory for orgscan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/orgscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for orgscan.
// On Linux: ~/.config/orgscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any processing begins.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.PerPage <= 0 {
		return ErrInvalidPerPage
	}

	// Output formats are mutually exclusive
	formats := 0
	for _, enabled := range []bool{c.CSVOutput, c.JSONOutput, c.MarkdownOutput} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingOutputFormats
	}

	return nil
}
