package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".orgscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .orgscan configuration file.
type File struct {
	// Listing configures the upstream organization listing fetch.
	Listing ListingConfig `yaml:"listing,omitempty"`

	// Crawl configures site crawling and follower extraction.
	Crawl CrawlConfig `yaml:"crawl,omitempty"`
}

// ListingConfig holds configuration for the upstream listing endpoint.
type ListingConfig struct {
	// URL is the listing endpoint.
	URL string `yaml:"url,omitempty"`

	// PerPage is the page size requested from the endpoint.
	PerPage int `yaml:"perPage,omitempty"`

	// Orientation is the listing orientation filter.
	Orientation string `yaml:"orientation,omitempty"`
}

// CrawlConfig holds per-run crawl settings.
type CrawlConfig struct {
	// MaxPages is the visit cap per site crawl.
	MaxPages int `yaml:"maxPages,omitempty"`

	// Timeout is the HTTP timeout for each request as a duration string
	// (e.g. "30s"). yaml.v3 has no native duration support, so we parse
	// it ourselves in Apply.
	Timeout string `yaml:"timeout,omitempty"`

	// Concurrency is the number of organizations processed in parallel.
	Concurrency int `yaml:"concurrency,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply merges file settings into the config. Only fields the file actually
// sets override the config; zero values leave the existing value in place.
func (cf *File) Apply(c *Config) {
	if cf.Listing.URL != "" {
		c.ListingURL = cf.Listing.URL
	}
	if cf.Listing.PerPage > 0 {
		c.PerPage = cf.Listing.PerPage
	}
	if cf.Listing.Orientation != "" {
		c.Orientation = cf.Listing.Orientation
	}
	if cf.Crawl.MaxPages > 0 {
		c.MaxPages = cf.Crawl.MaxPages
	}
	if cf.Crawl.Timeout != "" {
		if d, err := time.ParseDuration(cf.Crawl.Timeout); err == nil && d > 0 {
			c.Timeout = d
		}
	}
	if cf.Crawl.Concurrency > 0 {
		c.Concurrency = cf.Crawl.Concurrency
	}
	if cf.Crawl.UserAgent != "" {
		c.UserAgent = cf.Crawl.UserAgent
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .orgscan in the current directory
//  3. Look for .orgscan in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
