// Package log provides logging for orgscan, built on top of the standard
// slog package.
//
// This package extends slog to provide:
//   - Truncation of oversized attribute values (page bodies, link lists)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// The crawler and the follower extractor log raw remote data (HTML
// snippets, redirect chains, long profile URLs) when things go wrong.
// The CompactHandler keeps those logs readable by truncating any string
// attribute longer than a fixed limit; logs are diagnostics, not storage,
// so nothing of value is lost.
//
// # Usage
//
//	logger := log.New(os.Stderr, true) // verbose=true
//	logger.Debug("fetch failed",
//	    "url", profileURL,
//	    "body", snippet, // truncated if oversized
//	)
package log
