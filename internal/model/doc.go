// Package model defines the core data structures used throughout orgscan.
//
// This package contains the following main types:
//   - Organization: An upstream organization record with passthrough fields
//   - EnrichedOrganization: An organization plus crawled site information
//   - SocialLink: A discovered social profile with its follower count
//   - Metadata: Title and meta-tag values extracted from a page
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (crawler, social, pipeline, export) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for export output and
// database storage.
package model
