// Package main provides the entry point for the orgscan CLI.
//
// orgscan enriches organization records with website metadata and
// social-media follower counts. It crawls each organization's site,
// extracts the page title and meta tags, discovers linked social profiles,
// and resolves their follower counts.
//
// Usage:
//
//	orgscan scan <site-url>...
//	orgscan run
//
// See --help for all available options.
package main

// main is the entry point for orgscan.
func main() {
	Execute()
}
