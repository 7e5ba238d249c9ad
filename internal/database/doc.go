// Package database provides SQLite-based storage for orgscan.
//
// This package implements the ResultDB, which stores enriched organization
// records and their discovered social links so batch runs can be
// re-exported or inspected later without re-crawling.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
//  1. No external dependencies - the database is a single file
//  2. CGO-free implementation allows easy cross-compilation
//  3. Sufficient performance for batch-sized result sets
//  4. WAL mode provides good concurrent read performance
package database
