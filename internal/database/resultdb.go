package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/orgscan/orgscan/internal/model"
)

// ResultDB provides SQLite-based storage for enriched organization records.
// It manages connection pooling and provides methods for saving and
// reading batch results.
type ResultDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ResultDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ResultDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created; otherwise a missing database is an error.
func Open(dbDir string, opts Options) (*ResultDB, error) {
	dbPath := filepath.Join(dbDir, "orgscan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; readers share the WAL.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &ResultDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *ResultDB) Close() error {
	return rdb.db.Close()
}

// Path returns the path of the database file.
func (rdb *ResultDB) Path() string {
	return rdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (rdb *ResultDB) createTables() error {
	schema := `
	-- Organizations store one enriched record per processed organization
	CREATE TABLE IF NOT EXISTS organizations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		site_url TEXT NOT NULL,
		available INTEGER NOT NULL DEFAULT 0,
		title TEXT,
		keywords TEXT,
		descriptions TEXT,
		extra TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(site_url)
	);

	CREATE INDEX IF NOT EXISTS idx_org_site_url ON organizations(site_url);
	CREATE INDEX IF NOT EXISTS idx_org_timestamp ON organizations(timestamp);

	-- Social links store the profiles discovered for an organization
	CREATE TABLE IF NOT EXISTS social_links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		organization_id INTEGER NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
		provider TEXT NOT NULL,
		url TEXT NOT NULL,
		followers INTEGER NOT NULL DEFAULT -1
	);

	CREATE INDEX IF NOT EXISTS idx_social_org ON social_links(organization_id);
	CREATE INDEX IF NOT EXISTS idx_social_provider ON social_links(provider);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveOrganization inserts or updates one enriched record and replaces its
// social links. Uses UPSERT keyed on the site URL so re-running a batch
// refreshes earlier results.
func (rdb *ResultDB) SaveOrganization(ctx context.Context, org *model.EnrichedOrganization) (int64, error) {
	keywordsJSON, err := json.Marshal(org.SiteKeywords)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize keywords: %w", err)
	}
	descriptionsJSON, err := json.Marshal(org.SiteDescriptions)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize descriptions: %w", err)
	}
	extraJSON, err := json.Marshal(org.Extra)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize extra fields: %w", err)
	}

	query := `
	INSERT INTO organizations (site_url, available, title, keywords, descriptions, extra)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(site_url) DO UPDATE SET
		available = excluded.available,
		title = excluded.title,
		keywords = excluded.keywords,
		descriptions = excluded.descriptions,
		extra = excluded.extra,
		timestamp = CURRENT_TIMESTAMP
	`

	if _, err := rdb.db.ExecContext(ctx, query,
		org.SiteURL,
		org.SiteAvailable,
		org.SiteTitle,
		string(keywordsJSON),
		string(descriptionsJSON),
		string(extraJSON),
	); err != nil {
		return 0, fmt.Errorf("failed to save organization: %w", err)
	}

	// The UPSERT path doesn't report the row id, so read it back.
	var orgID int64
	if err := rdb.db.QueryRowContext(ctx,
		"SELECT id FROM organizations WHERE site_url = ?", org.SiteURL,
	).Scan(&orgID); err != nil {
		return 0, fmt.Errorf("failed to read organization id: %w", err)
	}

	// Replace the social links wholesale: stale links from an earlier run
	// must not survive a refresh.
	if _, err := rdb.db.ExecContext(ctx,
		"DELETE FROM social_links WHERE organization_id = ?", orgID,
	); err != nil {
		return 0, fmt.Errorf("failed to clear social links: %w", err)
	}

	for _, link := range org.SocialLinks {
		if _, err := rdb.db.ExecContext(ctx,
			"INSERT INTO social_links (organization_id, provider, url, followers) VALUES (?, ?, ?, ?)",
			orgID, link.Provider, link.URL, link.Followers,
		); err != nil {
			return 0, fmt.Errorf("failed to save social link: %w", err)
		}
	}

	return orgID, nil
}

// SaveBatch saves all enriched records of a batch run.
func (rdb *ResultDB) SaveBatch(ctx context.Context, orgs []*model.EnrichedOrganization) error {
	for _, org := range orgs {
		if org == nil {
			continue
		}
		if _, err := rdb.SaveOrganization(ctx, org); err != nil {
			return err
		}
	}
	return nil
}

// Organizations returns all stored enriched records, newest first.
func (rdb *ResultDB) Organizations(ctx context.Context) ([]*model.EnrichedOrganization, error) {
	rows, err := rdb.db.QueryContext(ctx, `
	SELECT id, site_url, available, title, keywords, descriptions, extra
	FROM organizations
	ORDER BY timestamp DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations: %w", err)
	}
	defer rows.Close()

	orgs := make([]*model.EnrichedOrganization, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		var (
			id                                    int64
			org                                   model.EnrichedOrganization
			keywordsJSON, descriptionsJSON, extra string
		)
		if err := rows.Scan(&id, &org.SiteURL, &org.SiteAvailable, &org.SiteTitle,
			&keywordsJSON, &descriptionsJSON, &extra); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}

		if err := json.Unmarshal([]byte(keywordsJSON), &org.SiteKeywords); err != nil {
			org.SiteKeywords = make([]string, 0)
		}
		if err := json.Unmarshal([]byte(descriptionsJSON), &org.SiteDescriptions); err != nil {
			org.SiteDescriptions = make([]string, 0)
		}
		if err := json.Unmarshal([]byte(extra), &org.Extra); err != nil {
			org.Extra = make(map[string]any)
		}
		org.SocialLinks = make([]model.SocialLink, 0)

		orgs = append(orgs, &org)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate organizations: %w", err)
	}

	for i, id := range ids {
		links, err := rdb.socialLinks(ctx, id)
		if err != nil {
			return nil, err
		}
		orgs[i].SocialLinks = links
	}

	return orgs, nil
}

// socialLinks returns the stored social links of one organization.
func (rdb *ResultDB) socialLinks(ctx context.Context, orgID int64) ([]model.SocialLink, error) {
	rows, err := rdb.db.QueryContext(ctx,
		"SELECT provider, url, followers FROM social_links WHERE organization_id = ? ORDER BY id",
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query social links: %w", err)
	}
	defer rows.Close()

	links := make([]model.SocialLink, 0)
	for rows.Next() {
		var link model.SocialLink
		if err := rows.Scan(&link.Provider, &link.URL, &link.Followers); err != nil {
			return nil, fmt.Errorf("failed to scan social link: %w", err)
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
