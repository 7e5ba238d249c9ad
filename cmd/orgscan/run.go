package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/orgscan/orgscan/internal/config"
	"github.com/orgscan/orgscan/internal/fetch"
	"github.com/orgscan/orgscan/internal/listing"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch the organization listing and enrich every record",
		Long: `Run fetches the upstream organization listing, enriches every record
with website metadata and social-media follower counts, and writes the
result as CSV (or JSON/Markdown on request).

A failed listing fetch aborts the whole run: without the seed list there
is nothing to process. Failures of individual sites never abort the run;
those records are exported with empty enrichment fields.

Examples:
  # Enrich the full listing and write CSV to stdout
  orgscan run

  # Write the CSV to a file and persist results to the database
  orgscan run -o results.csv --save

  # Use a custom listing endpoint
  orgscan run --listing-url http://listing.example/organizations`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	addCommonFlags(cmd)

	cmd.Flags().String("listing-url", config.DefaultListingURL,
		"Upstream organization listing endpoint")
	cmd.Flags().Int("per-page", config.DefaultPerPage,
		"Page size requested from the listing endpoint")
	cmd.Flags().String("orientation", config.DefaultOrientation,
		"Listing orientation filter (empty disables the filter)")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd, nil)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("listing-url") {
		if cfg.ListingURL, err = cmd.Flags().GetString("listing-url"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("per-page") {
		if cfg.PerPage, err = cmd.Flags().GetInt("per-page"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("orientation") {
		if cfg.Orientation, err = cmd.Flags().GetString("orientation"); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	// The listing client gets its own client without the crawl timeout
	// tuning: one large page of JSON can take longer than a site fetch.
	listingClient := listing.NewClient(
		fetch.NewClient(fetch.WithUserAgent(cfg.UserAgent)),
		cfg.ListingURL,
		listing.WithPerPage(cfg.PerPage),
		listing.WithOrientation(cfg.Orientation),
		listing.WithLogger(logger),
	)

	orgs, err := listingClient.Organizations(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch organization listing: %w", err)
	}

	logger.Info("organization listing fetched", "records", len(orgs))

	return runBatch(ctx, cmd, cfg, logger, orgs, true)
}
