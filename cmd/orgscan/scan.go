package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orgscan/orgscan/internal/config"
	"github.com/orgscan/orgscan/internal/database"
	"github.com/orgscan/orgscan/internal/model"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <site-url>...",
		Short: "Enrich the given organization sites",
		Long: `Scan processes organization site URLs given on the command line.

For each site it fetches the top-level page, extracts the title and meta
keyword/description tags, crawls for links to social-media profiles
(vk, facebook, twitter, instagram), and resolves their follower counts.

Examples:
  # Scan a single site
  orgscan scan example.org

  # Scan several sites with deeper crawling
  orgscan scan --max-pages 5 example.org other.example.com

  # Output JSON to a file
  orgscan scan --json -o results.json example.org

  # Persist results to the database
  orgscan scan --save example.org`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScanCmd,
	}

	addCommonFlags(cmd)

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	orgs := make([]model.Organization, len(cfg.Sites))
	for i, site := range cfg.Sites {
		orgs[i] = model.Organization{SiteURL: site, Extra: make(map[string]any)}
	}

	return runBatch(ctx, cmd, cfg, logger, orgs, false)
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// runBatch processes the organizations, writes the export, and optionally
// persists the results. csvDefault picks the export format when no format
// flag was given.
func runBatch(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, orgs []model.Organization, csvDefault bool) error {
	batch := buildBatchProcessor(cfg, logger)

	results, err := batch.ProcessBatch(ctx, orgs)
	if err != nil {
		return fmt.Errorf("batch processing failed: %w", err)
	}

	if cfg.SaveToDB {
		if err := saveResults(ctx, cfg, logger, results); err != nil {
			return err
		}
	}

	out, closeOut, err := openOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil {
			logger.Warn("failed to close output", "error", cerr)
		}
	}()

	writer := selectWriter(cfg, out, csvDefault)
	if _, err := writer.Write(results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// saveResults persists the enriched records to the results database.
func saveResults(ctx context.Context, cfg *config.Config, logger *slog.Logger, results []*model.EnrichedOrganization) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open results database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Warn("failed to close database", "error", cerr)
		}
	}()

	if err := db.SaveBatch(ctx, results); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	logger.Info("results saved", "database", db.Path(), "records", len(results))
	return nil
}
