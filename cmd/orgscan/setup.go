package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orgscan/orgscan/internal/config"
	"github.com/orgscan/orgscan/internal/crawler"
	"github.com/orgscan/orgscan/internal/export"
	"github.com/orgscan/orgscan/internal/fetch"
	"github.com/orgscan/orgscan/internal/log"
	"github.com/orgscan/orgscan/internal/pipeline"
	"github.com/orgscan/orgscan/internal/social"
)

// addCommonFlags registers the flags shared by scan and run.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of pages fetched per site crawl")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of organizations processed in parallel")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .orgscan in current or home directory)")
	cmd.Flags().Bool("csv", false,
		"Output CSV (mutually exclusive with --json and --markdown)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --csv and --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --csv and --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")
	cmd.Flags().Bool("save", false,
		"Save enriched records to the results database")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory for the results database (used with --save)")
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flag values win over file values, which win over
// defaults; the file is only consulted for settings whose flags were left
// at their defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Sites = args

	var err error
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}

	// Load the configuration file first so explicitly-set flags can
	// override it below. If the user explicitly specified a path, a
	// missing file is an error; otherwise it is silently skipped.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("timeout") {
		if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-pages") {
		if cfg.MaxPages, err = cmd.Flags().GetInt("max-pages"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("concurrency") {
		if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
			return nil, err
		}
	}

	if cfg.CSVOutput, err = cmd.Flags().GetBool("csv"); err != nil {
		return nil, err
	}
	if cfg.JSONOutput, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.OutputFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cfg.SaveToDB, err = cmd.Flags().GetBool("save"); err != nil {
		return nil, err
	}
	if cfg.DBDir, err = cmd.Flags().GetString("db-dir"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the application logger.
func setupLogger(verbose bool) *slog.Logger {
	return log.New(os.Stderr, verbose)
}

// buildBatchProcessor wires the HTTP client, follower extractor, spider,
// and processor from the configuration.
func buildBatchProcessor(cfg *config.Config, logger *slog.Logger) *pipeline.BatchProcessor {
	client := fetch.NewClient(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithAcceptLanguage(cfg.AcceptLanguage),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)

	extractor := social.NewExtractor(client, social.WithLogger(logger))

	spider := crawler.NewSpider(client, extractor,
		crawler.WithMaxPages(cfg.MaxPages),
		crawler.WithSpiderLogger(logger),
	)

	processor := pipeline.NewProcessor(client, spider,
		pipeline.WithProcessorLogger(logger),
	)

	return pipeline.NewBatchProcessor(processor,
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)
}

// openOutput returns the export destination: the configured file (parent
// directories created as needed) or defaultOut. The returned closer is a
// no-op for defaultOut.
func openOutput(cfg *config.Config, defaultOut io.Writer) (io.Writer, func() error, error) {
	if cfg.OutputFile == "" {
		return defaultOut, func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(cfg.OutputFile) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, f.Close, nil
}

// selectWriter chooses the export writer based on the configured format.
// csvDefault decides the fallback when no format flag is given: CSV for
// batch runs (the downstream tabular format), Markdown for ad-hoc scans
// (human-readable).
func selectWriter(cfg *config.Config, out io.Writer, csvDefault bool) export.Writer {
	switch {
	case cfg.CSVOutput:
		return export.NewCSVWriter(out)
	case cfg.JSONOutput:
		return export.NewJSONWriter(out, export.WithPrettyPrint())
	case cfg.MarkdownOutput:
		return export.NewMarkdownWriter(out)
	case csvDefault:
		return export.NewCSVWriter(out)
	default:
		return export.NewMarkdownWriter(out)
	}
}
