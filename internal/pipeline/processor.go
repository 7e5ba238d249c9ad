package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/orgscan/orgscan/internal/crawler"
	"github.com/orgscan/orgscan/internal/fetch"
	"github.com/orgscan/orgscan/internal/model"
)

// Processor enriches organization records with website metadata and
// social profile information.
type Processor struct {
	// client fetches the top-level page.
	client *fetch.Client

	// spider performs the social crawl.
	spider *crawler.Spider

	// logger for structured logging.
	logger *slog.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithProcessorLogger sets a custom logger for the processor.
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessor creates a Processor using the given HTTP client and spider.
// The client should be the same one the spider uses so timeout and header
// configuration stay consistent across the pipeline.
func NewProcessor(client *fetch.Client, spider *crawler.Spider, opts ...ProcessorOption) *Processor {
	p := &Processor{
		client: client,
		spider: spider,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process enriches one organization. It never fails: an unreachable site
// yields a record with SiteAvailable=false and empty enrichment fields, so
// one dead site never aborts a batch.
func (p *Processor) Process(ctx context.Context, org model.Organization) *model.EnrichedOrganization {
	enriched := &model.EnrichedOrganization{
		Organization:     org,
		SiteKeywords:     make([]string, 0),
		SiteDescriptions: make([]string, 0),
		SocialLinks:      make([]model.SocialLink, 0),
	}
	enriched.SiteURL = NormalizeSiteURL(org.SiteURL)

	resp, err := p.client.Get(ctx, enriched.SiteURL)
	if err != nil {
		p.logger.Debug("site unreachable", "url", enriched.SiteURL, "error", err)
		return enriched
	}
	if !resp.Successful() {
		p.logger.Debug("site not successful", "url", enriched.SiteURL, "status", resp.StatusCode)
		return enriched
	}

	enriched.SiteAvailable = true

	// Metadata comes from the top-level page only.
	if page, err := crawler.Parse(bytes.NewReader(resp.Body)); err == nil {
		enriched.SiteTitle = page.Title
		enriched.SiteKeywords = page.Keywords
		enriched.SiteDescriptions = page.Descriptions
	}

	// The crawl re-fetches the seed: its frontier bookkeeping needs the
	// fetch to count against the visit cap, and the page is cheap relative
	// to the follower lookups it triggers.
	links, stats := p.spider.Crawl(ctx, enriched.SiteURL)
	enriched.SocialLinks = links

	p.logger.Debug("organization processed",
		"url", enriched.SiteURL,
		"social_links", len(links),
		"pages_fetched", stats.PagesFetched,
	)

	return enriched
}

// NormalizeSiteURL prefixes the default scheme when the URL has none.
// Upstream records frequently carry bare hosts ("example.org").
func NormalizeSiteURL(siteURL string) string {
	if strings.HasPrefix(siteURL, "http") {
		return siteURL
	}
	return "http://" + siteURL
}
