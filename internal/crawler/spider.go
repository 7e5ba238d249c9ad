package crawler

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/orgscan/orgscan/internal/fetch"
	"github.com/orgscan/orgscan/internal/model"
	"github.com/orgscan/orgscan/internal/social"
)

// Spider crawls the pages of one site breadth-first, collecting links to
// social profiles together with their follower counts.
//
// A Spider carries no per-crawl state: all traversal bookkeeping lives in
// Crawl's locals, so a single Spider is safe to share across the
// concurrent per-organization workers.
type Spider struct {
	// client fetches pages.
	client *fetch.Client

	// extractor resolves follower counts for discovered profile links.
	extractor *social.Extractor

	// providers is the set of social networks to look for.
	providers []social.Provider

	// maxPages limits the total number of page fetches per crawl.
	maxPages int

	// logger for structured logging.
	logger *slog.Logger
}

// SpiderOption configures a Spider.
type SpiderOption func(*Spider)

// WithMaxPages sets the visit cap: the maximum number of pages fetched in
// one crawl, regardless of how many URLs the frontier holds.
func WithMaxPages(n int) SpiderOption {
	return func(s *Spider) {
		if n > 0 {
			s.maxPages = n
		}
	}
}

// WithProviders overrides the set of social networks to look for.
func WithProviders(providers []social.Provider) SpiderOption {
	return func(s *Spider) {
		if len(providers) > 0 {
			s.providers = providers
		}
	}
}

// WithSpiderLogger sets a custom logger for the spider.
func WithSpiderLogger(logger *slog.Logger) SpiderOption {
	return func(s *Spider) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSpider creates a Spider using the given HTTP client and follower
// extractor.
//
// Design decision: We require the client and extractor from outside rather
// than constructing them because the pipeline shares one client (and its
// timeout configuration) across all components, and tests substitute an
// extractor pointed at local servers.
func NewSpider(client *fetch.Client, extractor *social.Extractor, opts ...SpiderOption) *Spider {
	s := &Spider{
		client:    client,
		extractor: extractor,
		providers: social.Providers(),
		maxPages:  1,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Stats describes what one crawl did.
type Stats struct {
	// PagesFetched is the number of page fetches attempted. Failed fetches
	// count: the visit cap bounds requests made, not pages parsed.
	PagesFetched int

	// URLsSeen is the number of unique URLs entered into the visited set,
	// including the seed. URLsSeen - PagesFetched is the number of
	// discovered-but-unvisited URLs left in the frontier at the end.
	URLsSeen int
}

// Crawl traverses the site starting at seedURL and returns the social
// links discovered, deduplicated by full (provider, url, followers)
// equality. Two discoveries of the same URL with different counts remain
// distinct entries.
//
// Failures are absorbed: an unreachable or non-successful page is skipped
// and the traversal moves on, so Crawl has no error return.
func (s *Spider) Crawl(ctx context.Context, seedURL string) ([]model.SocialLink, Stats) {
	// The frontier is FIFO and the visited set is pre-seeded, so the seed
	// is never re-enqueued by its own pages.
	frontier := []string{seedURL}
	visited := map[string]struct{}{seedURL: {}}

	// Same-site discovery matches the scheme-stripped seed URL as a raw
	// substring of each href. Like provider matching this can over- and
	// under-match (subdomains, hosts appearing in paths).
	siteMarker := stripScheme(seedURL)

	seen := make(map[model.SocialLink]struct{})
	results := make([]model.SocialLink, 0)
	stats := Stats{}

	for len(frontier) > 0 && stats.PagesFetched < s.maxPages {
		next := frontier[0]
		frontier = frontier[1:]
		stats.PagesFetched++

		resp, err := s.client.Get(ctx, next)
		if err != nil {
			s.logger.Debug("page fetch failed", "url", next, "error", err)
			continue
		}
		if !resp.Successful() {
			s.logger.Debug("page fetch not successful", "url", next, "status", resp.StatusCode)
			continue
		}

		page, err := Parse(bytes.NewReader(resp.Body))
		if err != nil {
			s.logger.Debug("page parse failed", "url", next, "error", err)
			continue
		}

		// Social profile discovery.
		for _, provider := range s.providers {
			for _, link := range FindLinks(page, provider.Domain) {
				discovered := model.SocialLink{
					Provider:  provider.Name,
					URL:       link,
					Followers: s.extractor.Followers(ctx, provider.Name, link),
				}
				if _, dup := seen[discovered]; dup {
					continue
				}
				seen[discovered] = struct{}{}
				results = append(results, discovered)
			}
		}

		// Same-site discovery feeds the frontier tail.
		for _, link := range FindLinks(page, siteMarker) {
			if _, ok := visited[link]; ok {
				continue
			}
			visited[link] = struct{}{}
			frontier = append(frontier, link)
		}
	}

	stats.URLsSeen = len(visited)
	return results, stats
}

// stripScheme removes http:// and https:// occurrences from a URL, giving
// the marker used for same-site matching.
func stripScheme(url string) string {
	url = strings.ReplaceAll(url, "http://", "")
	return strings.ReplaceAll(url, "https://", "")
}
