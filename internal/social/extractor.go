package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/orgscan/orgscan/internal/fetch"
	"github.com/orgscan/orgscan/internal/model"
)

// DefaultTwitterEndpoint is the unofficial follow-button endpoint.
// It is neither documented nor supported by Twitter and may disappear;
// when it does, twitter extraction degrades to the unknown sentinel like
// any other failure.
const DefaultTwitterEndpoint = "https://cdn.syndication.twimg.com/widgets/followbutton/info.json"

// Compiled patterns for the HTML-scraping strategies. The counters may
// carry thousands separators ("12,345"), stripped before parsing.
var (
	// vkCounterPattern matches the member counter vk serves at the very
	// start of the response body for the English page variant. Anchored:
	// a counter appearing elsewhere in the body is not the profile's own.
	vkCounterPattern = regexp.MustCompile(`^<em class="pm_counter">([\d,]+)</em>`)

	// facebookFollowPattern matches the follower phrase anywhere in the
	// English page body.
	facebookFollowPattern = regexp.MustCompile(`([\d,]+) people follow this`)

	// twitterProfilePattern extracts the screen name from a canonical
	// profile URL.
	twitterProfilePattern = regexp.MustCompile(`^https://twitter\.com/(\w+)`)
)

// Extraction failure reasons. The public Followers method collapses all of
// them to model.FollowersUnknown; they exist so internal tests and debug
// logs can tell failure causes apart.
var (
	// ErrPatternNotFound means the expected counter pattern was absent
	// from the fetched page.
	ErrPatternNotFound = errors.New("social: follower pattern not found")

	// ErrBadProfileURL means the profile URL did not match the provider's
	// canonical URL shape.
	ErrBadProfileURL = errors.New("social: profile URL does not match expected pattern")

	// ErrUnexpectedStatus means the provider answered with a non-success
	// status code.
	ErrUnexpectedStatus = errors.New("social: unexpected response status")

	// ErrMalformedPayload means a JSON endpoint returned a payload without
	// the expected structure.
	ErrMalformedPayload = errors.New("social: malformed response payload")
)

// strategy extracts the follower count for one provider's profile URL.
type strategy func(ctx context.Context, url string) (int, error)

// Extractor resolves follower counts for profile URLs using per-provider
// strategies.
//
// Design decision: Strategies live in a table keyed by provider identifier
// rather than a conditional chain, so the crawler can iterate the provider
// set and the extractor stays open to new providers without touching
// dispatch logic.
type Extractor struct {
	// client performs the HTTP requests.
	client *fetch.Client

	// twitterEndpoint is the follow-button endpoint base URL.
	// Overridable for tests.
	twitterEndpoint string

	// logger for structured logging.
	logger *slog.Logger

	// strategies maps provider identifiers to extraction funcs.
	strategies map[string]strategy
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithTwitterEndpoint overrides the follow-button endpoint base URL.
func WithTwitterEndpoint(url string) ExtractorOption {
	return func(e *Extractor) {
		if url != "" {
			e.twitterEndpoint = url
		}
	}
}

// WithLogger sets a custom logger for the extractor.
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates an Extractor using the given HTTP client.
func NewExtractor(client *fetch.Client, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		client:          client,
		twitterEndpoint: DefaultTwitterEndpoint,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.strategies = map[string]strategy{
		ProviderVK:        e.vkFollowers,
		ProviderFacebook:  e.facebookFollowers,
		ProviderTwitter:   e.twitterFollowers,
		ProviderInstagram: e.instagramFollowers,
	}

	return e
}

// Followers returns the follower count for a profile URL of the given
// provider, or model.FollowersUnknown when it cannot be determined.
// It never returns an error: extraction failures are logged and absorbed
// here so one broken profile never aborts a crawl.
//
// The provider must be one of the fixed set; anything else is a
// programming error (call sites iterate Providers()) and panics.
func (e *Extractor) Followers(ctx context.Context, provider, url string) int {
	extract, ok := e.strategies[provider]
	if !ok {
		panic(fmt.Sprintf("social: no extraction strategy for provider %q", provider))
	}

	count, err := extract(ctx, url)
	if err != nil {
		e.logger.Debug("follower extraction failed",
			"provider", provider,
			"url", url,
			"error", err,
		)
		return model.FollowersUnknown
	}

	return count
}

// vkFollowers scrapes the member counter from the vk profile page.
// The counter element is the first thing in the served body for the
// English variant; anywhere else means the page shape changed.
func (e *Extractor) vkFollowers(ctx context.Context, url string) (int, error) {
	resp, err := e.client.Get(ctx, url)
	if err != nil {
		return 0, err
	}
	if !resp.Successful() {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	match := vkCounterPattern.FindSubmatch(resp.Body)
	if match == nil {
		return 0, ErrPatternNotFound
	}

	return parseCount(string(match[1]))
}

// facebookFollowers scrapes the "N people follow this" phrase from the
// facebook page body.
func (e *Extractor) facebookFollowers(ctx context.Context, url string) (int, error) {
	resp, err := e.client.Get(ctx, url)
	if err != nil {
		return 0, err
	}
	if !resp.Successful() {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	match := facebookFollowPattern.FindSubmatch(resp.Body)
	if match == nil {
		return 0, ErrPatternNotFound
	}

	return parseCount(string(match[1]))
}

// instagramFollowers requests the JSON variant of the profile page and
// reads the count from graphql.user.edge_followed_by.count.
func (e *Extractor) instagramFollowers(ctx context.Context, url string) (int, error) {
	resp, err := e.client.GetJSON(ctx, url+"?__a=1")
	if err != nil {
		return 0, err
	}
	if !resp.Successful() {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload struct {
		Graphql struct {
			User struct {
				EdgeFollowedBy struct {
					Count *int `json:"count"`
				} `json:"edge_followed_by"`
			} `json:"user"`
		} `json:"graphql"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if payload.Graphql.User.EdgeFollowedBy.Count == nil {
		return 0, fmt.Errorf("%w: missing graphql.user.edge_followed_by.count", ErrMalformedPayload)
	}

	return *payload.Graphql.User.EdgeFollowedBy.Count, nil
}

// twitterFollowers parses the screen name out of the profile URL and asks
// the unofficial follow-button endpoint for its follower count.
func (e *Extractor) twitterFollowers(ctx context.Context, url string) (int, error) {
	match := twitterProfilePattern.FindStringSubmatch(url)
	if match == nil {
		return 0, ErrBadProfileURL
	}
	screenName := match[1]

	resp, err := e.client.GetJSON(ctx, e.twitterEndpoint+"?screen_names="+screenName)
	if err != nil {
		return 0, err
	}
	if !resp.Successful() {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload []struct {
		FollowersCount *int `json:"followers_count"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(payload) == 0 || payload[0].FollowersCount == nil {
		return 0, fmt.Errorf("%w: missing followers_count", ErrMalformedPayload)
	}

	return *payload[0].FollowersCount, nil
}

// parseCount parses a counter value, stripping thousands separators.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return n, nil
}
