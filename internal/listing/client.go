package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/orgscan/orgscan/internal/fetch"
	"github.com/orgscan/orgscan/internal/model"
)

// ErrListingFailed is returned when the upstream endpoint answers but
// reports failure in its payload.
var ErrListingFailed = errors.New("listing: upstream reported failure")

// Client fetches organization records from the listing endpoint.
type Client struct {
	// client performs the HTTP requests.
	client *fetch.Client

	// baseURL is the listing endpoint.
	baseURL string

	// perPage is the page size requested from the endpoint. The default
	// is large enough that the whole list fits one page in practice.
	perPage int

	// orientation filters the listing by organization orientation.
	// Empty disables the filter.
	orientation string

	// logger for structured logging.
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithPerPage sets the page size requested from the endpoint.
func WithPerPage(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithOrientation sets the orientation filter.
func WithOrientation(orientation string) ClientOption {
	return func(c *Client) {
		c.orientation = orientation
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a listing client for the given endpoint.
func NewClient(client *fetch.Client, baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		client:  client,
		baseURL: baseURL,
		perPage: 5000,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// page mirrors the upstream payload shape.
type page struct {
	Success bool `json:"success"`
	Data    struct {
		List []map[string]any `json:"list"`
	} `json:"data"`
}

// Organizations fetches the full organization list, paging until the
// endpoint returns a short page. Any transport error, non-success status,
// or success=false payload fails the whole fetch.
func (c *Client) Organizations(ctx context.Context) ([]model.Organization, error) {
	orgs := make([]model.Organization, 0, c.perPage)

	for pageNum := 1; ; pageNum++ {
		records, err := c.fetchPage(ctx, pageNum)
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			orgs = append(orgs, model.NewOrganization(record))
		}

		c.logger.Debug("listing page fetched", "page", pageNum, "records", len(records))

		// A short page means the listing is exhausted.
		if len(records) < c.perPage {
			break
		}
	}

	return orgs, nil
}

// fetchPage fetches and decodes one page of the listing.
func (c *Client) fetchPage(ctx context.Context, pageNum int) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("perPage", strconv.Itoa(c.perPage))
	if pageNum > 1 {
		params.Set("page", strconv.Itoa(pageNum))
	}
	if c.orientation != "" {
		params.Set("orientation", c.orientation)
	}

	resp, err := c.client.GetJSON(ctx, c.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("listing: fetch page %d: %w", pageNum, err)
	}
	if !resp.Successful() {
		return nil, fmt.Errorf("listing: fetch page %d: unexpected status %d", pageNum, resp.StatusCode)
	}

	var p page
	if err := json.Unmarshal(resp.Body, &p); err != nil {
		return nil, fmt.Errorf("listing: decode page %d: %w", pageNum, err)
	}
	if !p.Success {
		return nil, ErrListingFailed
	}

	return p.Data.List, nil
}
