package treasury

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public fiscal-data service root.
const DefaultBaseURL = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service"

// Endpoints consumed by the pipeline.
const (
	EndpointDebtToPenny     = "/v2/accounting/od/debt_to_penny"
	EndpointSecurities      = "/v1/debt/mspd/mspd_table_3_market"
	EndpointAuctions        = "/v1/accounting/od/auctions_query"
	EndpointInterestExpense = "/v2/accounting/od/interest_expense"
	EndpointAvgRates        = "/v2/accounting/od/avg_interest_rates"
	EndpointYieldCurve      = "/v2/accounting/od/daily_treasury_rates"
	EndpointRealYieldCurve  = "/v2/accounting/od/daily_treasury_real_rates"
)

// pageInterval is the minimum delay between successive page requests,
// keeping a full multi-page crawl under the upstream hourly quota.
const pageInterval = 500 * time.Millisecond

// UpstreamError is a non-2xx or transport-level failure from the
// fiscal-data service. Fetches are not retried; the caller decides
// whether to fall back or fail.
type UpstreamError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream fetch %s failed with status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("upstream fetch %s failed: %s", e.Endpoint, e.Message)
}

// PageOptions control a single page request.
type PageOptions struct {
	Size   int
	Number int
	Sort   string // e.g. "-record_date" for latest-first
	Filter string // e.g. "record_date:gte:2020-01-01"
	Fields string // comma-separated projection, optional
}

// Meta is the upstream response metadata block.
type Meta struct {
	TotalCount int `json:"total-count"`
	TotalPages int `json:"total-pages"`
}

type links struct {
	Next *string `json:"next"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  Meta            `json:"meta"`
	Links links           `json:"links"`
}

// Client fetches paginated feeds from the fiscal-data service. It is
// stateless apart from the pacing limiter and safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client against baseURL, or DefaultBaseURL when empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(pageInterval), 1),
	}
}

// fetchEnvelope issues one page request and returns the raw envelope.
func (c *Client) fetchEnvelope(ctx context.Context, endpoint string, opts PageOptions) (*envelope, error) {
	// Pace requests so a multi-page crawl stays under the hourly quota.
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	if opts.Size > 0 {
		q.Set("page[size]", strconv.Itoa(opts.Size))
	}
	if opts.Number > 0 {
		q.Set("page[number]", strconv.Itoa(opts.Number))
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Filter != "" {
		q.Set("filter", opts.Filter)
	}
	if opts.Fields != "" {
		q.Set("fields", opts.Fields)
	}

	reqURL := c.baseURL + endpoint
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &UpstreamError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return &env, nil
}

// FetchPage fetches a single page of records from endpoint. Latest-record
// queries use Size 1 with a descending sort.
func FetchPage[T any](ctx context.Context, c *Client, endpoint string, opts PageOptions) ([]T, error) {
	env, err := c.fetchEnvelope(ctx, endpoint, opts)
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records from %s: %w", endpoint, err)
	}
	return records, nil
}

// FetchAllPages accumulates every page of endpoint, following the next
// link cursor until it is exhausted. Pages are requested and concatenated
// in page order.
func FetchAllPages[T any](ctx context.Context, c *Client, endpoint string, opts PageOptions) ([]T, error) {
	if opts.Size <= 0 {
		opts.Size = 1000
	}
	page := opts.Number
	if page <= 0 {
		page = 1
	}

	var all []T
	for {
		opts.Number = page
		env, err := c.fetchEnvelope(ctx, endpoint, opts)
		if err != nil {
			return nil, err
		}

		var records []T
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode records from %s: %w", endpoint, err)
		}
		all = append(all, records...)

		if env.Links.Next == nil || *env.Links.Next == "" {
			break
		}
		page++
	}

	log.Debugf("fetched %d records from %s across %d pages", len(all), endpoint, page)
	return all, nil
}
