package treasury

import (
	"context"
)

// Typed accessors over the generic page fetchers, one per consumed feed.
// Latest-record queries use a single page of size 1 sorted descending by
// record date; bulk queries follow the pagination cursor to exhaustion.

// LatestDebtSnapshot returns the most recent debt-to-the-penny record,
// or nil when the feed is empty.
func (c *Client) LatestDebtSnapshot(ctx context.Context) (*RawDebtSnapshot, error) {
	records, err := FetchPage[RawDebtSnapshot](ctx, c, EndpointDebtToPenny, PageOptions{
		Size: 1,
		Sort: "-record_date",
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// AllSecurities returns every CUSIP-level detail record for the most
// recent publication date. The detail feed is monthly, so the latest date
// is discovered first and the full crawl is filtered to it.
func (c *Client) AllSecurities(ctx context.Context) ([]RawSecurity, error) {
	head, err := FetchPage[RawSecurity](ctx, c, EndpointSecurities, PageOptions{
		Size: 1,
		Sort: "-record_date",
	})
	if err != nil {
		return nil, err
	}
	if len(head) == 0 {
		return nil, nil
	}

	return FetchAllPages[RawSecurity](ctx, c, EndpointSecurities, PageOptions{
		Filter: "record_date:eq:" + head[0].RecordDate,
	})
}

// AuctionsSince returns all auction results on or after the since date
// (ISO YYYY-MM-DD), oldest first.
func (c *Client) AuctionsSince(ctx context.Context, since string) ([]RawAuction, error) {
	return FetchAllPages[RawAuction](ctx, c, EndpointAuctions, PageOptions{
		Sort:   "auction_date",
		Filter: "auction_date:gte:" + since,
	})
}

// LatestAvgRate returns the most recent average interest rate across all
// marketable debt, or nil when the feed is empty.
func (c *Client) LatestAvgRate(ctx context.Context) (*RawAvgRate, error) {
	records, err := FetchPage[RawAvgRate](ctx, c, EndpointAvgRates, PageOptions{
		Size:   1,
		Sort:   "-record_date",
		Filter: "security_desc:eq:Total Marketable",
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// LatestInterestExpense returns the most recent fiscal-year-to-date
// interest expense record, or nil when the feed is empty.
func (c *Client) LatestInterestExpense(ctx context.Context) (*RawInterestExpense, error) {
	records, err := FetchPage[RawInterestExpense](ctx, c, EndpointInterestExpense, PageOptions{
		Size: 1,
		Sort: "-record_date",
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// LatestYieldCurve returns the most recent nominal 10-year yield record,
// or nil when the feed is empty.
func (c *Client) LatestYieldCurve(ctx context.Context) (*RawYieldCurve, error) {
	records, err := FetchPage[RawYieldCurve](ctx, c, EndpointYieldCurve, PageOptions{
		Size: 1,
		Sort: "-record_date",
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// LatestRealYieldCurve returns the most recent real 10-year yield record,
// or nil when the feed is empty.
func (c *Client) LatestRealYieldCurve(ctx context.Context) (*RawYieldCurve, error) {
	records, err := FetchPage[RawYieldCurve](ctx, c, EndpointRealYieldCurve, PageOptions{
		Size: 1,
		Sort: "-record_date",
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
