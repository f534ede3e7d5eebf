// Package yahoo fetches current market prices from the Yahoo Finance chart
// API. It is the production PriceSource; everything in the core engine is
// testable without it.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rustyeddy/paperdesk/market"
)

// DefaultBaseURL is the public Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Yahoo rejects requests without a browser-looking user agent.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/124.0"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a quote client. An empty baseURL selects the public
// host; a zero timeout defaults to 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// GetQuote implements market.PriceSource. Every failure mode maps to
// market.ErrQuoteUnavailable so callers can abort a trade on errors.Is.
func (c *Client) GetQuote(ctx context.Context, symbol string) (market.Quote, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return market.Quote{}, fmt.Errorf("%w: %s: %v", market.ErrQuoteUnavailable, symbol, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return market.Quote{}, fmt.Errorf("%w: %s: %v", market.ErrQuoteUnavailable, symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return market.Quote{}, fmt.Errorf("%w: %s: status %d", market.ErrQuoteUnavailable, symbol, resp.StatusCode)
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return market.Quote{}, fmt.Errorf("%w: %s: decode: %v", market.ErrQuoteUnavailable, symbol, err)
	}
	if body.Chart.Error != nil {
		return market.Quote{}, fmt.Errorf("%w: %s: %s", market.ErrQuoteUnavailable, symbol, body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return market.Quote{}, fmt.Errorf("%w: %s: empty result", market.ErrQuoteUnavailable, symbol)
	}

	meta := body.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return market.Quote{}, fmt.Errorf("%w: %s: nonpositive price %v", market.ErrQuoteUnavailable, symbol, meta.RegularMarketPrice)
	}

	return market.Quote{
		Symbol: symbol,
		Price:  meta.RegularMarketPrice,
		Time:   time.Unix(meta.RegularMarketTime, 0).UTC(),
	}, nil
}
