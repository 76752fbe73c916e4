package httpclient

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fxconvert/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	DefaultAcceptHeader = "application/vnd.BNM.API.v1+json"
	maxBodyBytes        = 1 << 20
)

var lastUpdatedLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type RatesFeedClient struct {
	http   *http.Client
	url    string
	accept string
}

// FetchRates performs a single GET against the feed. Any non-2xx status or invalid JSON fails the
// whole fetch; individual records with missing rate fields are returned with nil rates.
func (c *RatesFeedClient) FetchRates(ctx context.Context) (domain.Feed, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("failed to parse feed URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("Accept", c.accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("failed to execute feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Feed{}, fmt.Errorf("unexpected status code %d from feed: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Feed{}, fmt.Errorf("failed to read feed response: %w", err)
	}

	return decodeFeed(body)
}

func decodeFeed(body []byte) (domain.Feed, error) {
	if !gjson.ValidBytes(body) {
		return domain.Feed{}, fmt.Errorf("failed to decode feed response: invalid JSON")
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return domain.Feed{}, fmt.Errorf("failed to decode feed response: missing data array")
	}

	entries := data.Array()
	records := make([]domain.RawRateRecord, 0, len(entries))
	for _, item := range entries {
		records = append(records, domain.RawRateRecord{
			Code:    strings.TrimSpace(item.Get("currency_code").String()),
			Unit:    unitOrZero(item.Get("unit")),
			Buying:  numberOrNil(item.Get("rate.buying_rate")),
			Selling: numberOrNil(item.Get("rate.selling_rate")),
		})
	}

	return domain.Feed{
		Records:     records,
		LastUpdated: parseLastUpdated(gjson.GetBytes(body, "meta.last_updated").String()),
	}, nil
}

// unitOrZero accepts only whole JSON numbers. Anything else yields 0, which the normalizer rejects.
func unitOrZero(r gjson.Result) int {
	if r.Type != gjson.Number {
		return 0
	}
	v := r.Float()
	if v != math.Trunc(v) || v > math.MaxInt32 {
		return 0
	}
	return int(v)
}

func numberOrNil(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	v := r.Float()
	return &v
}

func parseLastUpdated(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range lastUpdatedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	logrus.WithField("last_updated", raw).Warn("Unrecognized feed timestamp, ignoring")
	return time.Time{}
}

func NewRatesFeedClient(httpClient *http.Client, feedURL, accept string) *RatesFeedClient {
	if accept == "" {
		accept = DefaultAcceptHeader
	}
	return &RatesFeedClient{http: httpClient, url: feedURL, accept: accept}
}
