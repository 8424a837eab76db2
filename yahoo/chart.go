// Package yahoo fetches one year of daily prices for a ticker and reduces
// them to the two figures the valuation needs: the 52-week peak and the
// December 31 close.
package yahoo

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/TheAlakazam/file2fa/date"
	"github.com/TheAlakazam/file2fa/httpcache"
	"github.com/shopspring/decimal"
)

// DefaultURL is the Yahoo Finance chart endpoint.
const DefaultURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Summary holds the price extremes for one ticker over the trailing year.
type Summary struct {
	Peak    decimal.Decimal // highest daily high in the window
	YearEnd decimal.Decimal // close on the most recent Dec 31 sample; zero when the window has none
}

// Client queries the chart API. The zero value uses the default endpoint
// with a daily-caching HTTP client.
type Client struct {
	HTTP *http.Client
	URL  string
}

// PeakAndYearEnd fetches the 1-year daily chart for symbol and reduces it.
// Any transport, shape, or empty-series failure is an error that aborts
// the enclosing run.
func (c *Client) PeakAndYearEnd(symbol string) (Summary, error) {
	client := c.HTTP
	if client == nil {
		client = httpcache.NewDailyClient()
	}
	base := c.URL
	if base == "" {
		base = DefaultURL
	}

	addr := fmt.Sprintf("%s/%s?range=1y&interval=1d", base, symbol)
	var jobj any
	if err := httpcache.GetJSON(client, addr, &jobj); err != nil {
		return Summary{}, fmt.Errorf("cannot fetch prices for %q: %w", symbol, err)
	}

	// The interesting data sits deep in the chart payload; jsonpath keeps
	// the extraction resilient to the envelope fields we do not care about.
	timestamps, err := floatsAt(jobj, "$.chart.result[0].timestamp[*]")
	if err != nil {
		return Summary{}, fmt.Errorf("cannot read price series for %q: %w", symbol, err)
	}
	highs, err := floatsAt(jobj, "$.chart.result[0].indicators.quote[0].high[*]")
	if err != nil {
		return Summary{}, fmt.Errorf("cannot read price series for %q: %w", symbol, err)
	}
	closes, err := floatsAt(jobj, "$.chart.result[0].indicators.quote[0].close[*]")
	if err != nil {
		return Summary{}, fmt.Errorf("cannot read price series for %q: %w", symbol, err)
	}
	if len(timestamps) == 0 {
		return Summary{}, fmt.Errorf("empty price series for %q", symbol)
	}

	var peak, yearEnd float64
	var havePeak bool
	for i, ts := range timestamps {
		on := date.New(time.Unix(int64(ts), 0).UTC().Date())
		if i < len(highs) && (!havePeak || highs[i] > peak) {
			peak, havePeak = highs[i], true
		}
		if i < len(closes) && on.Month() == time.December && on.Day() == 31 {
			yearEnd = closes[i]
		}
	}
	if !havePeak {
		return Summary{}, fmt.Errorf("no usable highs for %q", symbol)
	}

	return Summary{
		Peak:    decimal.NewFromFloat(peak).Round(2),
		YearEnd: decimal.NewFromFloat(yearEnd).Round(2),
	}, nil
}

// floatsAt extracts a numeric array at the given path. The chart feed
// emits null for halted days; those positions read as zero so the series
// keeps the same indexing as the timestamps.
func floatsAt(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("value at %q is not an array", path)
	}
	out := make([]float64, len(jlist))
	for i, v := range jlist {
		f, ok := v.(float64)
		if !ok {
			continue // null sample, leaves a zero
		}
		out[i] = f
	}
	return out, nil
}
