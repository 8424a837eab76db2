// Package figi looks up company identity by ticker symbol through the
// OpenFIGI mapping API.
package figi

import (
	"fmt"
	"net/http"

	"github.com/TheAlakazam/file2fa/httpcache"
)

// DefaultURL is the OpenFIGI v3 mapping endpoint.
const DefaultURL = "https://api.openfigi.com/v3/mapping"

const apiKeyHeader = "X-OPENFIGI-APIKEY"

// Company identifies the foreign entity a Schedule FA row discloses.
// Address and zip are frequently unavailable: OpenFIGI does not provide a
// full address, so they stay empty for the filer to complete.
type Company struct {
	Name        string
	CountryName string
	CountryCode string
	Address     string
	ZipCode     string
}

// Client queries OpenFIGI. The zero value uses the default endpoint, no
// API key, and the default HTTP client.
type Client struct {
	HTTP   *http.Client
	URL    string
	APIKey string // optional; raises the unauthenticated rate limit
}

// Lookup resolves the company identity for a US-listed ticker. A symbol
// OpenFIGI does not know yields a placeholder name rather than an error;
// only transport and decoding failures are errors, and those abort the
// enclosing run.
func (c *Client) Lookup(symbol string) (Company, error) {
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	addr := c.URL
	if addr == "" {
		addr = DefaultURL
	}
	headers := make(map[string]string)
	if c.APIKey != "" {
		headers[apiKeyHeader] = c.APIKey
	}

	// One mapping job per lookup; RSUs are assumed US-listed.
	body := []map[string]string{{
		"idType":   "TICKER",
		"idValue":  symbol,
		"exchCode": "US",
	}}

	type figiResult struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	}
	var content []struct {
		Data  []figiResult `json:"data"`
		Error string       `json:"error"`
	}
	if err := httpcache.PostJSON(client, addr, headers, body, &content); err != nil {
		return Company{}, fmt.Errorf("cannot look up %q on OpenFIGI: %w", symbol, err)
	}

	var result figiResult
	if len(content) > 0 && len(content[0].Data) > 0 {
		result = content[0].Data[0]
	}

	company := Company{
		Name:        result.Name,
		CountryName: result.Country,
	}
	if company.Name == "" {
		company.Name = fmt.Sprintf("Unknown (%s)", symbol)
	}
	if company.CountryName == "" {
		company.CountryName = "United States of America"
	}
	if result.Country == "United States" {
		company.CountryCode = "US"
	}
	return company, nil
}
