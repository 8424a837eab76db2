package fx

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/TheAlakazam/file2fa/date"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultFeedURL is the base location of the SBI reference-rate CSV files,
// one file per currency.
const DefaultFeedURL = "https://raw.githubusercontent.com/sahilgupta/sbi-fx-ratekeeper/main/csv_files"

// Service resolves historical buy-rates. It holds a persistent store
// (checked before any network access), an in-memory memo so a currency's
// table is fetched at most once per process lifetime, and the feed
// location. Construct one per process with NewService.
type Service struct {
	store   Store
	client  *http.Client
	feedURL string
	memo    *gocache.Cache
}

// NewService returns a Service backed by the given persistent store.
func NewService(store Store) *Service {
	return &Service{
		store:   store,
		client:  http.DefaultClient,
		feedURL: DefaultFeedURL,
		memo:    gocache.New(gocache.NoExpiration, 0),
	}
}

// WithClient overrides the HTTP client used to fetch the feed.
func (s *Service) WithClient(c *http.Client) *Service { s.client = c; return s }

// WithFeedURL overrides the feed base URL.
func (s *Service) WithFeedURL(u string) *Service { s.feedURL = strings.TrimSuffix(u, "/"); return s }

// Rate returns the buy-rate applicable for the given purpose, reference
// date and currency. The rate for the derived target date is looked up in
// the currency's table; when that exact date has no entry the closest
// preceding date's rate applies. When the target precedes every available
// date the lookup fails, and the failure is unrecoverable for the run:
// there is no silent default rate.
func (s *Service) Rate(p Purpose, on date.Date, currency string) (float64, error) {
	table, err := s.load(normalize(currency))
	if err != nil {
		return 0, err
	}
	target := ReferenceDate(p, on)
	rate, ok := table.ValueAsOf(target)
	if !ok {
		return 0, fmt.Errorf("no %s rate found on or before %s", normalize(currency), target)
	}
	return rate, nil
}

// Clear drops the persisted table for a currency, forcing the next load in
// a future process to fetch the feed again. The in-process memo is dropped
// too.
func (s *Service) Clear(currency string) error {
	currency = normalize(currency)
	s.memo.Delete(currency)
	return s.store.Delete(keyPrefix + currency)
}

// normalize maps the empty currency to the USD default and upcases codes.
func normalize(currency string) string {
	if currency = strings.ToUpper(strings.TrimSpace(currency)); currency == "" {
		return money.USD
	}
	return currency
}

// load returns the currency's rate table, building it at most once per
// process: memo, then persistent store, then the remote feed (persisting
// the parsed table before returning it).
func (s *Service) load(currency string) (*date.History[float64], error) {
	if cached, ok := s.memo.Get(currency); ok {
		return cached.(*date.History[float64]), nil
	}

	key := keyPrefix + currency
	if content, ok := s.store.Get(key); ok {
		table, err := decodeTable(content)
		if err == nil && table.Len() > 0 {
			s.memo.Set(currency, table, gocache.NoExpiration)
			return table, nil
		}
		// An empty or corrupt entry is treated as a miss.
	}

	table, err := s.fetch(currency)
	if err != nil {
		return nil, err
	}
	content, err := encodeTable(table)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(key, content); err != nil {
		return nil, fmt.Errorf("cannot persist %s rate table: %w", currency, err)
	}
	s.memo.Set(currency, table, gocache.NoExpiration)
	return table, nil
}

// fetch downloads and parses the currency's reference-rate CSV. The feed
// has a DATE column holding "YYYY-MM-DD HH:MM" stamps and a "TT BUY"
// column with the buy-rate; rows missing either are skipped, so the table
// is sparse (weekends, holidays, feed gaps).
func (s *Service) fetch(currency string) (*date.History[float64], error) {
	addr := fmt.Sprintf("%s/SBI_REFERENCE_RATES_%s.csv", s.feedURL, currency)
	resp, err := s.client.Get(addr)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch %s reference rates: %w", currency, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	table, err := parseFeed(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s reference rates: %w", currency, err)
	}
	return table, nil
}

func parseFeed(r io.Reader) (*date.History[float64], error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read feed header: %w", err)
	}
	dateCol, buyCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "DATE":
			dateCol = i
		case "TT BUY":
			buyCol = i
		}
	}
	if dateCol < 0 || buyCol < 0 {
		return nil, fmt.Errorf("feed is missing the DATE or TT BUY column: %v", header)
	}

	table := new(date.History[float64])
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if dateCol >= len(record) || buyCol >= len(record) {
			continue
		}
		// Keep the date-only component of stamps like "2025-07-08 09:09".
		stamp := strings.Fields(record[dateCol])
		if len(stamp) == 0 {
			continue
		}
		on, err := date.Parse(stamp[0])
		if err != nil {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(record[buyCol]), 64)
		if err != nil {
			continue
		}
		table.Append(on, rate)
	}
	return table, nil
}

// The persisted form is a json object of ISO date to rate, one entry per
// feed row that carried a usable buy-rate.

func encodeTable(table *date.History[float64]) ([]byte, error) {
	m := make(map[string]float64, table.Len())
	for on, rate := range table.Values() {
		m[on.String()] = rate
	}
	return json.Marshal(m)
}

func decodeTable(content []byte) (*date.History[float64], error) {
	m := make(map[string]float64)
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, err
	}
	table := new(date.History[float64])
	for day, rate := range m {
		on, err := date.Parse(day)
		if err != nil {
			return nil, err
		}
		table.Append(on, rate)
	}
	return table, nil
}
