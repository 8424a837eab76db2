package figi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("request method = %v want POST", r.Method)
		}
		var jobs []map[string]string
		if err := json.NewDecoder(r.Body).Decode(&jobs); err != nil {
			t.Fatalf("cannot decode request body: %v", err)
		}
		if len(jobs) != 1 || jobs[0]["idValue"] != "NVDA" || jobs[0]["idType"] != "TICKER" {
			t.Errorf("mapping jobs = %v want one TICKER job for NVDA", jobs)
		}
		fmt.Fprint(w, `[{"data":[{"name":"NVIDIA CORP","country":"United States"}]}]`)
	}))
	defer server.Close()

	c := &Client{URL: server.URL}
	company, err := c.Lookup("NVDA")
	if err != nil {
		t.Fatalf("Lookup() unexpected error = %v", err)
	}
	if company.Name != "NVIDIA CORP" {
		t.Errorf("company.Name = %q want %q", company.Name, "NVIDIA CORP")
	}
	if company.CountryName != "United States" {
		t.Errorf("company.CountryName = %q want %q", company.CountryName, "United States")
	}
	if company.CountryCode != "US" {
		t.Errorf("company.CountryCode = %q want %q", company.CountryCode, "US")
	}
	if company.Address != "" || company.ZipCode != "" {
		t.Errorf("address/zip = %q/%q want empty", company.Address, company.ZipCode)
	}
}

func TestLookupUnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"error":"No identifier found."}]`)
	}))
	defer server.Close()

	c := &Client{URL: server.URL}
	company, err := c.Lookup("NOPE")
	if err != nil {
		t.Fatalf("Lookup() unexpected error = %v", err)
	}
	if want := "Unknown (NOPE)"; company.Name != want {
		t.Errorf("company.Name = %q want %q", company.Name, want)
	}
	if want := "United States of America"; company.CountryName != want {
		t.Errorf("company.CountryName = %q want %q", company.CountryName, want)
	}
	if company.CountryCode != "" {
		t.Errorf("company.CountryCode = %q want empty", company.CountryCode)
	}
}

func TestLookupSendsAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(apiKeyHeader); got != "secret" {
			t.Errorf("api key header = %q want %q", got, "secret")
		}
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	c := &Client{URL: server.URL, APIKey: "secret"}
	if _, err := c.Lookup("NVDA"); err != nil {
		t.Fatalf("Lookup() unexpected error = %v", err)
	}
}

func TestLookupServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := &Client{URL: server.URL}
	if _, err := c.Lookup("NVDA"); err == nil {
		t.Errorf("Lookup() expected an error on HTTP failure, got none")
	}
}
