package file2fa

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TheAlakazam/file2fa/figi"
	"github.com/TheAlakazam/file2fa/yahoo"
)

// CompanyLookup resolves company identity by ticker; satisfied by *figi.Client.
type CompanyLookup interface {
	Lookup(symbol string) (figi.Company, error)
}

// PriceLookup resolves price extremes by ticker; satisfied by *yahoo.Client.
type PriceLookup interface {
	PeakAndYearEnd(symbol string) (yahoo.Summary, error)
}

// Pipeline wires one statement conversion end to end: file input, record
// extraction, external company and price lookups, FX resolution, and the
// final aggregation. One run either produces a full set of rows or fails
// with a single error; there is no partial-success mode.
type Pipeline struct {
	Company CompanyLookup
	Prices  PriceLookup
	Rates   RateResolver
}

// Report is the outcome of one conversion run.
type Report struct {
	Symbol  string
	Company figi.Company
	Prices  yahoo.Summary
	Rows    []Row
}

// Convert runs the whole pipeline for one statement file. The file kind is
// decided by extension: .pdf takes the positioned-fragment extraction
// path, .csv the purchase-row path; anything else is rejected before any
// extraction work.
func (p *Pipeline) Convert(path string) (*Report, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return p.convertPDF(path)
	case ".csv":
		return p.convertCSV(path)
	}
	return nil, fmt.Errorf("unsupported file %q: only PDF or CSV statements are supported", path)
}

func (p *Pipeline) convertPDF(path string) (*Report, error) {
	pages, err := ExtractPages(path)
	if err != nil {
		return nil, err
	}
	text := JoinPages(pages)
	orders := ParseStatement(text)
	symbol := ExtractSymbol(text)

	company, prices, err := p.lookups(symbol)
	if err != nil {
		return nil, err
	}
	rows, err := MapSellOrders(orders, company, prices, p.Rates)
	if err != nil {
		return nil, err
	}
	return &Report{Symbol: symbol, Company: company, Prices: prices, Rows: rows}, nil
}

func (p *Pipeline) convertCSV(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	purchases, err := ParsePurchases(f)
	if err != nil {
		return nil, err
	}
	symbol := UnknownSymbol
	for _, purchase := range purchases {
		if purchase.StockSymbol != "" {
			symbol = purchase.StockSymbol
			break
		}
	}

	company, prices, err := p.lookups(symbol)
	if err != nil {
		return nil, err
	}
	rows, err := MapPurchases(purchases, company, prices, p.Rates)
	if err != nil {
		return nil, err
	}
	return &Report{Symbol: symbol, Company: company, Prices: prices, Rows: rows}, nil
}

// lookups issues the company and price lookups concurrently and waits for
// both; aggregation needs both results before it can start.
func (p *Pipeline) lookups(symbol string) (figi.Company, yahoo.Summary, error) {
	type companyResult struct {
		company figi.Company
		err     error
	}
	done := make(chan companyResult, 1)
	go func() {
		company, err := p.Company.Lookup(symbol)
		done <- companyResult{company, err}
	}()

	prices, pricesErr := p.Prices.PeakAndYearEnd(symbol)
	res := <-done

	if res.err != nil {
		return figi.Company{}, yahoo.Summary{}, res.err
	}
	if pricesErr != nil {
		return figi.Company{}, yahoo.Summary{}, pricesErr
	}
	return res.company, prices, nil
}
