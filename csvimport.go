package file2fa

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/TheAlakazam/file2fa/date"
	"github.com/shopspring/decimal"
)

// Recognized purchase file headers. Column order is free and unknown
// columns are ignored.
const (
	headerPurchaseDate  = "Purchase Date"
	headerStockSymbol   = "Stock Symbol"
	headerAmount        = "Amount"
	headerCurrency      = "Currency"
	headerPurchasePrice = "Purchase Price"
	headerPurchasedQty  = "Purchased Qty"
)

// ParsePurchases reads a purchase CSV export into Purchase records, one per
// row, in file order.
//
// Parsing is deliberately permissive: a missing or malformed numeric cell
// becomes zero and a missing string cell becomes empty; downstream
// aggregation is responsible for any sanity filtering. The only fatal
// condition is a structurally invalid delimited file.
func ParsePurchases(r io.Reader) ([]Purchase, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV records: %w", err)
	}

	cell := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	purchases := make([]Purchase, 0, len(records))
	for _, record := range records {
		purchases = append(purchases, Purchase{
			PurchaseDate:  dateOrZero(cell(record, headerPurchaseDate)),
			StockSymbol:   cell(record, headerStockSymbol),
			Amount:        decimalOrZero(cell(record, headerAmount)),
			Currency:      cell(record, headerCurrency),
			PurchasePrice: decimalOrZero(cell(record, headerPurchasePrice)),
			PurchasedQty:  decimalOrZero(cell(record, headerPurchasedQty)),
		})
	}
	return purchases, nil
}

// decimalOrZero is the typed parse-or-default helper behind the permissive
// numeric policy: anything that is not a number is zero.
func decimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// dateOrZero parses a purchase date cell, accepting both ISO and the
// statement's MM/DD/YYYY form. Anything else is the zero date; FX
// resolution on a zero date fails the run, which is the aggregate-level
// sanity check the permissive policy defers to.
func dateOrZero(s string) date.Date {
	if d, err := date.Parse(s); err == nil {
		return d
	}
	if t, err := time.Parse(statementDateFormat, s); err == nil {
		return date.New(t.Date())
	}
	return date.Date{}
}
