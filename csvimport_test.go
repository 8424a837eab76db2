package file2fa

import (
	"strings"
	"testing"

	"github.com/TheAlakazam/file2fa/date"
)

func TestParsePurchases(t *testing.T) {
	in := "Purchase Date,Stock Symbol,Amount,Currency,Purchase Price,Purchased Qty\n" +
		"2024-01-15,NVDA,2550.00,USD,25.50,100\n" +
		"03/20/2024,NVDA,1030.00,USD,25.75,40\n"
	purchases, err := ParsePurchases(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParsePurchases() unexpected error = %v", err)
	}
	if len(purchases) != 2 {
		t.Fatalf("ParsePurchases() = %d rows, want 2", len(purchases))
	}
	p := purchases[0]
	if p.PurchaseDate != date.MustParse("2024-01-15") {
		t.Errorf("PurchaseDate = %v want 2024-01-15", p.PurchaseDate)
	}
	if p.StockSymbol != "NVDA" || p.Currency != "USD" {
		t.Errorf("symbol/currency = %q/%q want NVDA/USD", p.StockSymbol, p.Currency)
	}
	if got := p.PurchasePrice.String(); got != "25.5" {
		t.Errorf("PurchasePrice = %v want 25.5", got)
	}
	// The statement date format is accepted too.
	if purchases[1].PurchaseDate != date.MustParse("2024-03-20") {
		t.Errorf("PurchaseDate = %v want 2024-03-20", purchases[1].PurchaseDate)
	}
}

func TestParsePurchasesColumnOrderFree(t *testing.T) {
	in := "Purchased Qty,Stock Symbol,Purchase Date\n" +
		"100,NVDA,2024-01-15\n"
	purchases, err := ParsePurchases(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParsePurchases() unexpected error = %v", err)
	}
	if got := purchases[0].PurchasedQty.String(); got != "100" {
		t.Errorf("PurchasedQty = %v want 100", got)
	}
}

func TestParsePurchasesPermissiveDefaults(t *testing.T) {
	// Malformed numeric cells and missing columns default to zero/empty
	// rather than failing; aggregation does the sanity filtering.
	in := "Purchase Date,Stock Symbol,Amount,Currency,Purchase Price,Purchased Qty\n" +
		"2024-01-15,NVDA,not-a-number,,abc,\n"
	purchases, err := ParsePurchases(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParsePurchases() unexpected error = %v", err)
	}
	p := purchases[0]
	if !p.Amount.IsZero() || !p.PurchasePrice.IsZero() || !p.PurchasedQty.IsZero() {
		t.Errorf("numeric defaults = %v/%v/%v want all zero", p.Amount, p.PurchasePrice, p.PurchasedQty)
	}
	if p.Currency != "" {
		t.Errorf("Currency = %q want empty", p.Currency)
	}
}

func TestParsePurchasesStructuralFailure(t *testing.T) {
	in := "Purchase Date,Stock Symbol\n" +
		"\"unterminated,NVDA\n"
	if _, err := ParsePurchases(strings.NewReader(in)); err == nil {
		t.Errorf("ParsePurchases() expected an error for invalid delimited text")
	}
}

func TestDecimalOrZero(t *testing.T) {
	if got := decimalOrZero("25.50").String(); got != "25.5" {
		t.Errorf("decimalOrZero(25.50) = %v want 25.5", got)
	}
	for _, in := range []string{"", "NaN-ish", "1.2.3"} {
		if !decimalOrZero(in).IsZero() {
			t.Errorf("decimalOrZero(%q) = %v want 0", in, decimalOrZero(in))
		}
	}
}
