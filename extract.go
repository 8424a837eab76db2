package file2fa

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/TheAlakazam/file2fa/date"
	"github.com/shopspring/decimal"
)

// statementDateFormat is the order-date format E*TRADE statements use.
const statementDateFormat = "01/02/2006"

// UnknownSymbol is returned when the statement carries no stock plan header.
const UnknownSymbol = "UNKNOWN"

// sellPattern is one tolerated statement line format: a compiled pattern
// plus the mapping from its capture groups to the order fields. Patterns
// are tried in order per line; the first match wins.
type sellPattern struct {
	re       *regexp.Regexp
	price    int                        // index of the price capture group
	currency func(match []string) string // resolves the order currency from the match
}

var sellPatterns = []sellPattern{
	// Format A: Restricted <date> Sell Mkt <qtys> <symbol><price>
	{
		re:       regexp.MustCompile(`Restricted\s+(\d{2}/\d{2}/\d{4})\s+Sell\s+Mkt\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+([^\d\s])([\d.]+)`),
		price:    7,
		currency: func(m []string) string { return CurrencyFromSymbol(m[6]) },
	},
	// Format B: Restricted <date> Sell Restricted Mkt <qtys> [$]<price>
	{
		re:       regexp.MustCompile(`Restricted\s+(\d{2}/\d{2}/\d{4})\s+Sell\s+Restricted\s+Mkt\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+\$?([\d.]+)`),
		price:    6,
		currency: func(m []string) string { return money.USD },
	},
}

var symbolPattern = regexp.MustCompile(`Stock Plan\s+\((\w+)\)`)

// symbolCurrencies are the ISO codes probed when mapping a statement's
// currency grapheme back to a code. USD comes first so "$" resolves to USD
// rather than one of the other dollar currencies.
var symbolCurrencies = []string{
	money.USD, money.EUR, money.GBP, money.JPY, money.INR,
	money.CHF, money.SEK, money.KRW, money.CNY, money.BRL,
}

// CurrencyFromSymbol maps a currency grapheme (like "€") to its ISO code
// using the go-money currency table. Unmapped symbols default to USD.
func CurrencyFromSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	for _, code := range symbolCurrencies {
		if c := money.GetCurrency(code); c != nil && c.Grapheme == symbol {
			return code
		}
	}
	return money.USD
}

// ParseStatement scans every line of the reconstructed text surface against
// the tolerated statement formats and returns the extracted sell orders in
// document reading order. Lines matching no pattern are skipped silently;
// most lines of a statement are not transaction lines.
func ParseStatement(text string) []SellOrder {
	var orders []SellOrder
	for _, line := range strings.Split(text, "\n") {
		for _, p := range sellPatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			order, ok := p.order(m)
			if ok {
				orders = append(orders, order)
			}
			break
		}
	}
	return orders
}

// order builds a SellOrder from a pattern match. The captured quantities
// always parse ([\d]+ guarantees it); a degenerate price capture like
// "1.2.3" does not, and drops the line like any other non-match.
func (p sellPattern) order(m []string) (SellOrder, bool) {
	t, err := time.Parse(statementDateFormat, m[1])
	if err != nil {
		return SellOrder{}, false
	}
	on := date.New(t.Date())
	price, err := decimal.NewFromString(m[p.price])
	if err != nil {
		return SellOrder{}, false
	}
	return SellOrder{
		BenefitType:      "Restricted Stock",
		OrderDate:        on,
		OrderType:        "Sell",
		PriceType:        "Mkt",
		SharesToExercise: mustInt(m[2]),
		SharesToSell:     mustInt(m[3]),
		ExercisedQty:     mustInt(m[4]),
		SoldQty:          mustInt(m[5]),
		ExecutionPrice:   price,
		Currency:         p.currency(m),
	}, true
}

func mustInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// ExtractSymbol returns the instrument symbol from the first "Stock Plan
// (<SYMBOL>)" occurrence in the text surface, or UnknownSymbol when absent.
// The symbol is the join key for the company and price lookups.
func ExtractSymbol(text string) string {
	if m := symbolPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return UnknownSymbol
}
