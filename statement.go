package file2fa

import (
	"github.com/TheAlakazam/file2fa/date"
	"github.com/shopspring/decimal"
)

// SellOrder is one transaction extracted from a brokerage statement PDF.
// It is immutable once built and consumed exactly once by the aggregator.
type SellOrder struct {
	BenefitType      string
	OrderDate        date.Date
	OrderType        string
	PriceType        string
	SharesToExercise int64
	SharesToSell     int64
	ExercisedQty     int64
	SoldQty          int64
	ExecutionPrice   decimal.Decimal
	Currency         string
}

// SharesHeld returns the residual quantity after the sale.
// The extractor does not enforce ExercisedQty >= SoldQty; a residual of
// zero or less means a fully divested position and is dropped downstream.
func (o SellOrder) SharesHeld() int64 { return o.ExercisedQty - o.SoldQty }

// Purchase is one row from the CSV ingestion path. It is the structural
// parallel of SellOrder: the purchased quantity plays the role the residual
// quantity plays on the PDF path, since CSV input has no separate "sold"
// concept.
type Purchase struct {
	PurchaseDate  date.Date
	StockSymbol   string
	Amount        decimal.Decimal
	Currency      string
	PurchasePrice decimal.Decimal
	PurchasedQty  decimal.Decimal
}
