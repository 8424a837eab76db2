package file2fa

import (
	"github.com/TheAlakazam/file2fa/date"
	"github.com/TheAlakazam/file2fa/figi"
	"github.com/TheAlakazam/file2fa/fx"
	"github.com/TheAlakazam/file2fa/yahoo"
	"github.com/shopspring/decimal"
)

// NatureOfEntity is the fixed classification stamped on every row: this
// pipeline only handles listed-company equity.
const NatureOfEntity = "Listed Company"

// Row is one Schedule FA disclosure line. It is terminal: produced by the
// aggregation below, consumed by display only.
//
// TotalGrossCreditedINR and TotalGrossProceedsINR are reserved for
// dividend and sale proceeds this pipeline does not compute; they are
// always zero.
type Row struct {
	CountryName           string
	CountryCode           string
	NameOfEntity          string
	AddressOfEntity       string
	ZipCode               string
	NatureOfEntity        string
	DateOfAcquisition     date.Date
	InitialValueINR       decimal.Decimal
	PeakValueINR          decimal.Decimal
	ClosingValueINR       decimal.Decimal
	TotalGrossCreditedINR decimal.Decimal
	TotalGrossProceedsINR decimal.Decimal
	Currency              string
	SharesHeld            decimal.Decimal
}

// RateResolver resolves one historical buy-rate; satisfied by *fx.Service.
type RateResolver interface {
	Rate(p fx.Purpose, on date.Date, currency string) (float64, error)
}

// MapSellOrders joins each statement sell order with the company identity,
// the price extremes, and the FX rates for its order date into one Schedule
// FA row. Orders with no residual holding are dropped: a fully divested
// position has nothing to disclose. Row order follows order order, and the
// first FX resolution failure aborts the whole mapping.
func MapSellOrders(orders []SellOrder, company figi.Company, prices yahoo.Summary, rates RateResolver) ([]Row, error) {
	var rows []Row
	for _, o := range orders {
		held := o.SharesHeld()
		if held <= 0 {
			continue
		}
		row, err := mapRow(o.OrderDate, o.Currency, o.ExecutionPrice,
			decimal.NewFromInt(o.ExercisedQty), decimal.NewFromInt(held),
			company, prices, rates)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MapPurchases is the CSV-path counterpart of MapSellOrders: the purchased
// quantity plays both the exercised and the residual quantity, and the
// purchase price plays the execution price.
func MapPurchases(purchases []Purchase, company figi.Company, prices yahoo.Summary, rates RateResolver) ([]Row, error) {
	var rows []Row
	for _, p := range purchases {
		if p.PurchasedQty.Sign() <= 0 {
			continue
		}
		row, err := mapRow(p.PurchaseDate, p.Currency, p.PurchasePrice,
			p.PurchasedQty, p.PurchasedQty,
			company, prices, rates)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// mapRow values one holding: the initial, peak and closing rates are
// resolved sequentially for the acquisition date, then
//
//	initial = price × exercised × fxInitial
//	peak    = peakPrice × exercised × fxPeak
//	closing = yearEndPrice × held × fxClosing
func mapRow(on date.Date, currency string, price, exercised, held decimal.Decimal,
	company figi.Company, prices yahoo.Summary, rates RateResolver) (Row, error) {

	fxInitial, err := rates.Rate(fx.Initial, on, currency)
	if err != nil {
		return Row{}, err
	}
	fxPeak, err := rates.Rate(fx.Peak, on, currency)
	if err != nil {
		return Row{}, err
	}
	fxClosing, err := rates.Rate(fx.Closing, on, currency)
	if err != nil {
		return Row{}, err
	}

	return Row{
		CountryName:       company.CountryName,
		CountryCode:       company.CountryCode,
		NameOfEntity:      company.Name,
		AddressOfEntity:   company.Address,
		ZipCode:           company.ZipCode,
		NatureOfEntity:    NatureOfEntity,
		DateOfAcquisition: on,
		InitialValueINR:   price.Mul(exercised).Mul(decimal.NewFromFloat(fxInitial)),
		PeakValueINR:      prices.Peak.Mul(exercised).Mul(decimal.NewFromFloat(fxPeak)),
		ClosingValueINR:   prices.YearEnd.Mul(held).Mul(decimal.NewFromFloat(fxClosing)),
		Currency:          currency,
		SharesHeld:        held,
	}, nil
}
