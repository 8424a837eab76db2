// Package file2fa converts brokerage statements into Schedule FA
// disclosure rows.
//
// A statement arrives either as a PDF of positioned text fragments or as a
// CSV purchase export. The package reconstructs reading-order lines from
// fragments, extracts sell orders or purchase rows, and values each
// holding in INR using SBI TT buy exchange rates, trailing-year peak
// prices and the December 31 close.
package file2fa
