package models

import "github.com/shopspring/decimal"

// ConversionRequest is a validated request to convert Amount from one currency to another.
type ConversionRequest struct {
	From   string          // Source currency code, e.g. EUR
	To     string          // Target currency code, e.g. USD
	Amount decimal.Decimal // Amount in the source currency
}

// ConversionResponse is the result of a successful conversion.
type ConversionResponse struct {
	From      string
	To        string
	Amount    decimal.Decimal
	Converted decimal.Decimal // Always rounded half-to-even to 2 fractional digits
}

// NewConversionResponse copies the request fields and sets the converted amount.
func NewConversionResponse(req ConversionRequest, converted decimal.Decimal) *ConversionResponse {
	return &ConversionResponse{
		From:      req.From,
		To:        req.To,
		Amount:    req.Amount,
		Converted: converted,
	}
}
