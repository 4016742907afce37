package models

import "github.com/shopspring/decimal"

// Provider identifies an upstream rate provider.
type Provider string

// Supported rate providers
const (
	ProviderExchangeRateAPI Provider = "exchange_rate_api" // bilateral table, one base per call
	ProviderCurrencyLayer   Provider = "currency_layer"    // cross table, BASE+QUOTE keys
)

// Other returns the alternate provider.
func (p Provider) Other() Provider {
	if p == ProviderExchangeRateAPI {
		return ProviderCurrencyLayer
	}
	return ProviderExchangeRateAPI
}

// RateQuote is a normalized view over a provider response.
// The set of implementations is closed: ExchangeRateQuote and CurrencyLayerQuote.
type RateQuote interface {
	Provider() Provider
	Rates() map[string]decimal.Decimal
	ErrorMessage() string
	Succeeded() bool

	rateQuote()
}

// ExchangeRateQuote is the ExchangeRate-API response.
// Rates are keyed by bare target currency; the base is the currency that was requested.
type ExchangeRateQuote struct {
	Date            string                     `json:"date,omitempty"`
	TimeLastUpdated int64                      `json:"time_last_updated,omitempty"`
	Result          string                     `json:"result,omitempty"`
	ErrorType       string                     `json:"error-type,omitempty"`
	ConversionRates map[string]decimal.Decimal `json:"rates"`
}

func (q *ExchangeRateQuote) Provider() Provider { return ProviderExchangeRateAPI }

func (q *ExchangeRateQuote) Rates() map[string]decimal.Decimal { return q.ConversionRates }

func (q *ExchangeRateQuote) ErrorMessage() string { return q.ErrorType }

// Succeeded reports false only when the upstream explicitly returned result=error.
func (q *ExchangeRateQuote) Succeeded() bool { return q.Result != "error" }

func (q *ExchangeRateQuote) rateQuote() {}

// CurrencyLayerError is the error object embedded in a CurrencyLayer response.
type CurrencyLayerError struct {
	Code int    `json:"code,omitempty"`
	Info string `json:"info"`
}

// CurrencyLayerQuote is the CurrencyLayer "live" response.
// Quotes are keyed by concatenated BASE+QUOTE codes, e.g. USDEUR.
type CurrencyLayerQuote struct {
	Success   bool                       `json:"success"`
	Timestamp int64                      `json:"timestamp,omitempty"`
	Source    string                     `json:"source,omitempty"`
	Quotes    map[string]decimal.Decimal `json:"quotes"`
	Error     *CurrencyLayerError        `json:"error,omitempty"`
}

func (q *CurrencyLayerQuote) Provider() Provider { return ProviderCurrencyLayer }

func (q *CurrencyLayerQuote) Rates() map[string]decimal.Decimal { return q.Quotes }

func (q *CurrencyLayerQuote) ErrorMessage() string {
	if q.Error == nil {
		return ""
	}
	return q.Error.Info
}

func (q *CurrencyLayerQuote) Succeeded() bool { return q.Success }

func (q *CurrencyLayerQuote) rateQuote() {}
