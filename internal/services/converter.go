package services

//go:generate mockgen -source=converter.go -destination=converter_mock_test.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ExchangeRateAPIReader fetches a bilateral rate table scoped to one base currency.
type ExchangeRateAPIReader interface {
	GetRates(ctx context.Context, currency string) (*models.ExchangeRateQuote, error)
}

// CurrencyLayerReader fetches the full cross-rate table.
type CurrencyLayerReader interface {
	GetRates(ctx context.Context) (*models.CurrencyLayerQuote, error)
}

// ProviderSelector decides which provider is tried first.
type ProviderSelector interface {
	PickExchangeRateAPI() bool
}

// ConversionObserver receives attempt, fallback and outcome events.
type ConversionObserver interface {
	ObserveAttempt(provider models.Provider, err error)
	ObserveFallback(from, to models.Provider)
	ObserveConversion(provider models.Provider, err error)
}

// ConverterService converts amounts using one provider and falls back to the other once.
type ConverterService struct {
	exchangeRate  ExchangeRateAPIReader
	currencyLayer CurrencyLayerReader
	selector      ProviderSelector
	observer      ConversionObserver
}

// NewConverterService creates a new service instance
func NewConverterService(
	exchangeRate ExchangeRateAPIReader,
	currencyLayer CurrencyLayerReader,
	selector ProviderSelector,
	observer ConversionObserver,
) *ConverterService {
	return &ConverterService{
		exchangeRate:  exchangeRate,
		currencyLayer: currencyLayer,
		selector:      selector,
		observer:      observer,
	}
}

// Convert converts req.Amount into req.To.
//
// The starting provider is picked once per call. Any failure of the first
// attempt, whatever its kind, triggers exactly one attempt against the other
// provider; if that fails too, its error is returned unchanged and the first
// error is dropped.
func (svc *ConverterService) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResponse, error) {
	start := models.ProviderCurrencyLayer
	if svc.selector.PickExchangeRateAPI() {
		start = models.ProviderExchangeRateAPI
	}

	resp, provider, err := svc.attempt(ctx, req, start, true)
	svc.observer.ObserveConversion(provider, err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (svc *ConverterService) attempt(
	ctx context.Context,
	req models.ConversionRequest,
	provider models.Provider,
	allowFallback bool,
) (*models.ConversionResponse, models.Provider, error) {
	logger.Log.Infow("converting currency",
		"provider", provider, "from", req.From, "to", req.To, "fallback", !allowFallback)

	resp, err := svc.convertWith(ctx, req, provider)
	svc.observer.ObserveAttempt(provider, err)
	if err == nil {
		return resp, provider, nil
	}
	if !allowFallback {
		return nil, provider, err
	}

	other := provider.Other()
	logger.Log.Warnw("conversion attempt failed, falling back",
		"provider", provider, "fallback_provider", other, "error", err)
	svc.observer.ObserveFallback(provider, other)

	return svc.attempt(ctx, req, other, false)
}

func (svc *ConverterService) convertWith(
	ctx context.Context,
	req models.ConversionRequest,
	provider models.Provider,
) (*models.ConversionResponse, error) {
	quote, err := svc.fetch(ctx, req, provider)
	if err != nil {
		return nil, err
	}
	return calculateConversion(req, quote)
}

func (svc *ConverterService) fetch(
	ctx context.Context,
	req models.ConversionRequest,
	provider models.Provider,
) (models.RateQuote, error) {
	switch provider {
	case models.ProviderExchangeRateAPI:
		quote, err := svc.exchangeRate.GetRates(ctx, strings.ToUpper(req.From))
		if err != nil {
			return nil, err
		}
		if quote == nil {
			return nil, models.NewProviderError("Exchange Rate API returned an empty response", nil)
		}
		return quote, nil
	case models.ProviderCurrencyLayer:
		quote, err := svc.currencyLayer.GetRates(ctx)
		if err != nil {
			return nil, err
		}
		if quote == nil {
			return nil, models.NewProviderError("Currency Layer API returned an empty response", nil)
		}
		return quote, nil
	default:
		return nil, models.NewProviderError("unknown rate provider "+string(provider), nil)
	}
}

// calculateConversion locates the rate in quote and converts the amount.
func calculateConversion(req models.ConversionRequest, quote models.RateQuote) (*models.ConversionResponse, error) {
	rates := quote.Rates()
	if !quote.Succeeded() || rates == nil {
		logger.Log.Warnw("could not retrieve rates from provider",
			"provider", quote.Provider(), "error", quote.ErrorMessage())
		return nil, models.NewProviderError(quote.ErrorMessage(), nil)
	}

	key, err := rateKey(quote, req.From, req.To)
	if err != nil {
		return nil, err
	}

	rate, ok := rates[key]
	if !ok {
		logger.Log.Warnw("requested currency not available",
			"provider", quote.Provider(), "from", req.From, "to", req.To)
		return nil, models.NewInvalidRequestError("Requested currency not available. From: %s To: %s", req.From, req.To)
	}

	converted := req.Amount.Mul(rate).RoundBank(2)
	logger.Log.Infow("converted currency",
		"provider", quote.Provider(),
		"amount", req.Amount.String(), "from", req.From,
		"converted", converted.StringFixed(2), "to", req.To)

	return models.NewConversionResponse(req, converted), nil
}

// rateKey returns the lookup key for the quote's table layout.
func rateKey(quote models.RateQuote, from, to string) (string, error) {
	switch quote.(type) {
	case *models.ExchangeRateQuote:
		return strings.ToUpper(to), nil
	case *models.CurrencyLayerQuote:
		return strings.ToUpper(from) + strings.ToUpper(to), nil
	default:
		return "", models.NewProviderError("unsupported rate quote", nil)
	}
}
