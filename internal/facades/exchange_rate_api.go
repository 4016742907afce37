package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ExchangeRateAPIFacade fetches bilateral rate tables from ExchangeRate-API.
// Each call is scoped to one base currency passed as a path parameter.
type ExchangeRateAPIFacade struct {
	client  *http.Client
	baseURL string
}

// NewExchangeRateAPIFacade creates a new facade for the given base URL,
// e.g. https://api.exchangerate-api.com/v4/latest.
func NewExchangeRateAPIFacade(client *http.Client, baseURL string) *ExchangeRateAPIFacade {
	return &ExchangeRateAPIFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetRates fetches all rates relative to the given base currency.
func (f *ExchangeRateAPIFacade) GetRates(ctx context.Context, currency string) (*models.ExchangeRateQuote, error) {
	endpoint := f.baseURL + "/" + url.PathEscape(currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewProviderError("Exchange Rate API request could not be created", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("exchange rate api call failed", "currency", currency, "error", err)
		return nil, models.NewProviderError(fmt.Sprintf("Exchange Rate API call failed: %v", err), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		logger.Log.Warnw("exchange rate api returned server error", "currency", currency, "status", resp.StatusCode)
		return nil, models.NewProviderError("Internal Server Error: Exchange Rate API call failed", nil)
	case resp.StatusCode >= http.StatusBadRequest:
		var quote models.ExchangeRateQuote
		_ = json.NewDecoder(resp.Body).Decode(&quote)
		logger.Log.Warnw("exchange rate api rejected request",
			"currency", currency, "status", resp.StatusCode, "error_type", quote.ErrorType)
		return nil, models.NewInvalidRequestError("Invalid currency rate request: %s", quote.ErrorType)
	}

	var quote models.ExchangeRateQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		logger.Log.Errorw("failed to decode exchange rate api response", "currency", currency, "error", err)
		return nil, models.NewProviderError("Exchange Rate API returned a malformed response", err)
	}

	return &quote, nil
}
