package facades

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const currencyLayerCallFailed = "Currency Layer API call failed"

// CurrencyLayerFacade fetches the full cross-rate table from CurrencyLayer.
type CurrencyLayerFacade struct {
	client    *http.Client
	endpoint  string
	accessKey string
}

// NewCurrencyLayerFacade creates a new facade for the "live" endpoint.
func NewCurrencyLayerFacade(client *http.Client, endpoint, accessKey string) *CurrencyLayerFacade {
	return &CurrencyLayerFacade{
		client:    client,
		endpoint:  endpoint,
		accessKey: accessKey,
	}
}

// GetRates fetches the whole table. Quotes are keyed as BASE+QUOTE.
func (f *CurrencyLayerFacade) GetRates(ctx context.Context) (*models.CurrencyLayerQuote, error) {
	endpoint, err := f.url()
	if err != nil {
		return nil, models.NewProviderError(currencyLayerCallFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewProviderError(currencyLayerCallFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("currency layer api call failed", "error", err)
		return nil, models.NewProviderError(currencyLayerCallFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Log.Warnw("currency layer api call failed", "status", resp.StatusCode, "body", string(body))
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, models.NewProviderError(currencyLayerCallFailed, nil)
		}
		return nil, models.NewInvalidRequestError(currencyLayerCallFailed)
	}

	var quote models.CurrencyLayerQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		logger.Log.Errorw("failed to decode currency layer response", "error", err)
		return nil, models.NewProviderError("Currency Layer API returned a malformed response", err)
	}

	return &quote, nil
}

func (f *CurrencyLayerFacade) url() (string, error) {
	u, err := url.Parse(f.endpoint)
	if err != nil {
		return "", err
	}
	if f.accessKey != "" {
		q := u.Query()
		q.Set("access_key", f.accessKey)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
