package handlers

//go:generate mockgen -source=convert.go -destination=convert_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Validator checks a decoded request body.
type Validator interface {
	Validate(body models.ConvertRequestBody) (models.ConversionRequest, error)
}

// Converter performs the conversion.
type Converter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResponse, error)
}

// NewConvertHandler handles currency conversion requests.
// @Summary Convert currency
// @Description Converts an amount between two currencies using one of two rate providers, falling back to the other on failure.
// @Tags currency
// @Accept json
// @Produce json
// @Param request body models.ConvertRequestBody true "Conversion request"
// @Success 200 {object} models.ConvertResponseBody "Converted amount"
// @Failure 400 {object} models.ErrorResponse "Invalid request or currency not available"
// @Failure 500 {object} models.ErrorResponse "Rate provider failure"
// @Router /currency/convert [post]
func NewConvertHandler(validator Validator, converter Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body models.ConvertRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.Log.Warnw("malformed conversion request", "err", err)
			writeError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		req, err := validator.Validate(body)
		if err != nil {
			writeConversionError(w, err)
			return
		}

		resp, err := converter.Convert(r.Context(), req)
		if err != nil {
			writeConversionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.NewConvertResponseBody(resp))
	}
}

// writeConversionError maps the error taxonomy onto status codes.
func writeConversionError(w http.ResponseWriter, err error) {
	var invalid *models.InvalidRequestError
	var provider *models.ProviderError

	switch {
	case errors.As(err, &invalid):
		logger.Log.Warnw("invalid conversion request", "err", err)
		writeError(w, http.StatusBadRequest, invalid.Message)
	case errors.As(err, &provider):
		logger.Log.Errorw("currency conversion failed", "err", err)
		writeError(w, http.StatusInternalServerError, provider.Message)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: message})
}
