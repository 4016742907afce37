package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ConvertRequestBody represents the JSON body for a currency conversion
// swagger:model ConvertRequestBody
type ConvertRequestBody struct {
	// Source currency
	// required: true
	// example: EUR
	From *string `json:"from" validate:"required,len=3" example:"EUR"`

	// Target currency
	// required: true
	// example: USD
	To *string `json:"to" validate:"required,len=3" example:"USD"`

	// Amount to convert
	// required: true
	// example: 10
	Amount *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number" example:"10"`
}

// ConvertResponseBody represents a successful conversion
// swagger:model ConvertResponseBody
type ConvertResponseBody struct {
	From      string      `json:"from" example:"EUR"`
	To        string      `json:"to" example:"USD"`
	Amount    json.Number `json:"amount" swaggertype:"number" example:"10"`
	Converted json.Number `json:"converted" swaggertype:"number" example:"12.00"`
}

// NewConvertResponseBody renders a ConversionResponse; converted always keeps two fractional digits.
func NewConvertResponseBody(resp *ConversionResponse) ConvertResponseBody {
	return ConvertResponseBody{
		From:      resp.From,
		To:        resp.To,
		Amount:    json.Number(resp.Amount.String()),
		Converted: json.Number(resp.Converted.StringFixed(2)),
	}
}

// ErrorResponse represents an error payload
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Requested currency not available. From: USD To: TRY
	Message string `json:"message"`
}
