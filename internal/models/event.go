package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionEvent is published after a successful conversion.
type ConversionEvent struct {
	EventID    string          `json:"event_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Amount     decimal.Decimal `json:"amount"`
	Converted  decimal.Decimal `json:"converted"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewConversionEvent builds an event with a fresh id.
func NewConversionEvent(resp *ConversionResponse, at time.Time) ConversionEvent {
	return ConversionEvent{
		EventID:    uuid.NewString(),
		From:       resp.From,
		To:         resp.To,
		Amount:     resp.Amount,
		Converted:  resp.Converted,
		OccurredAt: at.UTC(),
	}
}
