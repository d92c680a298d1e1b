package models

import (
	"math"
	"time"
)

// Quote is one daily OHLCV sample as delivered by a quote provider.
// Timestamp is in seconds since the Unix epoch. A missing price is NaN.
type Quote struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    uint64
	AdjClose  float64
}

// Time returns the sample instant in UTC.
func (q Quote) Time() time.Time {
	return time.Unix(q.Timestamp, 0).UTC()
}

// QuoteResponse is the JSON shape of a raw quote. NaN prices are encoded as null.
type QuoteResponse struct {
	Timestamp int64    `json:"timestamp"`
	Open      *float64 `json:"open"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	Close     *float64 `json:"close"`
	Volume    uint64   `json:"volume"`
	AdjClose  *float64 `json:"adjclose"`
}

// NewQuoteResponse converts a quote for the wire.
func NewQuoteResponse(q Quote) QuoteResponse {
	return QuoteResponse{
		Timestamp: q.Timestamp,
		Open:      finite(q.Open),
		High:      finite(q.High),
		Low:       finite(q.Low),
		Close:     finite(q.Close),
		Volume:    q.Volume,
		AdjClose:  finite(q.AdjClose),
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
