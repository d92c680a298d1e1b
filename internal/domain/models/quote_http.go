package models

// Requests for quote HTTP endpoints. Defined in domain for consistency and reuse.

// QuoteQuery selects tickers, a time range and optionally a column projection.
// Ticker is filled from the path on /:ticker routes and is used when Tickers is empty.
type QuoteQuery struct {
	Ticker  string `param:"ticker" json:"-"`
	Tickers string `query:"tickers" json:"tickers"`
	Start   string `query:"start" json:"start" validate:"required"`
	End     string `query:"end" json:"end" validate:"required"`
	Columns string `query:"columns" json:"columns,omitempty"`
	Format  string `query:"format" json:"format" default:"text" validate:"oneof=text json"`
}

// BusinessDaysQuery is the request for the business day calendar.
type BusinessDaysQuery struct {
	Start string `query:"start" json:"start" validate:"required"`
	End   string `query:"end" json:"end" validate:"required"`
}
