package models

import "errors"

// Error kinds surfaced by the quote service. Callers match them with errors.Is.
var (
	// ErrQueryParse marks malformed request input.
	ErrQueryParse = errors.New("query parse error")
	// ErrUpstreamFetch marks a failed call to the quote provider.
	ErrUpstreamFetch = errors.New("upstream fetch error")
	// ErrJoin marks an impossible combination of per-ticker tables.
	ErrJoin = errors.New("join error")
	// ErrNoData is returned when there is nothing to combine.
	ErrNoData = errors.New("no data")
)
