package http

// APIResponse is the JSON envelope of every non-text response.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"start"`
	Message string                 `json:"message,omitempty" example:"Start is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment,omitempty"`
	Provider    string `json:"provider,omitempty"`
}
