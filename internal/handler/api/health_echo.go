package api

import (
	xhttp "QuoteFrame/pkg/http"

	"github.com/labstack/echo/v4"
)

// HealthEchoHandler serves liveness endpoints.
type HealthEchoHandler struct {
	environment string
	provider    string
}

func NewHealthEchoHandler(environment, provider string) *HealthEchoHandler {
	return &HealthEchoHandler{environment: environment, provider: provider}
}

func (h *HealthEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
}

func (h *HealthEchoHandler) Root(c echo.Context) error {
	return xhttp.TextResponse(c, "QuoteFrame is running")
}

func (h *HealthEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, xhttp.HealthResponse{
		Status:      "ok",
		Environment: h.environment,
		Provider:    h.provider,
	})
}
