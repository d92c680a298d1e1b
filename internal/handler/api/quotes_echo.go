package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"QuoteFrame/internal/domain/models"
	"QuoteFrame/internal/usecase"
	"QuoteFrame/pkg/frame"
	xhttp "QuoteFrame/pkg/http"
	applogger "QuoteFrame/pkg/logger"
	"QuoteFrame/pkg/util"

	"github.com/labstack/echo/v4"
)

const formatJSON = "json"

// QuoteService is what the HTTP layer needs from usecase.QuoteService.
type QuoteService interface {
	Table(ctx context.Context, q models.QuoteQuery) (*frame.Table, error)
	MissingMask(ctx context.Context, q models.QuoteQuery) (*frame.Table, error)
	MissingCount(ctx context.Context, q models.QuoteQuery) (*frame.Table, error)
	MissingPercent(ctx context.Context, q models.QuoteQuery) (*frame.Table, error)
	Normalized(ctx context.Context, q models.QuoteQuery) (*frame.Table, error)
	Quotes(ctx context.Context, q models.QuoteQuery) ([]models.Quote, error)
	BusinessDays(q models.BusinessDaysQuery) ([]time.Time, error)
}

var _ QuoteService = (*usecase.QuoteService)(nil)

type tableFunc func(ctx context.Context, q models.QuoteQuery) (*frame.Table, error)

// QuotesEchoHandler serves quote tables and their missing value profiles.
type QuotesEchoHandler struct {
	logger *applogger.Logger
	svc    QuoteService
}

func NewQuotesEchoHandler(logger *applogger.Logger, svc QuoteService) *QuotesEchoHandler {
	return &QuotesEchoHandler{logger: logger, svc: svc}
}

func (h *QuotesEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.GET("/quotes/:ticker", h.Quotes)

	df := g.Group("/dataframes")
	h.tableRoutes(df, "", h.svc.Table)
	h.tableRoutes(df, "/missing_values", h.svc.MissingMask)
	h.tableRoutes(df, "/missing_values/count", h.svc.MissingCount)
	h.tableRoutes(df, "/missing_values/percent", h.svc.MissingPercent)
	h.tableRoutes(df, "/normalized", h.svc.Normalized)

	g.GET("/calendar/business_days", h.BusinessDays)
}

// tableRoutes registers prefix and prefix/:ticker. Static segments win over
// :ticker in echo's router, so /dataframes/normalized is never a ticker.
func (h *QuotesEchoHandler) tableRoutes(g *echo.Group, prefix string, fn tableFunc) {
	handler := h.table(fn)
	if prefix == "" {
		g.GET("", handler)
	} else {
		g.GET(prefix, handler)
	}
	g.GET(prefix+"/:ticker", handler)
}

func (h *QuotesEchoHandler) table(fn tableFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := &models.QuoteQuery{}
		if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
			return xhttp.BadRequestResponse(c, verr)
		}

		t, err := fn(c.Request().Context(), *req)
		if err != nil {
			return h.errorResponse(c, err)
		}
		if req.Format == formatJSON {
			return xhttp.SuccessResponse(c, t)
		}
		return xhttp.TextResponse(c, t.String())
	}
}

// Quotes returns the raw history of one ticker as JSON records.
func (h *QuotesEchoHandler) Quotes(c echo.Context) error {
	req := &models.QuoteQuery{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	req.Tickers = ""

	qs, err := h.svc.Quotes(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	out := make([]models.QuoteResponse, len(qs))
	for i, q := range qs {
		out[i] = models.NewQuoteResponse(q)
	}
	return xhttp.SuccessResponse(c, out)
}

// BusinessDays lists the weekdays between start and end as YYYY-MM-DD.
func (h *QuotesEchoHandler) BusinessDays(c echo.Context) error {
	req := &models.BusinessDaysQuery{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	days, err := h.svc.BusinessDays(*req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = util.FormatDate(d)
	}
	return xhttp.SuccessResponse(c, out)
}

func (h *QuotesEchoHandler) errorResponse(c echo.Context, err error) error {
	kind := usecase.ErrorKind(err)
	var appErr *xhttp.AppError
	switch {
	case errors.Is(err, models.ErrQueryParse):
		appErr = xhttp.BadRequestError(err.Error())
	case errors.Is(err, models.ErrUpstreamFetch):
		appErr = xhttp.BadGatewayError(err.Error())
	default:
		appErr = xhttp.InternalError(err.Error())
	}
	if appErr.Status >= http.StatusInternalServerError {
		h.logger.Error("quotes handler error",
			applogger.String("path", c.Path()),
			applogger.String("kind", kind),
			applogger.Error(err),
		)
	}
	return xhttp.AppErrorResponse(c, appErr.WithError(err).WithParam("kind", kind))
}
