package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"QuoteFrame/internal/domain/models"
	"QuoteFrame/internal/domain/repository/mocks"
	"QuoteFrame/internal/usecase"
	"QuoteFrame/pkg/cache"
	"QuoteFrame/pkg/frame"
	xhttp "QuoteFrame/pkg/http"
	applogger "QuoteFrame/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const rangeQuery = "start=2024-01-01T00:00:00Z&end=2024-01-31T00:00:00Z"

func sample() []models.Quote {
	return []models.Quote{
		{Timestamp: 1704153600, Open: 10, High: 11, Low: 9, Close: 10, AdjClose: 10, Volume: 100},
		{Timestamp: 1704240000, Open: 11, High: 12, Low: 10, Close: math.NaN(), AdjClose: 11, Volume: 200},
	}
}

func newTestEcho(t *testing.T) (*echo.Echo, *mocks.MockQuoteProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockQuoteProvider(ctrl)
	provider.EXPECT().Name().Return("mock").AnyTimes()

	m := mocks.NewMockMetrics(ctrl)
	m.EXPECT().RecordCacheLookup(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().RecordUpstreamFetch(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().RecordError(gomock.Any()).AnyTimes()
	m.EXPECT().RecordRows(gomock.Any(), gomock.Any()).AnyTimes()

	svc := usecase.NewQuoteService(
		provider,
		cache.NewWindow[string, *frame.Table](),
		cache.NewWindow[string, []models.Quote](),
		m,
		applogger.Nop(),
	)

	e := echo.New()
	xhttp.Handlers{
		NewHealthEchoHandler("test", "mock"),
		NewQuotesEchoHandler(applogger.Nop(), svc),
	}.RegisterRoutes(e)
	return e, provider
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDataframeText(t *testing.T) {
	e, provider := newTestEcho(t)
	provider.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).Return(sample(), nil)

	rec := get(e, "/api/v1/dataframes/AAPL?columns=close&"+rangeQuery)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AAPL close")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
}

func TestDataframeJSON(t *testing.T) {
	e, provider := newTestEcho(t)
	provider.EXPECT().FetchHistory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sample(), nil).Times(2)

	rec := get(e, "/api/v1/dataframes?tickers=AAA,BBB&columns=close&format=json&"+rangeQuery)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Shape   [2]int `json:"shape"`
			Columns []struct {
				Name string `json:"name"`
			} `json:"columns"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, [2]int{2, 4}, body.Data.Shape)
	assert.Equal(t, "AAA date", body.Data.Columns[0].Name)
}

func TestMissingValueRoutes(t *testing.T) {
	e, provider := newTestEcho(t)
	provider.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).Return(sample(), nil).Times(1)

	for _, path := range []string{
		"/api/v1/dataframes/missing_values/AAPL",
		"/api/v1/dataframes/missing_values/count/AAPL",
		"/api/v1/dataframes/missing_values/percent/AAPL",
		"/api/v1/dataframes/normalized/AAPL",
	} {
		rec := get(e, path+"?"+rangeQuery)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := get(e, "/api/v1/dataframes/missing_values/count?tickers=AAPL&"+rangeQuery)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing count AAPL close")
}

func TestValidationErrors(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := get(e, "/api/v1/dataframes/AAPL?start=2024-01-01T00:00:00Z")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"end"`)

	rec = get(e, "/api/v1/dataframes/AAPL?format=csv&"+rangeQuery)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueryParseErrorIsBadRequest(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := get(e, "/api/v1/dataframes/AAPL?start=yesterday&end=2024-01-31T00:00:00Z")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "query_parse")
}

func TestUpstreamErrorIsBadGateway(t *testing.T) {
	e, provider := newTestEcho(t)
	provider.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	rec := get(e, "/api/v1/dataframes/AAPL?"+rangeQuery)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_UPSTREAM")
	assert.Contains(t, rec.Body.String(), "upstream_fetch")
}

func TestRawQuotes(t *testing.T) {
	e, provider := newTestEcho(t)
	provider.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).Return(sample(), nil)

	rec := get(e, "/api/v1/quotes/AAPL?"+rangeQuery)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []models.QuoteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, int64(1704153600), body.Data[0].Timestamp)
	assert.Nil(t, body.Data[1].Close)
	assert.Equal(t, uint64(200), body.Data[1].Volume)
}

func TestBusinessDaysRoute(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := get(e, "/api/v1/calendar/business_days?start=2024-01-05T00:00:00Z&end=2024-01-08T00:00:00Z")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"2024-01-05", "2024-01-08"}, body.Data)
}

func TestHealth(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := get(e, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"provider":"mock"`)

	assert.Equal(t, http.StatusOK, get(e, "/").Code)
}
