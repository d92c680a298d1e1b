package repository

import (
	"fmt"
	"math"

	"QuoteFrame/internal/domain/models"
)

// yahooChartResponse is the subset of the Yahoo chart v8 payload we read.
// Yahoo reports gaps as JSON null, hence the pointer slices.
type yahooChartResponse struct {
	Chart struct {
		Result []yahooChartResult `json:"result"`
		Error  *yahooChartError   `json:"error"`
	} `json:"chart"`
}

type yahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type yahooChartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*uint64  `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// quotes flattens the chart into one Quote per timestamp.
func (r *yahooChartResponse) quotes() ([]models.Quote, error) {
	if e := r.Chart.Error; e != nil {
		return nil, fmt.Errorf("yahoo chart error %s: %s", e.Code, e.Description)
	}
	if len(r.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart: empty result")
	}

	res := r.Chart.Result[0]
	out := make([]models.Quote, len(res.Timestamp))
	if len(out) == 0 {
		return out, nil
	}
	if len(res.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart: %d timestamps without quote indicators", len(res.Timestamp))
	}

	q := res.Indicators.Quote[0]
	var adj []*float64
	if len(res.Indicators.AdjClose) > 0 {
		adj = res.Indicators.AdjClose[0].AdjClose
	}

	for i, ts := range res.Timestamp {
		out[i] = models.Quote{
			Timestamp: ts,
			Open:      floatAt(q.Open, i),
			High:      floatAt(q.High, i),
			Low:       floatAt(q.Low, i),
			Close:     floatAt(q.Close, i),
			Volume:    uintAt(q.Volume, i),
			AdjClose:  floatAt(adj, i),
		}
	}
	return out, nil
}

func floatAt(vs []*float64, i int) float64 {
	if i >= len(vs) || vs[i] == nil {
		return math.NaN()
	}
	return *vs[i]
}

func uintAt(vs []*uint64, i int) uint64 {
	if i >= len(vs) || vs[i] == nil {
		return 0
	}
	return *vs[i]
}
