package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a", r.URL.Query().Get("q"))
		assert.Equal(t, "test", r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, `{"value":42}`)
	}))
	defer srv.Close()

	var out struct {
		Value int `json:"value"`
	}
	err := NewClient().SendAndParse(context.Background(), &RequestOptions{
		Method:      MethodGet,
		URL:         srv.URL,
		Headers:     map[string]string{"User-Agent": "test"},
		QueryParams: map[string][]string{"q": {"a"}},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)
}

func TestSendAndParseStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewClient().SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: srv.URL}, nil)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Contains(t, se.Body, "nope")
}
