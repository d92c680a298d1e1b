package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteSchema(t *testing.T) {
	stmts := QuoteSchema("quoteframe", DefaultQuoteTable)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE DATABASE IF NOT EXISTS quoteframe", stmts[0])
	assert.True(t, strings.HasPrefix(stmts[1], "CREATE TABLE IF NOT EXISTS quoteframe.quotes_daily"))
	for _, col := range []string{"ticker", "ts", "open", "high", "low", "close", "volume", "adjclose"} {
		assert.Contains(t, stmts[1], col)
	}
}
