package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte("environment: test\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, ProviderYahoo, c.Provider.Type)
	assert.Equal(t, 5*time.Minute, c.Cache.TTL)
	assert.Equal(t, 10, c.Cache.Capacity)
	assert.False(t, c.Cache.Coalesce)
	assert.Equal(t, "1d", c.Provider.Yahoo.Interval)
	assert.Equal(t, "/metrics", c.Metrics.Path)
}

func TestParseOverrides(t *testing.T) {
	c, err := Parse([]byte(`
environment: prod
cache:
  ttl: 30s
  capacity: 50
  coalesce: true
provider:
  type: clickhouse
  max_concurrency: 8
  clickhouse:
    host: ch
    database: market
`))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, c.Cache.TTL)
	assert.Equal(t, 50, c.Cache.Capacity)
	assert.True(t, c.Cache.Coalesce)
	assert.Equal(t, "market", c.Provider.ClickHouse.Database)
	assert.Equal(t, "quotes_daily", c.Provider.ClickHouse.Table)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"unknown provider":      "provider: {type: csv}",
		"bad port":              "server: {port: 70000}",
		"collector needs kafka": "logging: {collector: {enabled: true}}",
		"non positive capacity": "cache: {capacity: -1}",
		"non positive fanout":   "provider: {max_concurrency: -2}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadWithEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: dev\n"), 0o600))

	t.Setenv("QUOTEFRAME_ENV", "staging")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("YAHOO_BASE_URL", "http://localhost:1234")

	c, err := LoadWithEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", c.Environment)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, []string{"a:9092", "b:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "http://localhost:1234", c.Provider.Yahoo.BaseURL)
}

func TestLoadWithEnvBadPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: dev\n"), 0o600))
	t.Setenv("HTTP_PORT", "http")

	_, err := LoadWithEnv(path)
	require.Error(t, err)
}
