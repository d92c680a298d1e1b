package di

import (
	"testing"

	internalrepo "QuoteFrame/internal/repository"
	"QuoteFrame/pkg/config"
	applogger "QuoteFrame/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, doc string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	return cfg
}

func TestProvideCachesShareWindow(t *testing.T) {
	cfg := testConfig(t, "environment: test\ncache: {ttl: 1m, capacity: 2}\n")
	c := ProvideCaches(cfg)

	for _, k := range []string{"a", "b", "c"} {
		c.Tables.Set(k, nil)
	}
	assert.Equal(t, 2, c.Tables.Len())
	assert.Equal(t, 0, c.Quotes.Len())
	assert.Len(t, ProvideCachePurgers(c), 2)
}

func TestProvideQuoteProviderYahoo(t *testing.T) {
	cfg := testConfig(t, "environment: test\n")

	p, err := ProvideQuoteProvider(cfg, nil, applogger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &internalrepo.YahooProvider{}, p)
	assert.Equal(t, "yahoo", p.Name())
}

func TestProvideQuoteProviderClickHouseNeedsClient(t *testing.T) {
	cfg := testConfig(t, "environment: test\nprovider: {type: clickhouse}\n")

	_, err := ProvideQuoteProvider(cfg, nil, applogger.Nop())
	require.Error(t, err)
}

func TestOptionalInfrastructure(t *testing.T) {
	cfg := testConfig(t, "environment: test\n")

	ch, err := ProvideClickHouseClient(cfg)
	require.NoError(t, err)
	assert.Nil(t, ch)

	producer, err := ProvideKafkaProducer(cfg)
	require.NoError(t, err)
	assert.Nil(t, producer)
}

func TestProvideKafkaProducer(t *testing.T) {
	cfg := testConfig(t, "environment: test\nkafka: {brokers: ['localhost:9092'], batch_timeout: 10ms}\n")

	producer, err := ProvideKafkaProducer(cfg)
	require.NoError(t, err)
	require.NotNil(t, producer)
	assert.NoError(t, producer.Close())
}
