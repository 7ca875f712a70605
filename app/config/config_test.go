package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestKafkaVersion(t *testing.T) {
	pubCfg := defaultPublicationConfig()
	version, err := sarama.ParseKafkaVersion(pubCfg.KafkaVersion)
	require.Nil(t, err)
	require.True(t, version.IsAtLeast(sarama.V1_0_0_0), "default publisher setting is not compatible with current kafka setting")
}

func TestWriteAndParseAppConfig(t *testing.T) {
	home, err := ioutil.TempDir("", "marketd")
	require.Nil(t, err)
	defer os.RemoveAll(home)
	require.Nil(t, os.MkdirAll(filepath.Join(home, "config"), 0755))

	written := DefaultMarketConfig()
	written.ListingAuthorityCacheSize = 42
	written.PublishListingSold = true
	written.ListingTopic = "sales"
	written.APIConfig.Enabled = true
	written.APIConfig.RequestsPerSecond = 7
	require.Nil(t, WriteConfigFile(filepath.Join(home, "config", AppConfigFileName+".toml"), written))

	viper.Set("home", home)
	defer viper.Set("home", "")
	ctx := NewDefaultContext()
	require.Nil(t, ctx.ParseAppConfigInPlace())

	require.Equal(t, 42, ctx.ListingAuthorityCacheSize)
	require.Equal(t, written.AccountCacheSize, ctx.AccountCacheSize)
	require.True(t, ctx.PublishListingSold)
	require.False(t, ctx.PublishListingCreated)
	require.Equal(t, "sales", ctx.ListingTopic)
	require.True(t, ctx.APIConfig.Enabled)
	require.Equal(t, 7, ctx.APIConfig.RequestsPerSecond)
	require.True(t, ctx.LogToConsole)
}

func TestValidate(t *testing.T) {
	cfg := DefaultMarketConfig()
	require.Nil(t, cfg.Validate())

	cfg.ListingAuthorityCacheSize = 0
	require.NotNil(t, cfg.Validate())

	cfg = DefaultMarketConfig()
	cfg.PublishKafka = true
	cfg.KafkaVersion = "not-a-version"
	require.NotNil(t, cfg.Validate())

	cfg = DefaultMarketConfig()
	cfg.APIConfig.RequestsPerSecond = -1
	require.NotNil(t, cfg.Validate())
}

func TestToPublish(t *testing.T) {
	pubCfg := defaultPublicationConfig()
	require.False(t, pubCfg.ShouldPublishAny())
	require.False(t, pubCfg.ToPublish())

	pubCfg.PublishListingCanceled = true
	require.True(t, pubCfg.PublishListings())
	require.False(t, pubCfg.ToPublish(), "no sink configured")

	pubCfg.PublishLocal = true
	require.True(t, pubCfg.ToPublish())
}
