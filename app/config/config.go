package config

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/Shopify/sarama"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/cosmos/cosmos-sdk/server"
	tmcfg "github.com/tendermint/tendermint/config"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	bnclog "github.com/bnb-chain/nft-market/common/log"
)

const AppConfigFileName = "app"

var appConfigTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("appConfigFileTemplate")
	if appConfigTemplate, err = tmpl.Parse(defaultAppConfigTemplate); err != nil {
		panic(err)
	}
}

const defaultAppConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

##### main base config options #####
[base]
# Number of account entries kept in the in-memory account store cache
accountCacheSize = {{ .BaseConfig.AccountCacheSize }}
# Number of (seller, collection, asset) to listing authority derivations kept in memory
listingAuthorityCacheSize = {{ .BaseConfig.ListingAuthorityCacheSize }}

[log]
# Write logs to console instead of file
logToConsole = {{ .LogConfig.LogToConsole }}
## The below parameters take effect only when logToConsole is false
# Log file root, if not set, use home path
logFileRoot = "{{ .LogConfig.LogFileRoot }}"
# Log file path relative to log file root path
logFilePath = "{{ .LogConfig.LogFilePath }}"
# Maximum size in megabytes of a log file before it gets rotated
logMaxSize = {{ .LogConfig.LogMaxSize }}
# Number of rotated log files to keep
logMaxBackups = {{ .LogConfig.LogMaxBackups }}
# Days to keep rotated log files
logMaxAge = {{ .LogConfig.LogMaxAge }}

[publication]
# configurations ends with Kafka can be a semi-colon separated host-port list
# Whether we want publish listing creations
publishListingCreated = {{ .PublicationConfig.PublishListingCreated }}
# Whether we want publish settled sales
publishListingSold = {{ .PublicationConfig.PublishListingSold }}
# Whether we want publish listing cancellations
publishListingCanceled = {{ .PublicationConfig.PublishListingCanceled }}
listingTopic = "{{ .PublicationConfig.ListingTopic }}"
listingKafka = "{{ .PublicationConfig.ListingKafka }}"

# Whether we want publish collection creations
publishCollection = {{ .PublicationConfig.PublishCollection }}
collectionTopic = "{{ .PublicationConfig.CollectionTopic }}"
collectionKafka = "{{ .PublicationConfig.CollectionKafka }}"

# Global setting
publicationChannelSize = {{ .PublicationConfig.PublicationChannelSize }}
publishKafka = {{ .PublicationConfig.PublishKafka }}
kafkaVersion = "{{ .PublicationConfig.KafkaVersion }}"
kafkaUserName = "{{ .PublicationConfig.KafkaUserName }}"
kafkaPassword = "{{ .PublicationConfig.KafkaPassword }}"

# publish events to local json file, files are rotated and compressed
publishLocal = {{ .PublicationConfig.PublishLocal }}
# max size in megabytes of marketdata json file
localMaxSize = {{ .PublicationConfig.LocalMaxSize }}
# max days of marketdata json files to keep
localMaxAge = {{ .PublicationConfig.LocalMaxAge }}

[api]
# Serve the REST api from the node process
enabled = {{ .APIConfig.Enabled }}
address = "{{ .APIConfig.Address }}"
# Requests served per second, 0 for no limit
requestsPerSecond = {{ .APIConfig.RequestsPerSecond }}
`

type MarketContext struct {
	server.Context
	*viper.Viper
	*MarketConfig
}

func NewDefaultContext() *MarketContext {
	return &MarketContext{
		server.Context{
			Config: tmcfg.DefaultConfig(),
			Logger: bnclog.NewConsoleLogger(),
		},
		viper.New(),
		DefaultMarketConfig(),
	}
}

func (context *MarketContext) ToCosmosServerCtx() *server.Context {
	return &context.Context
}

// ParseAppConfigInPlace reads app.toml under home/config into the context.
func (context *MarketContext) ParseAppConfigInPlace() error {
	home := viper.GetString("home")
	context.Viper.SetConfigName(AppConfigFileName)
	context.Viper.AddConfigPath(home)
	context.Viper.AddConfigPath(filepath.Join(home, "config"))
	if err := context.Viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "failed to read app config")
	}
	if err := context.Viper.Unmarshal(context.MarketConfig); err != nil {
		return errors.Wrap(err, "failed to parse app config")
	}
	if _, err := tmflags.ParseLogLevel(context.Config.LogLevel, log.NewNopLogger(), tmcfg.DefaultLogLevel()); err != nil {
		return errors.Wrapf(err, "invalid log level %q", context.Config.LogLevel)
	}
	return context.MarketConfig.Validate()
}

type MarketConfig struct {
	*BaseConfig        `mapstructure:"base"`
	*LogConfig         `mapstructure:"log"`
	*PublicationConfig `mapstructure:"publication"`
	*APIConfig         `mapstructure:"api"`
}

func DefaultMarketConfig() *MarketConfig {
	return &MarketConfig{
		BaseConfig:        defaultBaseConfig(),
		LogConfig:         defaultLogConfig(),
		PublicationConfig: defaultPublicationConfig(),
		APIConfig:         defaultAPIConfig(),
	}
}

func (cfg *MarketConfig) Validate() error {
	if cfg.AccountCacheSize <= 0 {
		return errors.Errorf("accountCacheSize must be positive, got %d", cfg.AccountCacheSize)
	}
	if cfg.ListingAuthorityCacheSize <= 0 {
		return errors.Errorf("listingAuthorityCacheSize must be positive, got %d", cfg.ListingAuthorityCacheSize)
	}
	if cfg.PublicationChannelSize <= 0 {
		return errors.Errorf("publicationChannelSize must be positive, got %d", cfg.PublicationChannelSize)
	}
	if cfg.PublishKafka {
		if _, err := sarama.ParseKafkaVersion(cfg.KafkaVersion); err != nil {
			return errors.Wrap(err, "invalid kafkaVersion")
		}
	}
	if cfg.APIConfig.RequestsPerSecond < 0 {
		return errors.Errorf("api requestsPerSecond must not be negative, got %d", cfg.APIConfig.RequestsPerSecond)
	}
	return nil
}

type BaseConfig struct {
	AccountCacheSize          int `mapstructure:"accountCacheSize"`
	ListingAuthorityCacheSize int `mapstructure:"listingAuthorityCacheSize"`
}

func defaultBaseConfig() *BaseConfig {
	return &BaseConfig{
		AccountCacheSize:          30000,
		ListingAuthorityCacheSize: 10000,
	}
}

type LogConfig struct {
	LogToConsole  bool   `mapstructure:"logToConsole"`
	LogFileRoot   string `mapstructure:"logFileRoot"`
	LogFilePath   string `mapstructure:"logFilePath"`
	LogMaxSize    int    `mapstructure:"logMaxSize"`
	LogMaxBackups int    `mapstructure:"logMaxBackups"`
	LogMaxAge     int    `mapstructure:"logMaxAge"`
}

func defaultLogConfig() *LogConfig {
	return &LogConfig{
		LogToConsole:  true,
		LogFileRoot:   "",
		LogFilePath:   "marketd.log",
		LogMaxSize:    100,
		LogMaxBackups: 10,
		LogMaxAge:     7,
	}
}

type PublicationConfig struct {
	PublishListingCreated  bool   `mapstructure:"publishListingCreated"`
	PublishListingSold     bool   `mapstructure:"publishListingSold"`
	PublishListingCanceled bool   `mapstructure:"publishListingCanceled"`
	ListingTopic           string `mapstructure:"listingTopic"`
	ListingKafka           string `mapstructure:"listingKafka"`

	PublishCollection bool   `mapstructure:"publishCollection"`
	CollectionTopic   string `mapstructure:"collectionTopic"`
	CollectionKafka   string `mapstructure:"collectionKafka"`

	PublicationChannelSize int `mapstructure:"publicationChannelSize"`

	PublishKafka  bool   `mapstructure:"publishKafka"`
	KafkaVersion  string `mapstructure:"kafkaVersion"`
	KafkaUserName string `mapstructure:"kafkaUserName"`
	KafkaPassword string `mapstructure:"kafkaPassword"`

	PublishLocal bool `mapstructure:"publishLocal"`
	LocalMaxSize int  `mapstructure:"localMaxSize"`
	LocalMaxAge  int  `mapstructure:"localMaxAge"`
}

func defaultPublicationConfig() *PublicationConfig {
	return &PublicationConfig{
		PublishListingCreated:  false,
		PublishListingSold:     false,
		PublishListingCanceled: false,
		ListingTopic:           "listings",
		ListingKafka:           "127.0.0.1:9092",

		PublishCollection: false,
		CollectionTopic:   "collections",
		CollectionKafka:   "127.0.0.1:9092",

		PublicationChannelSize: 10000,

		PublishKafka: false,
		KafkaVersion: "2.1.0",

		PublishLocal: false,
		LocalMaxSize: 1024,
		LocalMaxAge:  7,
	}
}

func (pubCfg PublicationConfig) PublishListings() bool {
	return pubCfg.PublishListingCreated || pubCfg.PublishListingSold || pubCfg.PublishListingCanceled
}

func (pubCfg PublicationConfig) ShouldPublishAny() bool {
	return pubCfg.PublishListings() || pubCfg.PublishCollection
}

// ToPublish reports whether any enabled event kind has a sink to go to.
func (pubCfg PublicationConfig) ToPublish() bool {
	return pubCfg.ShouldPublishAny() && (pubCfg.PublishKafka || pubCfg.PublishLocal)
}

type APIConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	Address           string `mapstructure:"address"`
	RequestsPerSecond int    `mapstructure:"requestsPerSecond"`
}

func defaultAPIConfig() *APIConfig {
	return &APIConfig{
		Enabled:           false,
		Address:           "tcp://0.0.0.0:8080",
		RequestsPerSecond: 100,
	}
}

// WriteConfigFile renders config using the template and writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *MarketConfig) error {
	var buffer bytes.Buffer
	if err := appConfigTemplate.Execute(&buffer, config); err != nil {
		return errors.Wrap(err, "failed to render app config")
	}
	return cmn.WriteFile(configFilePath, buffer.Bytes(), 0644)
}

// DefaultHome returns $HOME/<dir>, falling back to the working directory when home is unknown.
func DefaultHome(dir string) string {
	home, err := homedir.Dir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, dir)
}
