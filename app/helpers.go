package app

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tmcmd "github.com/tendermint/tendermint/cmd/tendermint/commands"
	tmcfg "github.com/tendermint/tendermint/config"
	"github.com/tendermint/tendermint/crypto/tmhash"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/app/config"
	bnclog "github.com/bnb-chain/nft-market/common/log"
	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/version"
)

// If a new config is created, change some of the default tendermint settings
func interceptLoadConfigInPlace(context *config.MarketContext) (err error) {
	tmpConf := tmcfg.DefaultConfig()
	err = viper.Unmarshal(tmpConf)
	if err != nil {
		return err
	}
	rootDir := tmpConf.RootDir
	configFilePath := filepath.Join(rootDir, "config/config.toml")
	// Intercept only if the file doesn't already exist

	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		// the following parse config is needed to create directories
		conf, err := tmcmd.ParseConfig()
		if err != nil {
			return err
		}
		conf.ProfListenAddress = "localhost:6060"
		conf.Consensus.TimeoutCommit = 0
		tmcfg.WriteConfigFile(configFilePath, conf)
		// Fall through, just so that its parsed into memory.
	}
	context.Config, err = tmcmd.ParseConfig()
	if err != nil {
		return err
	}

	appConfigFilePath := filepath.Join(rootDir, "config/", config.AppConfigFileName+".toml")
	if _, err := os.Stat(appConfigFilePath); os.IsNotExist(err) {
		return config.WriteConfigFile(appConfigFilePath, context.MarketConfig)
	}
	return context.ParseAppConfigInPlace()
}

func newLogger(ctx *config.MarketContext) log.Logger {
	if ctx.LogConfig.LogToConsole {
		return bnclog.NewConsoleLogger()
	}
	logFilePath := ""
	if ctx.LogConfig.LogFileRoot == "" {
		logFilePath = path.Join(ctx.Config.RootDir, ctx.LogConfig.LogFilePath)
	} else {
		logFilePath = path.Join(ctx.LogConfig.LogFileRoot, ctx.LogConfig.LogFilePath)
	}
	err := cmn.EnsureDir(path.Dir(logFilePath), 0755)
	if err != nil {
		panic(fmt.Sprintf("create log dir failed, err=%s", err.Error()))
	}
	return bnclog.NewRollingFileLogger(logFilePath, ctx.LogConfig.LogMaxSize, ctx.LogConfig.LogMaxBackups, ctx.LogConfig.LogMaxAge)
}

// PersistentPreRunEFn returns a PersistentPreRunE function for cobra
// that initailizes the passed in context with a properly configured
// logger and config object
func PersistentPreRunEFn(context *config.MarketContext) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == version.VersionCmd.Name() {
			return nil
		}
		err := interceptLoadConfigInPlace(context)
		if err != nil {
			return err
		}

		logger := newLogger(context)
		logger, err = tmflags.ParseLogLevel(context.Config.LogLevel, logger, tmcfg.DefaultLogLevel())
		if err != nil {
			return err
		}
		if viper.GetBool(cli.TraceFlag) {
			logger = log.NewTracingLogger(logger)
		}
		logger = logger.With("module", "main")
		bnclog.InitLogger(logger)

		context.Logger = logger
		return nil
	}
}

// logFailedTx records which market message a rejected tx carried.
func (app *MarketApp) logFailedTx(txBytes []byte, resLog string) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := fmt.Sprintf("recovered: %v\nstack:\n%v", r, string(debug.Stack()))
			app.Logger.Error(stackTrace)
		}
	}()
	txHash := cmn.HexBytes(tmhash.Sum(txBytes)).String()
	tx, err := app.TxDecoder(txBytes)
	if err != nil {
		app.Logger.Info("failed to process invalid tx", "tx", txHash)
		return
	}
	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case market.MatchListingMsg:
			app.Logger.Info("failed to process MatchListingMsg", "tx", txHash, "listing", msg.Listing, "log", resLog)
		case market.RemoveListingMsg:
			app.Logger.Info("failed to process RemoveListingMsg", "tx", txHash, "asset", msg.Asset, "log", resLog)
		default:
			app.Logger.Debug("failed to process tx", "tx", txHash, "type", msg.Type(), "log", resLog)
		}
	}
}
