package main

import (
	"encoding/json"
	"io"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/cosmos/cosmos-sdk/server"
	authcmd "github.com/cosmos/cosmos-sdk/x/auth/client/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/cli"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/bnb-chain/nft-market/app"
	initcmd "github.com/bnb-chain/nft-market/cmd/marketd/init"
	"github.com/bnb-chain/nft-market/plugins/api"
	"github.com/bnb-chain/nft-market/version"
)

const apiMaxOpenConnections = 1000

func newApp(logger log.Logger, db dbm.DB, storeTracer io.Writer) abci.Application {
	marketApp := app.NewMarketApp(logger, db, storeTracer, baseapp.SetPruning(viper.GetString("pruning")))
	startAPI(logger)
	return marketApp
}

// startAPI serves the REST api from the node process when it is enabled in app.toml.
func startAPI(logger log.Logger) {
	apiCfg := app.ServerContext.APIConfig
	if !apiCfg.Enabled {
		return
	}
	cdc := app.Codec
	ctx := context.NewCLIContext().
		WithCodec(cdc).
		WithAccountDecoder(authcmd.GetAccountDecoder(cdc)).
		WithClient(rpcclient.NewHTTP(app.ServerContext.Config.RPC.ListenAddress, "/websocket")).
		WithTrustNode(true)
	if _, err := api.Serve(ctx, cdc, apiCfg.Address, apiMaxOpenConnections, apiCfg.RequestsPerSecond,
		logger.With("module", "apiserv")); err != nil {
		logger.Error("failed to start the api server", "err", err)
	}
}

func exportAppStateAndTMValidators(logger log.Logger, db dbm.DB, storeTracer io.Writer) (json.RawMessage, []tmtypes.GenesisValidator, error) {
	dapp := app.NewMarketApp(logger, db, storeTracer)
	return dapp.ExportAppStateAndValidators()
}

func main() {
	cdc := app.Codec
	ctx := app.ServerContext

	rootCmd := &cobra.Command{
		Use:               "marketd",
		Short:             "NFT Market Daemon (server)",
		PersistentPreRunE: app.PersistentPreRunEFn(ctx),
	}

	serverCtx := ctx.ToCosmosServerCtx()
	rootCmd.AddCommand(
		initcmd.InitCmd(serverCtx, cdc),
		server.StartCmd(serverCtx, newApp),
		server.UnsafeResetAllCmd(serverCtx),
		server.ExportCmd(serverCtx, cdc, exportAppStateAndTMValidators),
	)
	tendermintCmd := &cobra.Command{
		Use:   "tendermint",
		Short: "Tendermint subcommands",
	}
	tendermintCmd.AddCommand(
		server.ShowNodeIDCmd(serverCtx),
		server.ShowValidatorCmd(serverCtx),
		server.ShowAddressCmd(serverCtx),
	)
	rootCmd.AddCommand(tendermintCmd, version.VersionCmd)

	// prepare and add flags
	executor := cli.PrepareBaseCmd(rootCmd, "NM", app.DefaultNodeHome)
	err := executor.Execute()
	if err != nil {
		// handle with #870
		panic(err)
	}
}
