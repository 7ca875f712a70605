package api

import (
	"net"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	tmserver "github.com/tendermint/tendermint/rpc/lib/server"

	sdk "github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/context"
	authcmd "github.com/cosmos/cosmos-sdk/x/auth/client/cli"

	"github.com/bnb-chain/nft-market/wire"
)

const (
	flagListenAddr         = "laddr"
	flagMaxOpenConnections = "max-open"
	flagRequestsPerSecond  = "rps"
)

// ServeCommand will generate a long-running rest server
// that exposes the market and nft queries over http
func ServeCommand(cdc *wire.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api-server",
		Short: "Start the API server daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.NewCLIContext().
				WithCodec(cdc).
				WithAccountDecoder(authcmd.GetAccountDecoder(cdc))
			logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "apiserv")

			listener, err := Serve(ctx, cdc, viper.GetString(flagListenAddr), viper.GetInt(flagMaxOpenConnections),
				viper.GetInt(flagRequestsPerSecond), logger)
			if err != nil {
				return err
			}

			// wait forever and cleanup
			cmn.TrapSignal(logger, func() {
				err := listener.Close()
				if err != nil {
					logger.Error("error closing listener", "err", err)
				}
			})
			select {}
		},
	}

	cmd.Flags().String(flagListenAddr, "tcp://localhost:8080", "The address for the server to listen on")
	cmd.Flags().String(sdk.FlagChainID, "", "The chain ID to connect to")
	cmd.Flags().String(sdk.FlagNode, "tcp://localhost:26657", "Address of the node to connect to")
	cmd.Flags().Int(flagMaxOpenConnections, 1000, "The number of maximum open connections")
	cmd.Flags().Int(flagRequestsPerSecond, 100, "The number of requests served per second, 0 for no limit")
	cmd.Flags().Bool(sdk.FlagTrustNode, true, "Trust connected full node (don't verify proofs for responses)")

	return cmd
}

// Serve starts the REST server in the background and returns its listener.
func Serve(ctx context.CLIContext, cdc *wire.Codec, listenAddr string, maxOpen, requestsPerSecond int,
	logger log.Logger) (net.Listener, error) {
	server := newServer(ctx, cdc, requestsPerSecond).bindRoutes()
	cfg := &tmserver.Config{MaxOpenConnections: maxOpen}
	listener, err := tmserver.Listen(listenAddr, cfg)
	if err != nil {
		return nil, err
	}
	go func() {
		// wrap to handle the error
		err := tmserver.StartHTTPServer(listener, server.router, logger, cfg)
		if err != nil {
			logger.Error("REST server stopped", "err", err)
		}
	}()

	logger.Info("REST server started", "addr", listenAddr)
	return listener, nil
}
