package init

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/tendermint/tendermint/config"
	"github.com/tendermint/tendermint/libs/cli"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/types"
	tmtime "github.com/tendermint/tendermint/types/time"

	"github.com/bnb-chain/nft-market/app"
)

const (
	flagOverwrite   = "overwrite"
	flagClientHome  = "home-client"
	flagMoniker     = "moniker"
	flagTakerFeeBps = "taker-fee-bps"

	defaultValidatorPower = 10
)

type printInfo struct {
	Moniker    string          `json:"moniker"`
	ChainID    string          `json:"chain_id"`
	NodeID     string          `json:"node_id"`
	AppMessage json.RawMessage `json:"app_message"`
}

// nolint: errcheck
func displayInfo(cdc *codec.Codec, info printInfo) error {
	out, err := codec.MarshalJSONIndent(cdc, info)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s\n", string(out))
	return nil
}

// InitCmd writes the node key, the validator key and a genesis in which the
// node operator is the market admin and fee recipient.
func InitCmd(ctx *server.Context, cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize private validator, p2p, genesis, and application configuration files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			config := ctx.Config
			config.SetRoot(viper.GetString(cli.HomeFlag))

			chainID := viper.GetString(client.FlagChainID)
			if chainID == "" {
				chainID = fmt.Sprintf("nft-chain-%v", common.RandStr(6))
			}
			config.Moniker = viper.GetString(flagMoniker)
			if config.Moniker == "" {
				return errors.New("must specify --moniker")
			}

			genFile := config.GenesisFile()
			if !viper.GetBool(flagOverwrite) && common.FileExists(genFile) {
				return fmt.Errorf("genesis.json file already exists: %v", genFile)
			}

			nodeID, valPubKey := InitializeNodeValidatorFiles(config)
			adminAddr, secret, err := CreateAdminAccount(viper.GetString(flagClientHome), config.Moniker)
			if err != nil {
				return err
			}
			appState, err := app.MarketAppGenState(cdc, adminAddr, viper.GetInt64(flagTakerFeeBps))
			if err != nil {
				return err
			}

			validators := []types.GenesisValidator{{
				Address: valPubKey.Address(),
				PubKey:  valPubKey,
				Power:   defaultValidatorPower,
				Name:    config.Moniker,
			}}
			if err = ExportGenesisFileWithTime(genFile, chainID, validators, appState, tmtime.Now()); err != nil {
				return err
			}
			writeConfigFile(config)

			toPrint := printInfo{
				ChainID:    chainID,
				Moniker:    config.Moniker,
				NodeID:     nodeID,
				AppMessage: makeAppMessage(cdc, adminAddr.String(), secret),
			}
			return displayInfo(cdc, toPrint)
		},
	}

	cmd.Flags().StringP(flagClientHome, "c", app.DefaultCLIHome, "client's home directory")
	cmd.Flags().BoolP(flagOverwrite, "o", false, "overwrite the genesis.json file")
	cmd.Flags().String(client.FlagChainID, "", "genesis file chain-id, if left blank will be randomly created")
	cmd.Flags().String(flagMoniker, "", "the validator's moniker, also the name of the admin key")
	cmd.Flags().Int64(flagTakerFeeBps, 200, "taker fee of the market in basis points")
	cmd.MarkFlagRequired(flagMoniker)
	return cmd
}

func writeConfigFile(config *cfg.Config) {
	configFilePath := filepath.Join(config.RootDir, "config", "config.toml")
	cfg.WriteConfigFile(configFilePath, config)
}
