package commands

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/bnb-chain/nft-market/wire"
)

const (
	flagFeeRecipient = "fee-recipient"
	flagFeeBps       = "fee-bps"
	flagCollection   = "collection"
	flagAsset        = "asset"
	flagPrice        = "price"
	flagListing      = "listing"
	flagSeller       = "seller"
)

type Commander struct {
	Cdc *wire.Codec
}

func AddCommands(cmd *cobra.Command, cdc *wire.Codec) {
	marketCmd := &cobra.Command{
		Use:   "market",
		Short: "list, buy and cancel custodied assets",
	}

	cmdr := Commander{Cdc: cdc}
	marketCmd.AddCommand(
		client.PostCommands(
			initMarketCmd(cmdr),
			updateMarketCmd(cmdr),
			addListingCmd(cmdr),
			matchListingCmd(cmdr),
			removeListingCmd(cmdr))...)
	marketCmd.AddCommand(
		client.GetCommands(
			queryPolicyCmd(cmdr),
			queryListingCmd(cmdr),
			queryListingsCmd(cmdr),
			queryDeriveCmd(cmdr))...)

	cmd.AddCommand(marketCmd)
}
