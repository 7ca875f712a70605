package commands

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmnclient "github.com/bnb-chain/nft-market/common/client"
	"github.com/bnb-chain/nft-market/plugins/market"
)

func addressFlag(flag string) (sdk.AccAddress, error) {
	value := viper.GetString(flag)
	if value == "" {
		return nil, errors.Errorf("--%s is required", flag)
	}
	addr, err := sdk.AccAddressFromBech32(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", flag)
	}
	return addr, nil
}

func initMarketCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "create the fee policy, the sender becomes its admin",
		RunE:  cmdr.initMarket,
	}

	cmd.Flags().String(flagFeeRecipient, "", "account receiving taker fees")
	cmd.Flags().Int64(flagFeeBps, 0, "taker fee in basis points, at most 10000")
	return cmd
}

func (c Commander) initMarket(cmd *cobra.Command, args []string) error {
	cliCtx, txBldr := cmnclient.PrepareCtx(c.Cdc)
	from, err := cliCtx.GetFromAddress()
	if err != nil {
		return err
	}
	recipient, err := addressFlag(flagFeeRecipient)
	if err != nil {
		return err
	}

	msg := market.NewInitMarketMsg(from, recipient, viper.GetInt64(flagFeeBps))
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return cmnclient.SendOrPrintTx(cliCtx, txBldr, msg)
}

func updateMarketCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "change the fee recipient and the taker fee, admin only",
		RunE:  cmdr.updateMarket,
	}

	cmd.Flags().String(flagFeeRecipient, "", "account receiving taker fees")
	cmd.Flags().Int64(flagFeeBps, 0, "taker fee in basis points, at most 10000")
	return cmd
}

func (c Commander) updateMarket(cmd *cobra.Command, args []string) error {
	cliCtx, txBldr := cmnclient.PrepareCtx(c.Cdc)
	from, err := cliCtx.GetFromAddress()
	if err != nil {
		return err
	}
	recipient, err := addressFlag(flagFeeRecipient)
	if err != nil {
		return err
	}

	msg := market.NewUpdateMarketMsg(from, recipient, viper.GetInt64(flagFeeBps))
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return cmnclient.SendOrPrintTx(cliCtx, txBldr, msg)
}

func addListingCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "put an asset into custody at a fixed price",
		RunE:  cmdr.addListing,
	}

	cmd.Flags().String(flagCollection, "", "collection address")
	cmd.Flags().String(flagAsset, "", "asset address")
	cmd.Flags().Int64(flagPrice, 0, "asking price in the smallest native token unit")
	return cmd
}

func (c Commander) addListing(cmd *cobra.Command, args []string) error {
	cliCtx, txBldr := cmnclient.PrepareCtx(c.Cdc)
	from, err := cliCtx.GetFromAddress()
	if err != nil {
		return err
	}
	collection, err := addressFlag(flagCollection)
	if err != nil {
		return err
	}
	asset, err := addressFlag(flagAsset)
	if err != nil {
		return err
	}

	msg := market.NewAddListingMsg(from, collection, asset, viper.GetInt64(flagPrice))
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return cmnclient.SendOrPrintTx(cliCtx, txBldr, msg)
}

func matchListingCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "pay the price plus the taker fee of a listing and receive its asset",
		RunE:  cmdr.matchListing,
	}

	cmd.Flags().String(flagListing, "", "listing address")
	return cmd
}

// matchListing reads the listing and the fee policy from the node, so the buyer confirms what is
// on chain at the time of signing.
func (c Commander) matchListing(cmd *cobra.Command, args []string) error {
	cliCtx, txBldr := cmnclient.PrepareCtx(c.Cdc)
	from, err := cliCtx.GetFromAddress()
	if err != nil {
		return err
	}
	listingAddr, err := addressFlag(flagListing)
	if err != nil {
		return err
	}

	var listing market.Listing
	if err := c.query(market.QueryListing, market.QueryListingParams{Listing: listingAddr}, &listing); err != nil {
		return err
	}
	var policy market.Market
	if err := c.query(market.QueryPolicy, nil, &policy); err != nil {
		return err
	}

	msg := market.NewMatchListingMsg(from, listing.Address, listing.Seller, listing.Collection, listing.Asset,
		policy.FeeRecipient)
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return cmnclient.SendOrPrintTx(cliCtx, txBldr, msg)
}

func removeListingCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "take an asset back out of custody",
		RunE:  cmdr.removeListing,
	}

	cmd.Flags().String(flagCollection, "", "collection address")
	cmd.Flags().String(flagAsset, "", "asset address")
	return cmd
}

func (c Commander) removeListing(cmd *cobra.Command, args []string) error {
	cliCtx, txBldr := cmnclient.PrepareCtx(c.Cdc)
	from, err := cliCtx.GetFromAddress()
	if err != nil {
		return err
	}
	collection, err := addressFlag(flagCollection)
	if err != nil {
		return err
	}
	asset, err := addressFlag(flagAsset)
	if err != nil {
		return err
	}

	msg := market.NewRemoveListingMsg(from, collection, asset)
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return cmnclient.SendOrPrintTx(cliCtx, txBldr, msg)
}
