package commands

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmnclient "github.com/bnb-chain/nft-market/common/client"
	"github.com/bnb-chain/nft-market/plugins/nft"
	"github.com/bnb-chain/nft-market/wire"
)

const (
	flagName       = "name"
	flagURI        = "uri"
	flagCollection = "collection"
	flagAsset      = "asset"
	flagRecipient  = "recipient"
	flagTo         = "to"
	flagOwner      = "owner"
)

type Commander struct {
	Cdc *wire.Codec
}

func AddCommands(cmd *cobra.Command, cdc *wire.Codec) {
	nftCmd := &cobra.Command{
		Use:   "nft",
		Short: "create collections, mint and transfer assets",
	}

	cmdr := Commander{Cdc: cdc}
	nftCmd.AddCommand(
		client.PostCommands(
			createCollectionCmd(cmdr),
			mintAssetCmd(cmdr),
			transferAssetCmd(cmdr))...)
	nftCmd.AddCommand(
		client.GetCommands(
			queryAssetCmd(cmdr),
			queryCollectionCmd(cmdr),
			queryOwnedCmd(cmdr))...)

	cmd.AddCommand(nftCmd)
}

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

func createCollectionCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-collection",
		Short: "create a collection owned by the sender",
		RunE:  cmdr.createCollection,
	}

	cmd.Flags().String(flagName, "", "name of the collection")
	cmd.Flags().String(flagURI, "", "metadata uri of the collection")
	return cmd
}

func (c Commander) createCollection(cmd *cobra.Command, args []string) error {
	cliCtx, txBldr := cmnclient.PrepareCtx(c.Cdc)
	from, err := cliCtx.GetFromAddress()
	if err != nil {
		return err
	}

	msg := nft.NewCreateCollectionMsg(from, viper.GetString(flagName), viper.GetString(flagURI))
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return cmnclient.SendOrPrintTx(cliCtx, txBldr, msg)
}

func mintAssetCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "mint an asset of a collection the sender controls",
		RunE:  cmdr.mintAsset,
	}

	cmd.Flags().String(flagCollection, "", "collection address")
	cmd.Flags().String(flagName, "", "name of the asset")
	cmd.Flags().String(flagURI, "", "metadata uri of the asset")
	cmd.Flags().String(flagRecipient, "", "receiver of the asset, defaults to the sender")
	return cmd
}

func (c Commander) mintAsset(cmd *cobra.Command, args []string) error {
	cliCtx, txBldr := cmnclient.PrepareCtx(c.Cdc)
	from, err := cliCtx.GetFromAddress()
	if err != nil {
		return err
	}

	collection, err := addressFlag(flagCollection)
	if err != nil {
		return err
	}
	recipient := from
	if viper.GetString(flagRecipient) != "" {
		if recipient, err = addressFlag(flagRecipient); err != nil {
			return err
		}
	}

	msg := nft.NewMintAssetMsg(from, collection, viper.GetString(flagName), viper.GetString(flagURI), recipient)
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return cmnclient.SendOrPrintTx(cliCtx, txBldr, msg)
}

func transferAssetCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "transfer an asset owned by the sender",
		RunE:  cmdr.transferAsset,
	}

	cmd.Flags().String(flagCollection, "", "collection address")
	cmd.Flags().String(flagAsset, "", "asset address")
	cmd.Flags().String(flagTo, "", "receiver of the asset")
	return cmd
}

func (c Commander) transferAsset(cmd *cobra.Command, args []string) error {
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
	to, err := addressFlag(flagTo)
	if err != nil {
		return err
	}

	msg := nft.NewTransferAssetMsg(from, collection, asset, to)
	return cmnclient.SendOrPrintTx(cliCtx, txBldr, msg)
}

func queryAssetCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "query an asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := addressFlag(flagAsset)
			if err != nil {
				return err
			}
			return cmdr.printQuery(nft.QueryAsset, nft.QueryAssetParams{Asset: asset})
		},
	}
	cmd.Flags().String(flagAsset, "", "asset address")
	return cmd
}

func queryCollectionCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "query a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, err := addressFlag(flagCollection)
			if err != nil {
				return err
			}
			return cmdr.printQuery(nft.QueryCollection, nft.QueryCollectionParams{Collection: collection})
		},
	}
	cmd.Flags().String(flagCollection, "", "collection address")
	return cmd
}

func queryOwnedCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owned",
		Short: "query the assets owned by an address",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := addressFlag(flagOwner)
			if err != nil {
				return err
			}
			return cmdr.printQuery(nft.QueryOwned, nft.QueryOwnedParams{Owner: owner})
		},
	}
	cmd.Flags().String(flagOwner, "", "owner address")
	return cmd
}

func (c Commander) printQuery(endpoint string, params interface{}) error {
	cliCtx, _ := cmnclient.PrepareCtx(c.Cdc)
	res, err := cmnclient.QueryJSON(cliCtx, c.Cdc, fmt.Sprintf("custom/%s/%s", nft.MsgRoute, endpoint), params)
	if err != nil {
		return err
	}

	fmt.Println(string(res))
	return nil
}
