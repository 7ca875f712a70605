package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	cmnclient "github.com/bnb-chain/nft-market/common/client"
	"github.com/bnb-chain/nft-market/plugins/market"
)

func queryPolicyCmd(cmdr Commander) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "query the fee policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdr.printQuery(market.QueryPolicy, nil)
		},
	}
}

func queryListingCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "query a listing by its address",
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := addressFlag(flagListing)
			if err != nil {
				return err
			}
			return cmdr.printQuery(market.QueryListing, market.QueryListingParams{Listing: listing})
		},
	}
	cmd.Flags().String(flagListing, "", "listing address")
	return cmd
}

func queryListingsCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "query the listings of a seller, sold ones included",
		RunE: func(cmd *cobra.Command, args []string) error {
			seller, err := addressFlag(flagSeller)
			if err != nil {
				return err
			}
			return cmdr.printQuery(market.QueryListings, market.QueryListingsParams{Seller: seller})
		},
	}
	cmd.Flags().String(flagSeller, "", "seller address")
	return cmd
}

func queryDeriveCmd(cmdr Commander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "compute the listing address of a seller, collection and asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			seller, err := addressFlag(flagSeller)
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
			return cmdr.printQuery(market.QueryDerive,
				market.QueryDeriveParams{Seller: seller, Collection: collection, Asset: asset})
		},
	}
	cmd.Flags().String(flagSeller, "", "seller address")
	cmd.Flags().String(flagCollection, "", "collection address")
	cmd.Flags().String(flagAsset, "", "asset address")
	return cmd
}

func (c Commander) query(endpoint string, params interface{}, result interface{}) error {
	cliCtx, _ := cmnclient.PrepareCtx(c.Cdc)
	res, err := cmnclient.QueryJSON(cliCtx, c.Cdc, fmt.Sprintf("custom/%s/%s", market.MsgRoute, endpoint), params)
	if err != nil {
		return err
	}
	return c.Cdc.UnmarshalJSON(res, result)
}

func (c Commander) printQuery(endpoint string, params interface{}) error {
	cliCtx, _ := cmnclient.PrepareCtx(c.Cdc)
	res, err := cmnclient.QueryJSON(cliCtx, c.Cdc, fmt.Sprintf("custom/%s/%s", market.MsgRoute, endpoint), params)
	if err != nil {
		return err
	}

	fmt.Println(string(res))
	return nil
}
