package market

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState may carry the fee policy so a chain can start with the market open.
type GenesisState struct {
	Market   *Market   `json:"market"`
	Listings []Listing `json:"listings"`
}

func DefaultGenesisState() GenesisState {
	return GenesisState{}
}

func ValidateGenesis(data GenesisState) error {
	if data.Market == nil {
		if len(data.Listings) != 0 {
			return fmt.Errorf("listings in genesis without a market")
		}
		return nil
	}
	if len(data.Market.Admin) != sdk.AddrLen || len(data.Market.FeeRecipient) != sdk.AddrLen {
		return fmt.Errorf("invalid market admin or fee recipient")
	}
	if err := validateFeeBps(DefaultCodespace, data.Market.TakerFeeBps); err != nil {
		return fmt.Errorf("invalid market fee: %s", err.Error())
	}
	seen := make(map[string]bool, len(data.Listings))
	for _, listing := range data.Listings {
		if seen[string(listing.Address)] {
			return fmt.Errorf("duplicate listing %s in genesis", listing.Address)
		}
		seen[string(listing.Address)] = true
		if listing.Price <= 0 {
			return fmt.Errorf("listing %s has invalid price %d", listing.Address, listing.Price)
		}
		addr, bump, err := DeriveListingAuthority(listing.Seller, listing.Collection, listing.Asset)
		if err != nil {
			return err
		}
		if !addr.Equals(listing.Address) || bump != listing.Bump {
			return fmt.Errorf("listing %s is not derived from its seller, collection and asset", listing.Address)
		}
	}
	return nil
}

// InitGenesis sets the fee policy through InitMarket, so genesis is held to the same limits as a transaction.
// Listings are imported as they were exported, the assets they custody are part of the nft genesis.
func InitGenesis(ctx sdk.Context, keeper Keeper, data GenesisState) {
	if err := ValidateGenesis(data); err != nil {
		panic(err)
	}
	if data.Market == nil {
		return
	}
	if _, err := keeper.InitMarket(ctx, data.Market.Admin, data.Market.FeeRecipient, data.Market.TakerFeeBps); err != nil {
		panic(err)
	}
	for _, listing := range data.Listings {
		keeper.setListing(ctx, listing)
	}
}

func ExportGenesis(ctx sdk.Context, keeper Keeper) GenesisState {
	market, found := keeper.GetMarket(ctx)
	if !found {
		return GenesisState{}
	}

	data := GenesisState{Market: &market}
	store := ctx.KVStore(keeper.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, ListingKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var listing Listing
		keeper.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &listing)
		data.Listings = append(data.Listings, listing)
	}
	return data
}
