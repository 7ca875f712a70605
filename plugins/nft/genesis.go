package nft

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type GenesisState struct {
	Collections []Collection `json:"collections"`
	Assets      []Asset      `json:"assets"`
}

func ValidateGenesis(data GenesisState) error {
	collections := make(map[string]bool, len(data.Collections))
	for _, collection := range data.Collections {
		if len(collection.Address) != sdk.AddrLen || len(collection.UpdateAuthority) != sdk.AddrLen {
			return fmt.Errorf("invalid collection %s in genesis", collection.Address)
		}
		if err := validateMetadata(collection.Name, collection.URI); err != nil {
			return fmt.Errorf("invalid collection %s in genesis: %s", collection.Address, err.Error())
		}
		collections[string(collection.Address)] = true
	}
	for _, asset := range data.Assets {
		if !collections[string(asset.Collection)] {
			return fmt.Errorf("asset %s belongs to unknown collection %s", asset.Address, asset.Collection)
		}
		if len(asset.Owner) != sdk.AddrLen {
			return fmt.Errorf("asset %s has an invalid owner", asset.Address)
		}
	}
	return nil
}

func InitGenesis(ctx sdk.Context, keeper Keeper, data GenesisState) {
	if err := ValidateGenesis(data); err != nil {
		panic(err)
	}
	for _, collection := range data.Collections {
		keeper.setCollection(ctx, collection)
	}
	for _, asset := range data.Assets {
		keeper.setAsset(ctx, asset)
	}
}

func ExportGenesis(ctx sdk.Context, keeper Keeper) GenesisState {
	store := ctx.KVStore(keeper.storeKey)
	var data GenesisState

	iterator := sdk.KVStorePrefixIterator(store, CollectionKeyPrefix)
	for ; iterator.Valid(); iterator.Next() {
		var collection Collection
		keeper.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &collection)
		data.Collections = append(data.Collections, collection)
	}
	iterator.Close()

	iterator = sdk.KVStorePrefixIterator(store, AssetKeyPrefix)
	for ; iterator.Valid(); iterator.Next() {
		var asset Asset
		keeper.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &asset)
		data.Assets = append(data.Assets, asset)
	}
	iterator.Close()
	return data
}
