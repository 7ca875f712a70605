package nft

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/bnb-chain/nft-market/common/testutils"
)

func TestQuerier(t *testing.T) {
	cdc := MakeCodec()
	keeper := MakeKeeper(cdc)
	ctx := MakeContext()
	querier := NewQuerier(keeper)
	query := func(path string, params interface{}) ([]byte, sdk.Error) {
		bz, err := cdc.MarshalJSON(params)
		require.Nil(t, err)
		return querier(ctx, []string{path}, abci.RequestQuery{Data: bz})
	}

	_, creator := testutils.PrivAndAddr()
	_, owner := testutils.PrivAndAddr()
	collection := setupCollection(t, ctx, keeper, creator)
	asset, err := keeper.MintAsset(ctx, creator, collection.Address, "punk #1", "", owner)
	require.Nil(t, err)
	collection, _ = keeper.GetCollection(ctx, collection.Address)

	bz, err := query(QueryCollection, QueryCollectionParams{Collection: collection.Address})
	require.Nil(t, err)
	var gotCollection Collection
	require.Nil(t, cdc.UnmarshalJSON(bz, &gotCollection))
	require.Equal(t, collection, gotCollection)
	require.Equal(t, int64(1), gotCollection.Minted)

	bz, err = query(QueryAsset, QueryAssetParams{Asset: asset.Address})
	require.Nil(t, err)
	var gotAsset Asset
	require.Nil(t, cdc.UnmarshalJSON(bz, &gotAsset))
	require.Equal(t, asset, gotAsset)

	bz, err = query(QueryOwned, QueryOwnedParams{Owner: owner})
	require.Nil(t, err)
	var owned []Asset
	require.Nil(t, cdc.UnmarshalJSON(bz, &owned))
	require.Equal(t, []Asset{asset}, owned)

	_, err = query(QueryAsset, QueryAssetParams{Asset: collection.Address})
	require.Equal(t, CodeAssetNotFound, err.Code())

	_, err = querier(ctx, []string{"unknown"}, abci.RequestQuery{})
	require.Equal(t, sdk.CodeUnknownRequest, err.Code())
}
