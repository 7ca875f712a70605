package nft

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"
)

const (
	QueryAsset      = "asset"
	QueryCollection = "collection"
	QueryOwned      = "owned"
)

func NewQuerier(keeper Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		if len(path) == 0 {
			return nil, sdk.ErrUnknownRequest("empty nft query path")
		}
		switch path[0] {
		case QueryAsset:
			return queryAsset(ctx, req, keeper)
		case QueryCollection:
			return queryCollection(ctx, req, keeper)
		case QueryOwned:
			return queryOwned(ctx, req, keeper)
		default:
			return nil, sdk.ErrUnknownRequest(fmt.Sprintf("unknown nft query endpoint %s", path[0]))
		}
	}
}

// Params for query 'custom/nft/asset'
type QueryAssetParams struct {
	Asset sdk.AccAddress
}

// Params for query 'custom/nft/collection'
type QueryCollectionParams struct {
	Collection sdk.AccAddress
}

// Params for query 'custom/nft/owned'
type QueryOwnedParams struct {
	Owner sdk.AccAddress
}

func unmarshalParams(keeper Keeper, req abci.RequestQuery, params interface{}) sdk.Error {
	if err := keeper.cdc.UnmarshalJSON(req.Data, params); err != nil {
		return sdk.ErrUnknownRequest(sdk.AppendMsgToErr("incorrectly formatted request data", err.Error()))
	}
	return nil
}

func marshalResult(keeper Keeper, result interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(keeper.cdc, result)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}

func queryAsset(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryAssetParams
	if err := unmarshalParams(keeper, req, &params); err != nil {
		return nil, err
	}
	if len(params.Asset) != sdk.AddrLen {
		return nil, sdk.ErrInvalidAddress(fmt.Sprintf("length of address should be %d", sdk.AddrLen))
	}

	asset, found := keeper.GetAsset(ctx, params.Asset)
	if !found {
		return nil, ErrAssetNotFound(keeper.codespace, params.Asset)
	}
	return marshalResult(keeper, asset)
}

func queryCollection(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryCollectionParams
	if err := unmarshalParams(keeper, req, &params); err != nil {
		return nil, err
	}
	if len(params.Collection) != sdk.AddrLen {
		return nil, sdk.ErrInvalidAddress(fmt.Sprintf("length of address should be %d", sdk.AddrLen))
	}

	collection, found := keeper.GetCollection(ctx, params.Collection)
	if !found {
		return nil, ErrCollectionNotFound(keeper.codespace, params.Collection)
	}
	return marshalResult(keeper, collection)
}

func queryOwned(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryOwnedParams
	if err := unmarshalParams(keeper, req, &params); err != nil {
		return nil, err
	}
	if len(params.Owner) != sdk.AddrLen {
		return nil, sdk.ErrInvalidAddress(fmt.Sprintf("length of address should be %d", sdk.AddrLen))
	}

	assets := keeper.GetAssetsByOwner(ctx, params.Owner)
	if assets == nil {
		assets = []Asset{}
	}
	return marshalResult(keeper, assets)
}
