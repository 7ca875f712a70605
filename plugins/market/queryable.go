package market

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"
)

const (
	QueryPolicy   = "policy"
	QueryListing  = "listing"
	QueryListings = "listings"
	QueryDerive   = "derive"
)

func NewQuerier(keeper Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		if len(path) == 0 {
			return nil, sdk.ErrUnknownRequest("empty market query path")
		}
		switch path[0] {
		case QueryPolicy:
			return queryPolicy(ctx, keeper)
		case QueryListing:
			return queryListing(ctx, req, keeper)
		case QueryListings:
			return queryListings(ctx, req, keeper)
		case QueryDerive:
			return queryDerive(req, keeper)
		default:
			return nil, sdk.ErrUnknownRequest(fmt.Sprintf("unknown market query endpoint %s", path[0]))
		}
	}
}

// Params for query 'custom/market/listing'
type QueryListingParams struct {
	Listing sdk.AccAddress
}

// Params for query 'custom/market/listings'
type QueryListingsParams struct {
	Seller sdk.AccAddress
}

// Params for query 'custom/market/derive'
type QueryDeriveParams struct {
	Seller     sdk.AccAddress
	Collection sdk.AccAddress
	Asset      sdk.AccAddress
}

type DeriveResult struct {
	Address sdk.AccAddress `json:"address"`
	Bump    uint8          `json:"bump"`
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

func checkAddress(addr sdk.AccAddress) sdk.Error {
	if len(addr) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("length of address should be %d", sdk.AddrLen))
	}
	return nil
}

func queryPolicy(ctx sdk.Context, keeper Keeper) ([]byte, sdk.Error) {
	market, found := keeper.GetMarket(ctx)
	if !found {
		return nil, ErrMarketNotInitialized(keeper.codespace)
	}
	return marshalResult(keeper, market)
}

func queryListing(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryListingParams
	if err := unmarshalParams(keeper, req, &params); err != nil {
		return nil, err
	}
	if err := checkAddress(params.Listing); err != nil {
		return nil, err
	}

	listing, found := keeper.GetListing(ctx, params.Listing)
	if !found {
		return nil, ErrListingNotFound(keeper.codespace, params.Listing)
	}
	return marshalResult(keeper, listing)
}

func queryListings(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryListingsParams
	if err := unmarshalParams(keeper, req, &params); err != nil {
		return nil, err
	}
	if err := checkAddress(params.Seller); err != nil {
		return nil, err
	}

	listings := keeper.GetListingsBySeller(ctx, params.Seller)
	if listings == nil {
		listings = []Listing{}
	}
	return marshalResult(keeper, listings)
}

func queryDerive(req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryDeriveParams
	if err := unmarshalParams(keeper, req, &params); err != nil {
		return nil, err
	}
	for _, addr := range []sdk.AccAddress{params.Seller, params.Collection, params.Asset} {
		if err := checkAddress(addr); err != nil {
			return nil, err
		}
	}

	addr, bump, err := keeper.DeriveListingAuthority(params.Seller, params.Collection, params.Asset)
	if err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}
	return marshalResult(keeper, DeriveResult{Address: addr, Bump: bump})
}
