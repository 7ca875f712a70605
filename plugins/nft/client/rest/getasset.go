package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cosmos/cosmos-sdk/client/context"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"

	"github.com/bnb-chain/nft-market/plugins/nft"
	"github.com/bnb-chain/nft-market/wire"
)

func getAsset(ctx context.CLIContext, cdc *wire.Codec, address sdk.AccAddress) (nft.Asset, error) {
	bz, err := cdc.MarshalJSON(nft.QueryAssetParams{Asset: address})
	if err != nil {
		return nft.Asset{}, err
	}

	bz, err = ctx.QueryWithData(fmt.Sprintf("custom/%s/%s", nft.MsgRoute, nft.QueryAsset), bz)
	if err != nil {
		return nft.Asset{}, err
	}

	var asset nft.Asset
	if err = cdc.UnmarshalJSON(bz, &asset); err != nil {
		return nft.Asset{}, err
	}
	return asset, nil
}

func GetAssetReqHandler(cdc *wire.Codec, ctx context.CLIContext) http.HandlerFunc {
	responseType := "application/json"

	throw := func(w http.ResponseWriter, status int, err error) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(err.Error()))
	}

	parse := func(vars map[string]string, name string) (sdk.AccAddress, error) {
		value, ok := vars[name]
		if !ok {
			return nil, fmt.Errorf("miss request parameter `%s`", name)
		}
		addr, err := sdk.AccAddressFromBech32(value)
		if err != nil {
			return nil, fmt.Errorf("invalid address, address=%s", value)
		}
		return addr, nil
	}

	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		collection, err := parse(vars, "collection")
		if err != nil {
			throw(w, http.StatusBadRequest, err)
			return
		}
		address, err := parse(vars, "asset")
		if err != nil {
			throw(w, http.StatusBadRequest, err)
			return
		}

		asset, err := getAsset(ctx, cdc, address)
		if err != nil {
			throw(w, http.StatusInternalServerError, err)
			return
		}
		if !asset.Collection.Equals(collection) {
			throw(w, http.StatusNotFound, fmt.Errorf("asset %s is not part of collection %s", address, collection))
			return
		}

		// no need to use cdc here because we do not want amino to inject a type attribute
		output, err := json.Marshal(asset)
		if err != nil {
			throw(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", responseType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(output)
	}
}
