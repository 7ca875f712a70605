package rest

import (
	"net/http"

	"github.com/cosmos/cosmos-sdk/client/context"

	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/wire"
)

func GetListingReqHandler(cdc *wire.Codec, ctx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, err := addressVar(r, "address")
		if err != nil {
			throw(w, http.StatusBadRequest, err)
			return
		}

		var listing market.Listing
		params := market.QueryListingParams{Listing: address}
		if err := query(ctx, cdc, market.QueryListing, params, &listing); err != nil {
			throw(w, http.StatusInternalServerError, err)
			return
		}
		write(w, listing)
	}
}
